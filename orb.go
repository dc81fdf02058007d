package stereoconv

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/paulmach/orb"
)

// Point converts a local point {x, y} in meters to a WGS84 point
// {longitude, latitude} in degrees.
func (f *ReferenceFrame) Point(p orb.Point) (orb.Point, error) {
	g, err := f.ConvertToGeodetic(r2.Point{X: p.X(), Y: p.Y()})
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{g.Longitude.Degrees(), g.Latitude.Degrees()}, nil
}

// MultiPoint converts every point of mp.
func (f *ReferenceFrame) MultiPoint(mp orb.MultiPoint) (orb.MultiPoint, error) {
	points, err := f.points(mp)
	return orb.MultiPoint(points), err
}

// LineString converts a track recorded in the local frame.
func (f *ReferenceFrame) LineString(ls orb.LineString) (orb.LineString, error) {
	points, err := f.points(ls)
	return orb.LineString(points), err
}

// Ring converts a closed ring recorded in the local frame.
func (f *ReferenceFrame) Ring(r orb.Ring) (orb.Ring, error) {
	points, err := f.points(r)
	return orb.Ring(points), err
}

// Polygon converts every ring of p.
func (f *ReferenceFrame) Polygon(p orb.Polygon) (orb.Polygon, error) {
	if p == nil {
		return nil, nil
	}
	out := make(orb.Polygon, len(p))
	for i, r := range p {
		ring, err := f.Ring(r)
		if err != nil {
			return nil, fmt.Errorf("ring %d: %w", i, err)
		}
		out[i] = ring
	}
	return out, nil
}

// Bound returns the WGS84 bound of a local bound, sampled at its corners
// and edge midpoints.
func (f *ReferenceFrame) Bound(b orb.Bound) (orb.Bound, error) {
	center := b.Center()
	samples := []orb.Point{
		b.Min, b.Max, b.LeftTop(), b.RightBottom(),
		{center.X(), b.Min.Y()}, {center.X(), b.Max.Y()},
		{b.Min.X(), center.Y()}, {b.Max.X(), center.Y()},
	}
	var out orb.Bound
	for i, s := range samples {
		p, err := f.Point(s)
		if err != nil {
			return orb.Bound{}, err
		}
		if i == 0 {
			out = p.Bound()
			continue
		}
		out = out.Extend(p)
	}
	return out, nil
}

func (f *ReferenceFrame) points(in []orb.Point) ([]orb.Point, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]orb.Point, len(in))
	for i, p := range in {
		var err error
		out[i], err = f.Point(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}
	return out, nil
}
