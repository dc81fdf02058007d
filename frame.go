package stereoconv

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GeodeticCoord is a geodetic position. Altitude is always zero, the
// projection is two dimensional.
type GeodeticCoord struct {
	Latitude  s1.Angle
	Longitude s1.Angle
	Altitude  float64 // meters
}

// LatLng returns the position as an s2.LatLng.
func (g GeodeticCoord) LatLng() s2.LatLng {
	return s2.LatLng{Lat: g.Latitude, Lng: g.Longitude}
}

func (g GeodeticCoord) String() string {
	return fmt.Sprintf("[%f, %f, %f]", g.Latitude.Degrees(), g.Longitude.Degrees(), g.Altitude)
}

// Option configures a ReferenceFrame.
type Option func(*frameConfig) error

type frameConfig struct {
	tolerance           float64
	maxIterations       int
	longitudeCorrection bool
}

// WithTolerance sets the convergence tolerance, in radians, of the latitude
// iteration. The default is 1e-9.
func WithTolerance(tolerance float64) Option {
	return func(c *frameConfig) error {
		if math.IsNaN(tolerance) || tolerance < 0 {
			return fmt.Errorf("%w: tolerance must not be negative, got %g", ErrInvalidOption, tolerance)
		}
		c.tolerance = tolerance
		return nil
	}
}

// WithMaxIterations caps the number of passes of the latitude iteration.
// The default is 30.
func WithMaxIterations(n int) Option {
	return func(c *frameConfig) error {
		if n < 1 {
			return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidOption, n)
		}
		c.maxIterations = n
		return nil
	}
}

// WithLongitudeCorrection controls whether the longitude delta measured at
// the origin is added to converted longitudes. It is off by default; the
// inverse projection already returns the origin longitude at (0, 0), so
// the delta is zero up to rounding.
func WithLongitudeCorrection(enabled bool) Option {
	return func(c *frameConfig) error {
		c.longitudeCorrection = enabled
		return nil
	}
}

// ReferenceFrame converts stereographic offsets in meters, measured from a
// reference point, to geodetic coordinates. A ReferenceFrame is immutable
// and safe for concurrent use.
type ReferenceFrame struct {
	ellipsoid Ellipsoid
	origin    s2.LatLng
	params    ProjectionParams
	config    frameConfig

	deltaLatitude  float64
	deltaLongitude float64
}

// NewReferenceFrame constructs a WGS84 reference frame centred on origin.
func NewReferenceFrame(origin s2.LatLng, opts ...Option) (*ReferenceFrame, error) {
	return WGS84.NewReferenceFrame(origin, opts...)
}

// NewReferenceFrame derives the projection parameters for origin and
// measures the correction that makes the offset (0, 0) map back onto
// origin exactly.
func (e Ellipsoid) NewReferenceFrame(origin s2.LatLng, opts ...Option) (*ReferenceFrame, error) {
	f := &ReferenceFrame{
		ellipsoid: e,
		origin:    origin,
		config: frameConfig{
			tolerance:     defaultTolerance,
			maxIterations: defaultMaxIterations,
		},
	}
	for _, opt := range opts {
		if err := opt(&f.config); err != nil {
			return nil, err
		}
	}

	var err error
	f.params, err = e.ProjectionParams(origin)
	if err != nil {
		return nil, err
	}

	lat0, lng0, err := f.convert(r2.Point{})
	if err != nil {
		return nil, fmt.Errorf("converting reference point: %w", err)
	}
	f.deltaLatitude = origin.Lat.Radians() - lat0
	f.deltaLongitude = origin.Lng.Radians() - lng0
	return f, nil
}

// Origin returns the reference point of the frame.
func (f *ReferenceFrame) Origin() s2.LatLng { return f.origin }

// Ellipsoid returns the ellipsoid the frame projects onto.
func (f *ReferenceFrame) Ellipsoid() Ellipsoid { return f.ellipsoid }

// Params returns the projection parameters derived for the origin.
func (f *ReferenceFrame) Params() ProjectionParams { return f.params }

// Delta returns the latitude and longitude corrections measured at the
// origin.
func (f *ReferenceFrame) Delta() (latitude, longitude s1.Angle) {
	return s1.Angle(f.deltaLatitude), s1.Angle(f.deltaLongitude)
}

// ConvertToGeodetic converts an offset in meters from the origin (X east,
// Y north) to geodetic coordinates.
func (f *ReferenceFrame) ConvertToGeodetic(p r2.Point) (GeodeticCoord, error) {
	latitude, longitude, err := f.convert(p)
	if err != nil {
		return GeodeticCoord{}, err
	}

	latitude += f.deltaLatitude
	if f.config.longitudeCorrection {
		longitude += f.deltaLongitude
	}
	return GeodeticCoord{
		Latitude:  s1.Angle(latitude),
		Longitude: s1.Angle(longitude),
	}, nil
}

// convert runs the uncorrected inverse projection.
func (f *ReferenceFrame) convert(p r2.Point) (latitude, longitude float64, err error) {
	chi, longitude, err := f.params.conformalInverse(p, f.ellipsoid.ScaleFactor)
	if err != nil {
		return 0, 0, err
	}
	latitude, err = f.ellipsoid.geodeticLatitude(chi, f.params, f.config.tolerance, f.config.maxIterations)
	if err != nil {
		return 0, 0, err
	}
	return latitude, longitude, nil
}
