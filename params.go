package stereoconv

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	defaultTolerance     = 1.0e-9 // radians, well below a millimeter on the ground
	defaultMaxIterations = 30
)

// ProjectionParams are the conformal sphere parameters of a double
// stereographic projection centred on a reference point.
type ProjectionParams struct {
	ConformalOrigin s1.Angle // Xo, conformal latitude of the origin
	OriginLongitude s1.Angle // Ao, longitude of the origin
	Radius          float64  // R, conformal sphere radius in meters
	Exponent        float64  // n, conformal mapping exponent
	Normalization   float64  // c, isometric latitude normalization constant
}

// ProjectionParams derives the conformal sphere parameters for a projection
// centred on origin. The origin latitude must lie strictly between the
// poles.
func (e Ellipsoid) ProjectionParams(origin s2.LatLng) (ProjectionParams, error) {
	latitude := origin.Lat.Radians()
	longitude := origin.Lng.Radians()

	if math.IsNaN(latitude) || math.Abs(latitude) >= math.Pi/2 {
		return ProjectionParams{}, fmt.Errorf("%w: origin latitude %g must be strictly between the poles", ErrLatitudeOutOfRange, latitude)
	}
	if math.IsNaN(longitude) || (longitude < -math.Pi) || (longitude > 2*math.Pi) {
		return ProjectionParams{}, fmt.Errorf("%w: origin longitude %g", ErrLongitudeOutOfRange, longitude)
	}

	a := e.SemiMajorAxis
	es2 := e.eccentricitySquared()
	sinLat := math.Sin(latitude)
	cosLat := math.Cos(latitude)
	w := 1 - es2*sinLat*sinLat

	// Meridional and prime vertical radii of curvature
	rho0 := a * (1 - es2) / math.Pow(w, 1.5)
	nu0 := a / math.Sqrt(w)

	p := ProjectionParams{
		OriginLongitude: origin.Lng,
		Radius:          math.Sqrt(rho0 * nu0),
		Exponent:        math.Sqrt(1 + (es2*math.Pow(cosLat, 4))/(1-es2)),
	}

	ratio1 := (1 + sinLat) / (1 - sinLat)
	ratio2 := (1 - e.Eccentricity*sinLat) / (1 + e.Eccentricity*sinLat)
	w1 := math.Pow(ratio1*math.Pow(ratio2, e.Eccentricity), p.Exponent)
	q := (w1 - 1) / (w1 + 1)

	p.Normalization = (p.Exponent + sinLat) * (1 - q) / ((p.Exponent - sinLat) * (1 + q))
	p.ConformalOrigin = s1.Angle(math.Asin((p.Normalization*w1 - 1) / (p.Normalization*w1 + 1)))

	if !isPositiveFinite(p.Radius) || !isPositiveFinite(p.Exponent) ||
		!isPositiveFinite(p.Normalization) || math.IsNaN(p.ConformalOrigin.Radians()) {
		return ProjectionParams{}, fmt.Errorf("%w: degenerate projection at origin latitude %g", ErrLatitudeOutOfRange, latitude)
	}
	return p, nil
}

// conformalInverse maps a plane offset back onto the conformal sphere and
// returns the conformal latitude and the longitude. The longitude needs no
// further correction.
func (p ProjectionParams) conformalInverse(pt r2.Point, k0 float64) (chi, longitude float64, err error) {
	xo := p.ConformalOrigin.Radians()
	twoRk0 := 2 * p.Radius * k0

	g := twoRk0 * math.Tan(math.Pi/4-xo/2)
	h := 2*twoRk0*math.Tan(xo) + g
	i := math.Atan(pt.X / (h + pt.Y))
	j := math.Atan(pt.X/(g-pt.Y)) - i

	chi = xo + 2*math.Atan((pt.Y-pt.X*math.Tan(j/2))/twoRk0)
	longitude = (j+2*i)/p.Exponent + p.OriginLongitude.Radians()

	if math.IsNaN(chi) || math.IsNaN(longitude) || math.Abs(chi) > math.Pi/2 {
		return 0, 0, fmt.Errorf("%w: offset (%g, %g)", ErrOutsideProjection, pt.X, pt.Y)
	}
	return chi, longitude, nil
}

// geodeticLatitude solves the isometric latitude relation for the
// ellipsoidal latitude whose conformal latitude is chi.
func (e Ellipsoid) geodeticLatitude(chi float64, p ProjectionParams, tolerance float64, maxIterations int) (float64, error) {
	sinChi := math.Sin(chi)
	psi := 0.5 * math.Log((1+sinChi)/(p.Normalization*(1-sinChi))) / p.Exponent
	if math.IsNaN(psi) {
		return 0, fmt.Errorf("%w: conformal latitude %g", ErrOutsideProjection, chi)
	}

	es2 := e.eccentricitySquared()
	phi := 2*math.Atan(math.Exp(psi)) - math.Pi/2
	for count := 0; count < maxIterations; count++ {
		sinPhi := math.Sin(phi)
		next := phi - (e.isometricLatitude(phi)-psi)*math.Cos(phi)*(1-es2*sinPhi*sinPhi)/(1-es2)
		if math.IsNaN(next) {
			break
		}
		delta := math.Abs(next - phi)
		phi = next
		if delta < tolerance {
			return phi, nil
		}
	}
	return 0, fmt.Errorf("%w: no fixed point within %d iterations (tolerance %g)", ErrNoConvergence, maxIterations, tolerance)
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
