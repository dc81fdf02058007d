package stereoconv

import (
	"fmt"
	"math"
)

// Ellipsoid holds the constants of a reference ellipsoid.
type Ellipsoid struct {
	SemiMajorAxis float64 // a, in meters
	SemiMinorAxis float64 // b, in meters
	Flattening    float64 // f = 1/(a/(a-b))
	Eccentricity  float64 // e = sqrt(2f - f*f)
	ScaleFactor   float64 // k0
}

// NewEllipsoid constructs an ellipsoid from its semi-major and semi-minor
// axes in meters. The projection scale factor is 1.0.
func NewEllipsoid(semiMajorAxis, semiMinorAxis float64) (Ellipsoid, error) {
	if !(semiMajorAxis > 0) || math.IsInf(semiMajorAxis, 0) {
		return Ellipsoid{}, fmt.Errorf("%w: semi-major axis must be greater than zero", ErrInvalidEllipsoid)
	}
	if !(semiMinorAxis > 0) || semiMinorAxis >= semiMajorAxis {
		return Ellipsoid{}, fmt.Errorf("%w: semi-minor axis must be between zero and the semi-major axis", ErrInvalidEllipsoid)
	}

	flattening := 1 / (semiMajorAxis / (semiMajorAxis - semiMinorAxis))
	invF := 1 / flattening
	if (invF < 250) || (invF > 350) {
		return Ellipsoid{}, fmt.Errorf("%w: inverse flattening must be between 250 and 350, got %g", ErrInvalidEllipsoid, invF)
	}

	return Ellipsoid{
		SemiMajorAxis: semiMajorAxis,
		SemiMinorAxis: semiMinorAxis,
		Flattening:    flattening,
		Eccentricity:  math.Sqrt(2*flattening - flattening*flattening),
		ScaleFactor:   1.0,
	}, nil
}

// eccentricitySquared returns e*e.
func (e Ellipsoid) eccentricitySquared() float64 {
	return e.Eccentricity * e.Eccentricity
}

// isometricLatitude returns the ellipsoidal isometric latitude of phi.
func (e Ellipsoid) isometricLatitude(phi float64) float64 {
	essin := e.Eccentricity * math.Sin(phi)
	return math.Log(math.Tan(phi/2+math.Pi/4) *
		math.Pow((1-essin)/(1+essin), e.Eccentricity/2))
}
