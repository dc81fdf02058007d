package stereoconv

import "errors"

// Errors returned by the ellipsoid, reference frame and conversion
// functions. Returned errors wrap one of these and can be matched with
// errors.Is.
var (
	ErrNotInitialized      = errors.New("reference point not initialized")
	ErrLatitudeOutOfRange  = errors.New("latitude out of range")
	ErrLongitudeOutOfRange = errors.New("longitude out of range")
	ErrNoConvergence       = errors.New("latitude iteration did not converge")
	ErrOutsideProjection   = errors.New("point is outside of projection area")
	ErrInvalidEllipsoid    = errors.New("invalid ellipsoid")
	ErrInvalidOption       = errors.New("invalid option")
)
