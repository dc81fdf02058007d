package stereoconv

import (
	"fmt"
	"sync"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// WGS84 is the WGS84 ellipsoid.
var WGS84 Ellipsoid

var (
	defaultMu    sync.RWMutex
	defaultFrame *ReferenceFrame
)

func init() {
	const semiMajorAxis = 6378137.0
	const semiMinorAxis = 6356752.3142
	var err error
	WGS84, err = NewEllipsoid(semiMajorAxis, semiMinorAxis)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
}

// InitializeReferencePoint sets the process-wide WGS84 reference frame used
// by ConvertStereoToGeodetic. Latitude and longitude are in radians. A
// later call replaces the frame; a failed call leaves it unchanged.
func InitializeReferencePoint(latitude, longitude float64) error {
	f, err := NewReferenceFrame(s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)})
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultFrame = f
	defaultMu.Unlock()
	return nil
}

// DefaultReferenceFrame returns the process-wide reference frame, or nil if
// InitializeReferencePoint has not succeeded yet.
func DefaultReferenceFrame() *ReferenceFrame {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFrame
}

// ConvertStereoToGeodetic converts an offset in meters from the
// process-wide reference point to geodetic coordinates.
func ConvertStereoToGeodetic(x, y float64) (GeodeticCoord, error) {
	f := DefaultReferenceFrame()
	if f == nil {
		return GeodeticCoord{}, ErrNotInitialized
	}
	return f.ConvertToGeodetic(r2.Point{X: x, Y: y})
}

// resetDefault clears the process-wide frame.
func resetDefault() {
	defaultMu.Lock()
	defaultFrame = nil
	defaultMu.Unlock()
}
