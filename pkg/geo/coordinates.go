package geo

import (
	"strings"

	"contacts/pkg/serrors"
)

// Latitude/longitude bounds in decimal degrees.
const (
	MaxLatitude  = 90.0
	MaxLongitude = 180.0
)

// Coordinates is a geographic point: latitude and longitude in decimal
// degrees, with an optional elevation.
type Coordinates struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Elevation *Elevation `json:"elevation,omitempty"`
}

// NewCoordinates creates Coordinates, rejecting out-of-range latitude or
// longitude with an invalid-argument error.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < -MaxLatitude || latitude > MaxLatitude {
		return Coordinates{}, serrors.With(serrors.ErrInvalidArgument,
			"latitude [%v] must be between -90 and 90", latitude)
	}
	if longitude < -MaxLongitude || longitude > MaxLongitude {
		return Coordinates{}, serrors.With(serrors.ErrInvalidArgument,
			"longitude [%v] must be between -180 and 180", longitude)
	}

	return Coordinates{Latitude: latitude, Longitude: longitude}, nil
}

// WithElevation returns a copy of the coordinates carrying the given
// elevation.
func (c Coordinates) WithElevation(elevation Elevation) Coordinates {
	c.Elevation = &elevation

	return c
}

// Equal reports whether both coordinates describe the same point. Elevations
// are compared by real-world altitude when both are present; a coordinate
// with an elevation is not equal to one without.
func (c Coordinates) Equal(other Coordinates) bool {
	if c.Latitude != other.Latitude || c.Longitude != other.Longitude {
		return false
	}

	switch {
	case c.Elevation == nil && other.Elevation == nil:
		return true
	case c.Elevation == nil || other.Elevation == nil:
		return false
	default:
		return c.Elevation.Equal(*other.Elevation)
	}
}

// Clone returns a copy of the coordinates whose elevation (when present) is
// an independent allocation.
func (c Coordinates) Clone() Coordinates {
	clone := c
	if c.Elevation != nil {
		elevation := *c.Elevation
		clone.Elevation = &elevation
	}

	return clone
}

// String renders the point as
// "[latitude: 1.0, longitude: 2.0, altitude: 3.0 meters]", omitting the
// altitude segment when no elevation is set.
func (c Coordinates) String() string {
	var b strings.Builder

	b.WriteString("[latitude: ")
	b.WriteString(formatMeasurement(c.Latitude))
	b.WriteString(", longitude: ")
	b.WriteString(formatMeasurement(c.Longitude))
	if c.Elevation != nil {
		b.WriteString(", altitude: ")
		b.WriteString(c.Elevation.String())
	}
	b.WriteString("]")

	return b.String()
}
