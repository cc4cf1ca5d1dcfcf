package geo

import (
	"contacts/pkg/serrors"
)

// Elevation is an altitude measurement in a particular unit. Like Distance it
// rejects negative measurements at construction; altitudes are measured up
// from sea level.
type Elevation struct {
	Altitude float64    `json:"altitude"`
	Unit     LengthUnit `json:"unit"`
}

// NewElevation creates an Elevation, rejecting negative altitudes and
// unrecognized units with an invalid-argument error.
func NewElevation(altitude float64, unit LengthUnit) (Elevation, error) {
	if altitude < 0 {
		return Elevation{}, serrors.With(serrors.ErrInvalidArgument,
			"elevation altitude [%v] must not be negative", altitude)
	}
	if !unit.valid() {
		return Elevation{}, serrors.With(serrors.ErrInvalidArgument,
			"length unit [%q] is not recognized", string(unit))
	}

	return Elevation{Altitude: altitude, Unit: unit}, nil
}

// AtMeters creates an Elevation measured in meters.
func AtMeters(altitude float64) (Elevation, error) { return NewElevation(altitude, Meters) }

// AtFeet creates an Elevation measured in feet.
func AtFeet(altitude float64) (Elevation, error) { return NewElevation(altitude, Feet) }

// To converts the elevation to the target unit, with the same identity
// short-circuit as Distance.To.
func (e Elevation) To(unit LengthUnit) Elevation {
	if unit == e.Unit {
		return e
	}

	return Elevation{Altitude: convert(e.Altitude, e.Unit, unit), Unit: unit}
}

// ToFeet converts the elevation to feet.
func (e Elevation) ToFeet() Elevation { return e.To(Feet) }

// ToMeters converts the elevation to meters.
func (e Elevation) ToMeters() Elevation { return e.To(Meters) }

// Meters returns the altitude normalized to meters.
func (e Elevation) Meters() float64 { return convert(e.Altitude, e.Unit, Meters) }

// Equal reports whether both elevations describe the same real-world
// altitude, regardless of unit.
func (e Elevation) Equal(other Elevation) bool {
	diff := e.Meters() - other.Meters()

	return diff < equalityTolerance && diff > -equalityTolerance
}

// Compare orders elevations by their normalized altitude.
func (e Elevation) Compare(other Elevation) int {
	if e.Equal(other) {
		return 0
	}
	if e.Meters() < other.Meters() {
		return -1
	}

	return 1
}

// String renders the elevation as "<altitude> <unit name>", e.g. "3.0 meters".
func (e Elevation) String() string {
	return formatMeasurement(e.Altitude) + " " + e.Unit.Name()
}
