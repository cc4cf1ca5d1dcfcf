package geo

import (
	"contacts/pkg/serrors"
)

// equalityTolerance bounds the normalized-meters difference under which two
// lengths are considered the same real-world measurement. It absorbs the
// rounding of published conversion constants (3280.84 ft/km and friends).
const equalityTolerance = 1e-4

// Distance is a non-negative length measurement in a particular unit.
// The zero value carries an empty unit, so construct distances through
// NewDistance or the In* helpers.
type Distance struct {
	Measurement float64    `json:"measurement"`
	Unit        LengthUnit `json:"unit"`
}

// NewDistance creates a Distance, rejecting negative measurements and
// unrecognized units with an invalid-argument error.
func NewDistance(measurement float64, unit LengthUnit) (Distance, error) {
	if measurement < 0 {
		return Distance{}, serrors.With(serrors.ErrInvalidArgument,
			"distance measurement [%v] must not be negative", measurement)
	}
	if !unit.valid() {
		return Distance{}, serrors.With(serrors.ErrInvalidArgument,
			"length unit [%q] is not recognized", string(unit))
	}

	return Distance{Measurement: measurement, Unit: unit}, nil
}

// InFeet creates a Distance measured in feet.
func InFeet(measurement float64) (Distance, error) { return NewDistance(measurement, Feet) }

// InYards creates a Distance measured in yards.
func InYards(measurement float64) (Distance, error) { return NewDistance(measurement, Yards) }

// InMeters creates a Distance measured in meters.
func InMeters(measurement float64) (Distance, error) { return NewDistance(measurement, Meters) }

// InKilometers creates a Distance measured in kilometers.
func InKilometers(measurement float64) (Distance, error) {
	return NewDistance(measurement, Kilometers)
}

// InMiles creates a Distance measured in miles.
func InMiles(measurement float64) (Distance, error) { return NewDistance(measurement, Miles) }

// To converts the distance to the target unit. Converting to the unit the
// distance already carries returns the receiver unchanged; any other target
// produces a new value computed from the fixed conversion constants.
func (d Distance) To(unit LengthUnit) Distance {
	if unit == d.Unit {
		return d
	}

	return Distance{Measurement: convert(d.Measurement, d.Unit, unit), Unit: unit}
}

// ToFeet converts the distance to feet.
func (d Distance) ToFeet() Distance { return d.To(Feet) }

// ToYards converts the distance to yards.
func (d Distance) ToYards() Distance { return d.To(Yards) }

// ToMeters converts the distance to meters.
func (d Distance) ToMeters() Distance { return d.To(Meters) }

// ToKilometers converts the distance to kilometers.
func (d Distance) ToKilometers() Distance { return d.To(Kilometers) }

// ToMiles converts the distance to miles.
func (d Distance) ToMiles() Distance { return d.To(Miles) }

// Meters returns the measurement normalized to meters.
func (d Distance) Meters() float64 { return convert(d.Measurement, d.Unit, Meters) }

// Equal reports whether both distances describe the same real-world length,
// regardless of unit: 1000 m equals 1 km equals 3280.84 ft.
func (d Distance) Equal(other Distance) bool {
	diff := d.Meters() - other.Meters()

	return diff < equalityTolerance && diff > -equalityTolerance
}

// Compare orders distances by their normalized measurement. Equal (within
// tolerance) distances compare as 0.
func (d Distance) Compare(other Distance) int {
	if d.Equal(other) {
		return 0
	}
	if d.Meters() < other.Meters() {
		return -1
	}

	return 1
}

// String renders the distance as "<measurement> <unit name>", e.g. "3.5 kilometers".
func (d Distance) String() string {
	return formatMeasurement(d.Measurement) + " " + d.Unit.Name()
}
