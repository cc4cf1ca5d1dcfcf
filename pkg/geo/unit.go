// Package geo provides geographic value objects: lengths (Distance,
// Elevation) measured in imperial or metric units, and Coordinates pairing a
// latitude/longitude with an optional elevation.
//
// Length conversion applies fixed multiplicative constants (0.3048 meters per
// foot and its derivatives). Converting a value to the unit it already
// carries is an identity no-op: the same value is returned unchanged.
package geo

import (
	"strconv"
	"strings"

	"contacts/pkg/serrors"
)

// LengthUnit identifies a unit of length by its abbreviation.
type LengthUnit string

// Supported length units.
const (
	Feet       LengthUnit = "ft"
	Yards      LengthUnit = "yd"
	Meters     LengthUnit = "m"
	Kilometers LengthUnit = "km"
	Miles      LengthUnit = "mi"
)

// metersPer is the conversion table: how many meters one of each unit is.
// All entries derive from the international foot (0.3048 m exactly).
var metersPer = map[LengthUnit]float64{
	Feet:       0.3048,
	Yards:      0.9144,   // 3 ft
	Meters:     1.0,
	Kilometers: 1000.0,
	Miles:      1609.344, // 5280 ft
}

// unitNames maps each unit to its plural English name.
var unitNames = map[LengthUnit]string{
	Feet:       "feet",
	Yards:      "yards",
	Meters:     "meters",
	Kilometers: "kilometers",
	Miles:      "miles",
}

// Abbreviation returns the unit's short form ("ft", "m", ...).
func (u LengthUnit) Abbreviation() string { return string(u) }

// Name returns the unit's plural English name ("feet", "meters", ...).
func (u LengthUnit) Name() string { return unitNames[u] }

// String returns the abbreviation.
func (u LengthUnit) String() string { return string(u) }

// valid reports whether the unit is one of the supported constants.
func (u LengthUnit) valid() bool {
	_, ok := metersPer[u]

	return ok
}

// LengthUnitFrom resolves a length unit from its abbreviation or name,
// case-insensitively. It fails with an invalid-argument error naming the
// unmatched input.
func LengthUnitFrom(s string) (LengthUnit, error) {
	needle := strings.TrimSpace(s)
	if needle == "" {
		return "", serrors.With(serrors.ErrInvalidArgument, "length unit is required")
	}

	for u, name := range unitNames {
		if strings.EqualFold(needle, string(u)) || strings.EqualFold(needle, name) {
			return u, nil
		}
	}

	return "", serrors.With(serrors.ErrInvalidArgument, "length unit [%q] is not recognized", s)
}

// convert translates a measurement between two supported units.
func convert(measurement float64, from, to LengthUnit) float64 {
	return measurement * metersPer[from] / metersPer[to]
}

// formatMeasurement renders a measurement the way the library prints lengths:
// the shortest decimal representation, always carrying a decimal point
// (3 prints as "3.0").
func formatMeasurement(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
