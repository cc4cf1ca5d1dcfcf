package address

import (
	"strings"

	"contacts/pkg/serrors"
)

// UnitType categorizes a secondary address unit.
type UnitType string

// Unit types.
const (
	UnitTypeUnknown   UnitType = "UNKNOWN"
	UnitTypeApartment UnitType = "APARTMENT"
	UnitTypeOffice    UnitType = "OFFICE"
	UnitTypeRoom      UnitType = "ROOM"
	UnitTypeSuite     UnitType = "SUITE"
	UnitTypeUnit      UnitType = "UNIT"
)

// unitTypeAbbreviations maps each unit type to its postal abbreviation.
var unitTypeAbbreviations = map[UnitType]string{
	UnitTypeUnknown:   "UNKN",
	UnitTypeApartment: "APT",
	UnitTypeOffice:    "OFC",
	UnitTypeRoom:      "RM",
	UnitTypeSuite:     "STE",
	UnitTypeUnit:      "UNIT",
}

// Abbreviation returns the postal abbreviation ("APT", "STE", ...).
func (t UnitType) Abbreviation() string { return unitTypeAbbreviations[t] }

// Description returns a human-readable name ("Apartment", "Suite", ...).
func (t UnitType) Description() string { return titleCase(string(t)) }

// String returns the type constant's name.
func (t UnitType) String() string { return string(t) }

// UnitTypeFrom resolves a unit type from its abbreviation or description,
// case-insensitively. It fails with an invalid-argument error naming the
// unmatched input.
func UnitTypeFrom(s string) (UnitType, error) {
	needle := strings.TrimSpace(s)
	for t, abbreviation := range unitTypeAbbreviations {
		if strings.EqualFold(needle, abbreviation) || strings.EqualFold(needle, t.Description()) {
			return t, nil
		}
	}

	return "", serrors.With(serrors.ErrInvalidArgument,
		"unit type [%q] is not recognized", s)
}

// Unit is a secondary address unit: an apartment, office, room or suite
// number within a street address.
type Unit struct {
	Number string   `json:"number"`
	Type   UnitType `json:"type,omitempty"`
}

// NewUnit creates a Unit, rejecting blank numbers.
func NewUnit(number string) (Unit, error) {
	if strings.TrimSpace(number) == "" {
		return Unit{}, serrors.With(serrors.ErrInvalidArgument, "unit number is required")
	}

	return Unit{Number: number}, nil
}

// WithType returns a copy of the unit carrying the given type.
func (u Unit) WithType(t UnitType) Unit {
	u.Type = t

	return u
}

// Equal reports whether both units are the same.
func (u Unit) Equal(other Unit) bool { return u == other }

// Compare orders units by number, then type.
func (u Unit) Compare(other Unit) int {
	if c := strings.Compare(u.Number, other.Number); c != 0 {
		return c
	}

	return strings.Compare(string(u.Type), string(other.Type))
}

// String renders the unit as "Suite 16" when typed, or "#16" otherwise.
func (u Unit) String() string {
	if u.Type != "" && u.Type != UnitTypeUnknown {
		return u.Type.Description() + " " + u.Number
	}

	return "#" + u.Number
}
