package address

import (
	"strings"

	"contacts/pkg/serrors"
)

// AddressType categorizes how an address is used.
type AddressType string

// Address types.
const (
	TypeUnknown     AddressType = "UNKNOWN"
	TypeBilling     AddressType = "BILLING"
	TypeHome        AddressType = "HOME"
	TypeMailing     AddressType = "MAILING"
	TypeOffice      AddressType = "OFFICE"
	TypePOBox       AddressType = "PO_BOX"
	TypeResidential AddressType = "RESIDENTIAL"
	TypeWork        AddressType = "WORK"
)

// addressTypeAbbreviations maps each type to its abbreviation. Reverse lookup
// matches abbreviations only, so "unknown" does not resolve to TypeUnknown.
var addressTypeAbbreviations = map[AddressType]string{
	TypeUnknown:     "UNKN",
	TypeBilling:     "BI",
	TypeHome:        "HM",
	TypeMailing:     "ML",
	TypeOffice:      "OF",
	TypePOBox:       "PO",
	TypeResidential: "RE",
	TypeWork:        "WK",
}

// Abbreviation returns the type's abbreviation.
func (t AddressType) Abbreviation() string { return addressTypeAbbreviations[t] }

// Description returns a human-readable name, e.g. "PO Box".
func (t AddressType) Description() string {
	switch t {
	case TypePOBox:
		return "PO Box"
	default:
		return titleCase(string(t))
	}
}

// String returns the type constant's name.
func (t AddressType) String() string { return string(t) }

// AddressTypeFrom resolves an address type from its abbreviation,
// case-insensitively. It fails with an invalid-argument error naming the
// unmatched input.
func AddressTypeFrom(s string) (AddressType, error) {
	needle := strings.TrimSpace(s)
	for t, abbreviation := range addressTypeAbbreviations {
		if strings.EqualFold(needle, abbreviation) {
			return t, nil
		}
	}

	return "", serrors.With(serrors.ErrInvalidArgument,
		"address type [%q] is not recognized", s)
}

// Direction is a cardinal or intercardinal street direction, stored as its
// abbreviation.
type Direction string

// Street directions.
const (
	North     Direction = "N"
	South     Direction = "S"
	East      Direction = "E"
	West      Direction = "W"
	Northeast Direction = "NE"
	Northwest Direction = "NW"
	Southeast Direction = "SE"
	Southwest Direction = "SW"
)

// directionNames maps each direction to its full name.
var directionNames = map[Direction]string{
	North:     "North",
	South:     "South",
	East:      "East",
	West:      "West",
	Northeast: "Northeast",
	Northwest: "Northwest",
	Southeast: "Southeast",
	Southwest: "Southwest",
}

// Abbreviation returns the direction's abbreviation ("N", "SW", ...).
func (d Direction) Abbreviation() string { return string(d) }

// Name returns the direction's full name ("North", "Southwest", ...).
func (d Direction) Name() string { return directionNames[d] }

// String returns the abbreviation.
func (d Direction) String() string { return string(d) }

// DirectionFrom resolves a direction from its abbreviation or name,
// case-insensitively. It fails with an invalid-argument error naming the
// unmatched input.
func DirectionFrom(s string) (Direction, error) {
	needle := strings.TrimSpace(s)
	for d, name := range directionNames {
		if strings.EqualFold(needle, string(d)) || strings.EqualFold(needle, name) {
			return d, nil
		}
	}

	return "", serrors.With(serrors.ErrInvalidArgument,
		"direction [%q] is not recognized", s)
}

// titleCase renders an UPPER_SNAKE constant name as words, e.g.
// "RESIDENTIAL" -> "Residential".
func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}

	return strings.Join(words, " ")
}
