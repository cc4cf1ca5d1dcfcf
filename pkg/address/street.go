package address

import (
	"strconv"
	"strings"

	"contacts/pkg/serrors"
)

// StreetType is a recognized street suffix, stored as its postal
// abbreviation.
type StreetType string

// Street types, by postal abbreviation.
const (
	StreetTypeUnknown    StreetType = "UNKN"
	StreetTypeAlley      StreetType = "ALY"
	StreetTypeAvenue     StreetType = "AVE"
	StreetTypeBoulevard  StreetType = "BLVD"
	StreetTypeBypass     StreetType = "BYP"
	StreetTypeCauseway   StreetType = "CSWY"
	StreetTypeCircle     StreetType = "CIR"
	StreetTypeCourt      StreetType = "CT"
	StreetTypeCrossing   StreetType = "XING"
	StreetTypeDrive      StreetType = "DR"
	StreetTypeExpressway StreetType = "EXPY"
	StreetTypeFreeway    StreetType = "FWY"
	StreetTypeHighway    StreetType = "HWY"
	StreetTypeJunction   StreetType = "JCT"
	StreetTypeLane       StreetType = "LN"
	StreetTypeLoop       StreetType = "LOOP"
	StreetTypeParkway    StreetType = "PKWY"
	StreetTypePlace      StreetType = "PL"
	StreetTypePlaza      StreetType = "PLZ"
	StreetTypeRoad       StreetType = "RD"
	StreetTypeRoute      StreetType = "RTE"
	StreetTypeSquare     StreetType = "SQ"
	StreetTypeStreet     StreetType = "ST"
	StreetTypeTerrace    StreetType = "TER"
	StreetTypeTrail      StreetType = "TRL"
	StreetTypeTurnpike   StreetType = "TPKE"
	StreetTypeWay        StreetType = "WAY"
)

// streetTypeNames maps each street type to its full name.
var streetTypeNames = map[StreetType]string{
	StreetTypeUnknown:    "Unknown",
	StreetTypeAlley:      "Alley",
	StreetTypeAvenue:     "Avenue",
	StreetTypeBoulevard:  "Boulevard",
	StreetTypeBypass:     "Bypass",
	StreetTypeCauseway:   "Causeway",
	StreetTypeCircle:     "Circle",
	StreetTypeCourt:      "Court",
	StreetTypeCrossing:   "Crossing",
	StreetTypeDrive:      "Drive",
	StreetTypeExpressway: "Expressway",
	StreetTypeFreeway:    "Freeway",
	StreetTypeHighway:    "Highway",
	StreetTypeJunction:   "Junction",
	StreetTypeLane:       "Lane",
	StreetTypeLoop:       "Loop",
	StreetTypeParkway:    "Parkway",
	StreetTypePlace:      "Place",
	StreetTypePlaza:      "Plaza",
	StreetTypeRoad:       "Road",
	StreetTypeRoute:      "Route",
	StreetTypeSquare:     "Square",
	StreetTypeStreet:     "Street",
	StreetTypeTerrace:    "Terrace",
	StreetTypeTrail:      "Trail",
	StreetTypeTurnpike:   "Turnpike",
	StreetTypeWay:        "Way",
}

// Abbreviation returns the postal abbreviation ("AVE", "RD", ...).
func (t StreetType) Abbreviation() string { return string(t) }

// Name returns the full name ("Avenue", "Road", ...).
func (t StreetType) Name() string { return streetTypeNames[t] }

// String returns the abbreviation.
func (t StreetType) String() string { return string(t) }

// StreetTypeFrom resolves a street type from its abbreviation or full name,
// case-insensitively. It fails with an invalid-argument error naming the
// unmatched input.
func StreetTypeFrom(s string) (StreetType, error) {
	needle := strings.TrimSpace(s)
	for t, name := range streetTypeNames {
		if strings.EqualFold(needle, string(t)) || strings.EqualFold(needle, name) {
			return t, nil
		}
	}

	return "", serrors.With(serrors.ErrInvalidArgument,
		"street type [%q] is not recognized", s)
}

// Street is a street line: a number and a name, optionally qualified by a
// direction prefix and a street-type suffix.
type Street struct {
	Number    int        `json:"number"`
	Name      string     `json:"name"`
	Type      StreetType `json:"type,omitempty"`
	Direction Direction  `json:"direction,omitempty"`
}

// NewStreet creates a Street, rejecting blank names.
func NewStreet(number int, name string) (Street, error) {
	if strings.TrimSpace(name) == "" {
		return Street{}, serrors.With(serrors.ErrInvalidArgument, "street name is required")
	}

	return Street{Number: number, Name: name}, nil
}

// WithType returns a copy of the street carrying the given type.
func (s Street) WithType(t StreetType) Street {
	s.Type = t

	return s
}

// WithDirection returns a copy of the street carrying the given direction.
func (s Street) WithDirection(d Direction) Street {
	s.Direction = d

	return s
}

// IsSet reports whether the street carries a value.
func (s Street) IsSet() bool { return s.Name != "" }

// Equal reports whether both streets are the same line.
func (s Street) Equal(other Street) bool { return s == other }

// Compare orders streets by name (case-insensitive), then number.
func (s Street) Compare(other Street) int {
	if c := strings.Compare(strings.ToLower(s.Name), strings.ToLower(other.Name)); c != 0 {
		return c
	}

	switch {
	case s.Number < other.Number:
		return -1
	case s.Number > other.Number:
		return 1
	default:
		return 0
	}
}

// String renders the street as "767 SW Airline RD", omitting the direction
// and type segments when absent.
func (s Street) String() string {
	parts := make([]string, 0, 4)
	parts = append(parts, strconv.Itoa(s.Number))
	if s.Direction != "" {
		parts = append(parts, string(s.Direction))
	}
	parts = append(parts, s.Name)
	if s.Type != "" {
		parts = append(parts, string(s.Type))
	}

	return strings.Join(parts, " ")
}

// ParseStreet decomposes a free-text street line into number, optional
// direction, name, and optional type.
//
// Tokenization splits on whitespace after trimming (runs collapse). The
// first token must be an integer street number. A token directly after the
// number matching a direction abbreviation is consumed as the Direction,
// provided at least one name token follows it. The final token matching a
// street-type abbreviation or full name (case-insensitively) is consumed as
// the Type, again provided a name token remains. Everything left is the name.
func ParseStreet(raw string) (Street, error) {
	tokens := strings.Fields(raw)
	if len(tokens) < 2 {
		return Street{}, serrors.With(serrors.ErrInvalidArgument,
			"street address [%q] must minimally consist of a number and name", raw)
	}

	number, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Street{}, serrors.Wrap(serrors.ErrInvalidArgument, err,
			"street address [%q] must begin with a street number", raw)
	}

	rest := tokens[1:]

	var direction Direction
	if len(rest) > 1 {
		if d, err := DirectionFrom(rest[0]); err == nil {
			direction = d
			rest = rest[1:]
		}
	}

	var streetType StreetType
	if len(rest) > 1 {
		if t, err := StreetTypeFrom(rest[len(rest)-1]); err == nil {
			streetType = t
			rest = rest[:len(rest)-1]
		}
	}

	if len(rest) == 0 {
		return Street{}, serrors.With(serrors.ErrInvalidArgument,
			"street address [%q] must minimally consist of a number and name", raw)
	}

	street, err := NewStreet(number, strings.Join(rest, " "))
	if err != nil {
		return Street{}, err
	}
	street.Direction = direction
	street.Type = streetType

	return street, nil
}
