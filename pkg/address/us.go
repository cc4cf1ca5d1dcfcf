package address

import (
	"strings"

	"contacts/pkg/country"
	"contacts/pkg/serrors"
)

// State is a United States state (or the District of Columbia), stored as its
// USPS two-letter abbreviation.
type State string

// United States states.
const (
	Alabama            State = "AL"
	Alaska             State = "AK"
	Arizona            State = "AZ"
	Arkansas           State = "AR"
	California         State = "CA"
	Colorado           State = "CO"
	Connecticut        State = "CT"
	Delaware           State = "DE"
	DistrictOfColumbia State = "DC"
	Florida            State = "FL"
	Georgia            State = "GA"
	Hawaii             State = "HI"
	Idaho              State = "ID"
	Illinois           State = "IL"
	Indiana            State = "IN"
	Iowa               State = "IA"
	Kansas             State = "KS"
	Kentucky           State = "KY"
	Louisiana          State = "LA"
	Maine              State = "ME"
	Maryland           State = "MD"
	Massachusetts      State = "MA"
	Michigan           State = "MI"
	Minnesota          State = "MN"
	Mississippi        State = "MS"
	Missouri           State = "MO"
	Montana            State = "MT"
	Nebraska           State = "NE"
	Nevada             State = "NV"
	NewHampshire       State = "NH"
	NewJersey          State = "NJ"
	NewMexico          State = "NM"
	NewYork            State = "NY"
	NorthCarolina      State = "NC"
	NorthDakota        State = "ND"
	Ohio               State = "OH"
	Oklahoma           State = "OK"
	Oregon             State = "OR"
	Pennsylvania       State = "PA"
	RhodeIsland        State = "RI"
	SouthCarolina      State = "SC"
	SouthDakota        State = "SD"
	Tennessee          State = "TN"
	Texas              State = "TX"
	Utah               State = "UT"
	Vermont            State = "VT"
	Virginia           State = "VA"
	Washington         State = "WA"
	WestVirginia       State = "WV"
	Wisconsin          State = "WI"
	Wyoming            State = "WY"
)

// stateNames maps each state to its full name.
var stateNames = map[State]string{
	Alabama:            "Alabama",
	Alaska:             "Alaska",
	Arizona:            "Arizona",
	Arkansas:           "Arkansas",
	California:         "California",
	Colorado:           "Colorado",
	Connecticut:        "Connecticut",
	Delaware:           "Delaware",
	DistrictOfColumbia: "District of Columbia",
	Florida:            "Florida",
	Georgia:            "Georgia",
	Hawaii:             "Hawaii",
	Idaho:              "Idaho",
	Illinois:           "Illinois",
	Indiana:            "Indiana",
	Iowa:               "Iowa",
	Kansas:             "Kansas",
	Kentucky:           "Kentucky",
	Louisiana:          "Louisiana",
	Maine:              "Maine",
	Maryland:           "Maryland",
	Massachusetts:      "Massachusetts",
	Michigan:           "Michigan",
	Minnesota:          "Minnesota",
	Mississippi:        "Mississippi",
	Missouri:           "Missouri",
	Montana:            "Montana",
	Nebraska:           "Nebraska",
	Nevada:             "Nevada",
	NewHampshire:       "New Hampshire",
	NewJersey:          "New Jersey",
	NewMexico:          "New Mexico",
	NewYork:            "New York",
	NorthCarolina:      "North Carolina",
	NorthDakota:        "North Dakota",
	Ohio:               "Ohio",
	Oklahoma:           "Oklahoma",
	Oregon:             "Oregon",
	Pennsylvania:       "Pennsylvania",
	RhodeIsland:        "Rhode Island",
	SouthCarolina:      "South Carolina",
	SouthDakota:        "South Dakota",
	Tennessee:          "Tennessee",
	Texas:              "Texas",
	Utah:               "Utah",
	Vermont:            "Vermont",
	Virginia:           "Virginia",
	Washington:         "Washington",
	WestVirginia:       "West Virginia",
	Wisconsin:          "Wisconsin",
	Wyoming:            "Wyoming",
}

// Abbreviation returns the USPS two-letter abbreviation.
func (s State) Abbreviation() string { return string(s) }

// Name returns the state's full name.
func (s State) Name() string { return stateNames[s] }

// String returns the abbreviation.
func (s State) String() string { return string(s) }

// StateFrom resolves a state from its abbreviation or full name,
// case-insensitively. It fails with an invalid-argument error naming the
// unmatched input.
func StateFrom(s string) (State, error) {
	needle := strings.TrimSpace(s)
	for st, name := range stateNames {
		if strings.EqualFold(needle, string(st)) || strings.EqualFold(needle, name) {
			return st, nil
		}
	}

	return "", serrors.With(serrors.ErrInvalidArgument, "state [%q] is not recognized", s)
}

// UnitedStatesAddress is the United States specialization of Address, adding
// a State and a ZIP code.
//
// The ZIP is the canonical US postal code: SetZip writes both the Zip field
// and the generic PostalCode. The reverse is deliberately not true —
// SetPostalCode leaves the Zip untouched, so a generic postal code never
// masquerades as a ZIP.
type UnitedStatesAddress struct {
	Address
	State State      `json:"state,omitempty"`
	Zip   PostalCode `json:"zip"`
}

// SetZip sets the ZIP code, pinning its country to the United States, and
// back-fills the generic PostalCode with the same value.
func (u *UnitedStatesAddress) SetZip(zip PostalCode) *UnitedStatesAddress {
	zip.Country = country.UnitedStates
	u.Zip = zip
	u.PostalCode = zip

	return u
}

// SetPostalCode sets only the generic postal code; the Zip field keeps its
// value.
func (u *UnitedStatesAddress) SetPostalCode(postalCode PostalCode) *UnitedStatesAddress {
	u.PostalCode = postalCode

	return u
}

// SetState sets the state.
func (u *UnitedStatesAddress) SetState(state State) *UnitedStatesAddress {
	u.State = state

	return u
}

// Clone returns an independent deep copy of the address.
func (u *UnitedStatesAddress) Clone() *UnitedStatesAddress {
	clone := *u
	clone.Address = *u.Address.Clone()

	return &clone
}

// String renders the address as "100 Main ST, Portland, OR 97205, US",
// dropping the state segment when unset.
func (u *UnitedStatesAddress) String() string {
	parts := make([]string, 0, 5)
	parts = append(parts, u.Street.String())
	if u.Unit != nil {
		parts = append(parts, u.Unit.String())
	}
	parts = append(parts, u.City.String())

	cityLine := u.Zip.String()
	if u.State != "" {
		cityLine = string(u.State) + " " + cityLine
	}
	parts = append(parts, cityLine, u.Country.String())

	return strings.Join(parts, ", ")
}

// NewUnitedStatesCity creates a City pinned to the United States.
func NewUnitedStatesCity(name string) (City, error) {
	city, err := NewCity(name)
	if err != nil {
		return City{}, err
	}

	return city.WithCountry(country.UnitedStates), nil
}

// unitedStatesFactory wraps the assembled generic components in a
// UnitedStatesAddress: the builder's postal code becomes the ZIP, and a
// recorded state resolves through StateFrom.
var unitedStatesFactory = FactoryFunc(func(b *Builder) (Addressable, error) { //nolint: gochecknoglobals
	base, err := b.Assemble()
	if err != nil {
		return nil, err
	}

	us := &UnitedStatesAddress{Address: *base}
	us.SetZip(base.PostalCode)

	if s := b.State(); s != "" {
		state, err := StateFrom(s)
		if err != nil {
			return nil, err
		}
		us.SetState(state)
	}

	return us, nil
})
