package address

import (
	"strings"

	"contacts/pkg/country"
	"contacts/pkg/serrors"
)

// City is a city name, optionally qualified by the country it belongs to.
type City struct {
	Name    string          `json:"name"`
	Country country.Country `json:"country,omitempty"`
}

// NewCity creates a City, rejecting blank names.
func NewCity(name string) (City, error) {
	if strings.TrimSpace(name) == "" {
		return City{}, serrors.With(serrors.ErrInvalidArgument, "city name is required")
	}

	return City{Name: name}, nil
}

// WithCountry returns a copy of the city carrying the given country.
func (c City) WithCountry(co country.Country) City {
	c.Country = co

	return c
}

// IsSet reports whether the city carries a value.
func (c City) IsSet() bool { return c.Name != "" }

// Equal reports whether both values name the same city; names compare
// case-insensitively.
func (c City) Equal(other City) bool {
	return strings.EqualFold(c.Name, other.Name) && c.Country == other.Country
}

// Compare orders cities by name, case-insensitively.
func (c City) Compare(other City) int {
	return strings.Compare(strings.ToLower(c.Name), strings.ToLower(other.Name))
}

// String returns the city name.
func (c City) String() string { return c.Name }
