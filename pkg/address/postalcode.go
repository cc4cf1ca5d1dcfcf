package address

import (
	"strings"

	"contacts/pkg/country"
	"contacts/pkg/serrors"
)

// PostalCode is a postal code, optionally qualified by country. The number is
// kept as a string; many countries use alphanumeric codes.
type PostalCode struct {
	Number  string          `json:"number"`
	Country country.Country `json:"country,omitempty"`
}

// NewPostalCode creates a PostalCode, rejecting blank numbers.
func NewPostalCode(number string) (PostalCode, error) {
	if strings.TrimSpace(number) == "" {
		return PostalCode{}, serrors.With(serrors.ErrInvalidArgument, "postal code number is required")
	}

	return PostalCode{Number: number}, nil
}

// WithCountry returns a copy of the postal code carrying the given country.
func (p PostalCode) WithCountry(c country.Country) PostalCode {
	p.Country = c

	return p
}

// IsSet reports whether the postal code carries a value.
func (p PostalCode) IsSet() bool { return p.Number != "" }

// Equal reports whether both values carry the same code number. The country
// is contextual and does not participate.
func (p PostalCode) Equal(other PostalCode) bool { return p.Number == other.Number }

// Compare orders postal codes by number.
func (p PostalCode) Compare(other PostalCode) int {
	return strings.Compare(p.Number, other.Number)
}

// String returns the code number.
func (p PostalCode) String() string { return p.Number }
