// Package address models postal addresses: the Street/Unit/City/PostalCode
// leaf units, the Address composite assembled from them, a Builder with an
// accumulate-then-validate contract, and a country-keyed registry that
// resolves country-specialized variants (currently the United States) with a
// generic fallback.
package address

import (
	"fmt"
	"strings"

	"contacts/pkg/country"
	"contacts/pkg/geo"
	"contacts/pkg/serrors"
)

// Addressable is implemented by every built address variant: the generic
// *Address and country specializations such as *UnitedStatesAddress.
// Base exposes the generic view shared by all variants.
type Addressable interface {
	fmt.Stringer
	Validate() error
	Base() *Address
}

// Address is a postal address. Street, City, PostalCode and Country are
// required for a valid address; Unit, Coordinates, Type and ID are optional
// attributes. Addresses may be assembled incrementally and checked with
// Validate, or constructed through the Builder which validates on Build.
type Address struct {
	ID          int64            `json:"id,omitempty"`
	Street      Street           `json:"street"`
	Unit        *Unit            `json:"unit,omitempty"`
	City        City             `json:"city"`
	PostalCode  PostalCode       `json:"postalCode"`
	Country     country.Country  `json:"country"`
	Coordinates *geo.Coordinates `json:"coordinates,omitempty"`
	Type        AddressType      `json:"type,omitempty"`
}

// Base returns the address itself; it makes *Address satisfy Addressable and
// gives specializations a promoted accessor to the generic view.
func (a *Address) Base() *Address { return a }

// Validate checks that all required components are present, failing with an
// invalid-state error naming the first missing one: Street, City, PostalCode,
// then Country.
func (a *Address) Validate() error {
	switch {
	case !a.Street.IsSet():
		return serrors.With(serrors.ErrInvalidState, "Street is required")
	case !a.City.IsSet():
		return serrors.With(serrors.ErrInvalidState, "City is required")
	case !a.PostalCode.IsSet():
		return serrors.With(serrors.ErrInvalidState, "PostalCode is required")
	case !a.Country.IsSet():
		return serrors.With(serrors.ErrInvalidState, "Country is required")
	default:
		return nil
	}
}

// Type application helpers; Build deliberately does not copy the type, so
// callers re-apply it on the built address.

// AsBilling marks the address as a billing address and returns it.
func (a *Address) AsBilling() *Address { a.Type = TypeBilling; return a }

// AsHome marks the address as a home address and returns it.
func (a *Address) AsHome() *Address { a.Type = TypeHome; return a }

// AsMailing marks the address as a mailing address and returns it.
func (a *Address) AsMailing() *Address { a.Type = TypeMailing; return a }

// AsOffice marks the address as an office address and returns it.
func (a *Address) AsOffice() *Address { a.Type = TypeOffice; return a }

// AsPOBox marks the address as a PO Box and returns it.
func (a *Address) AsPOBox() *Address { a.Type = TypePOBox; return a }

// AsResidential marks the address as residential and returns it.
func (a *Address) AsResidential() *Address { a.Type = TypeResidential; return a }

// AsWork marks the address as a work address and returns it.
func (a *Address) AsWork() *Address { a.Type = TypeWork; return a }

// Equal reports whether both addresses describe the same location: street,
// unit, city, postal code and country. Type, coordinates and ID are
// attributes, not identity.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	if !a.Street.Equal(other.Street) {
		return false
	}
	if (a.Unit == nil) != (other.Unit == nil) {
		return false
	}
	if a.Unit != nil && !a.Unit.Equal(*other.Unit) {
		return false
	}

	return a.City.Equal(other.City) &&
		a.PostalCode.Equal(other.PostalCode) &&
		a.Country == other.Country
}

// Compare orders addresses by country, city, postal code, street, then unit.
func (a *Address) Compare(other *Address) int {
	if c := strings.Compare(string(a.Country), string(other.Country)); c != 0 {
		return c
	}
	if c := a.City.Compare(other.City); c != 0 {
		return c
	}
	if c := a.PostalCode.Compare(other.PostalCode); c != 0 {
		return c
	}
	if c := a.Street.Compare(other.Street); c != 0 {
		return c
	}

	switch {
	case a.Unit == nil && other.Unit == nil:
		return 0
	case a.Unit == nil:
		return -1
	case other.Unit == nil:
		return 1
	default:
		return a.Unit.Compare(*other.Unit)
	}
}

// Clone returns an independent deep copy of the address.
func (a *Address) Clone() *Address {
	if a == nil {
		return nil
	}
	clone := *a
	if a.Unit != nil {
		unit := *a.Unit
		clone.Unit = &unit
	}
	if a.Coordinates != nil {
		coordinates := a.Coordinates.Clone()
		clone.Coordinates = &coordinates
	}

	return &clone
}

// String renders the address as "100 Main ST, Suite 4, Portland, 97205, US",
// omitting the unit segment when absent.
func (a *Address) String() string {
	parts := make([]string, 0, 5)
	parts = append(parts, a.Street.String())
	if a.Unit != nil {
		parts = append(parts, a.Unit.String())
	}
	parts = append(parts, a.City.String(), a.PostalCode.String(), a.Country.String())

	return strings.Join(parts, ", ")
}
