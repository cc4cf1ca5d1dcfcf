package address

import (
	"contacts/pkg/country"
	"contacts/pkg/geo"
	"contacts/pkg/serrors"
)

// Builder accumulates address components and validates them on Build.
// Street, City and PostalCode are required; Country defaults to the
// configured local country when left unset. Build resolves the assembled
// address through a Registry so countries with specialized models (the
// United States) produce their variant.
type Builder struct {
	registry    *Registry
	street      *Street
	unit        *Unit
	city        *City
	postalCode  *PostalCode
	country     country.Country
	coordinates *geo.Coordinates
	state       string
}

// NewBuilder creates an empty Builder backed by the default registry.
func NewBuilder() *Builder {
	return &Builder{registry: DefaultRegistry()}
}

// From seeds a new Builder with the components of an existing address:
// street, unit, city, postal code, country and coordinates. The address type
// is deliberately not copied; callers re-apply it after Build.
func From(existing Addressable) *Builder {
	b := NewBuilder()
	if existing == nil {
		return b
	}

	base := existing.Base()
	b.WithStreet(base.Street)
	if base.Unit != nil {
		b.WithUnit(*base.Unit)
	}
	b.WithCity(base.City)
	b.WithPostalCode(base.PostalCode)
	b.WithCountry(base.Country)
	if base.Coordinates != nil {
		b.WithCoordinates(*base.Coordinates)
	}

	return b
}

// WithRegistry directs Build through the given registry instead of the
// default one.
func (b *Builder) WithRegistry(r *Registry) *Builder {
	b.registry = r

	return b
}

// WithStreet sets the street.
func (b *Builder) WithStreet(street Street) *Builder {
	b.street = &street

	return b
}

// WithUnit sets the optional unit.
func (b *Builder) WithUnit(unit Unit) *Builder {
	b.unit = &unit

	return b
}

// WithCity sets the city.
func (b *Builder) WithCity(city City) *Builder {
	b.city = &city

	return b
}

// WithPostalCode sets the postal code.
func (b *Builder) WithPostalCode(postalCode PostalCode) *Builder {
	b.postalCode = &postalCode

	return b
}

// WithCountry sets the country. Setting the unset value keeps the default
// local-country resolution.
func (b *Builder) WithCountry(c country.Country) *Builder {
	b.country = c

	return b
}

// WithCoordinates sets the optional coordinates.
func (b *Builder) WithCoordinates(coordinates geo.Coordinates) *Builder {
	b.coordinates = &coordinates

	return b
}

// WithState records a state for country-specialized factories. It only
// participates when the resolved country has a factory that reads it (the
// United States).
func (b *Builder) WithState(state string) *Builder {
	b.state = state

	return b
}

// Country returns the country the built address will carry: the one set on
// the builder, or the configured local country.
func (b *Builder) Country() country.Country {
	if b.country.IsSet() {
		return b.country
	}

	return country.Local()
}

// State returns the state recorded with WithState, or "".
func (b *Builder) State() string { return b.state }

// Assemble validates the required components and constructs the generic
// address. It fails with an invalid-argument error naming the first missing
// required field, in order: Street, City, PostalCode. Factories call
// Assemble and wrap the result in their country's variant.
func (b *Builder) Assemble() (*Address, error) {
	switch {
	case b.street == nil:
		return nil, serrors.With(serrors.ErrInvalidArgument, "Street is required")
	case b.city == nil:
		return nil, serrors.With(serrors.ErrInvalidArgument, "City is required")
	case b.postalCode == nil:
		return nil, serrors.With(serrors.ErrInvalidArgument, "PostalCode is required")
	}

	a := &Address{
		Street:     *b.street,
		City:       *b.city,
		PostalCode: *b.postalCode,
		Country:    b.Country(),
	}
	if b.unit != nil {
		unit := *b.unit
		a.Unit = &unit
	}
	if b.coordinates != nil {
		coordinates := b.coordinates.Clone()
		a.Coordinates = &coordinates
	}

	return a, nil
}

// Build resolves the factory registered for the builder's country (falling
// back to the generic factory) and produces the built address variant.
func (b *Builder) Build() (Addressable, error) {
	registry := b.registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	return registry.Resolve(b.Country()).New(b)
}
