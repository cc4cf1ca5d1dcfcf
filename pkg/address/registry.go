package address

import (
	"sync"

	"contacts/pkg/country"
)

// Factory produces a built address variant from an assembled Builder.
// Country-specialized factories call Builder.Assemble for the validated
// generic components, then wrap them in their variant.
type Factory interface {
	New(b *Builder) (Addressable, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(b *Builder) (Addressable, error)

// New calls f.
func (f FactoryFunc) New(b *Builder) (Addressable, error) { return f(b) }

// genericFactory builds the plain *Address used for every country without a
// registered specialization.
var genericFactory = FactoryFunc(func(b *Builder) (Addressable, error) { //nolint: gochecknoglobals
	return b.Assemble()
})

// Registry maps countries to the Factory that builds their address variant,
// with the generic factory as fallback. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[country.Country]Factory
	fallback  Factory
}

// NewRegistry creates a Registry pre-populated with the built-in
// specializations: the United States resolves to the UnitedStatesAddress
// factory, everything else to the generic fallback.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[country.Country]Factory),
		fallback:  genericFactory,
	}
	r.Register(country.UnitedStates, unitedStatesFactory)

	return r
}

// Register associates a country with a factory, replacing any previous
// registration for that country.
func (r *Registry) Register(c country.Country, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[c] = f
}

// Resolve returns the factory registered for the country, or the generic
// fallback when none is.
func (r *Registry) Resolve(c country.Country) Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.factories[c]; ok {
		return f
	}

	return r.fallback
}

// defaultRegistry backs builders that don't supply their own registry.
var defaultRegistry = NewRegistry() //nolint: gochecknoglobals

// DefaultRegistry returns the process-wide registry used by NewBuilder.
func DefaultRegistry() *Registry { return defaultRegistry }
