package resolver

import (
	"slices"

	openapierror "github.com/QuisEgoSum/openapi-error"
)

// StrictResolver manages multiple error definitions and resolves them by
// name, HTTP status or a custom predicate.
type StrictResolver struct {
	defs   []*openapierror.Definition
	byName map[string]*openapierror.Definition
}

var _ Resolver = (*StrictResolver)(nil)

// WithFallback creates a new FallbackResolver that uses the given definition
// as a fallback when resolution fails.
func (r *StrictResolver) WithFallback(fallback *openapierror.Definition) *FallbackResolver {
	allDefs := append(r.Definitions(), fallback)
	return &FallbackResolver{
		resolver: New(allDefs...),
		fallback: fallback,
	}
}

// Definitions implements Resolver.
func (r *StrictResolver) Definitions() []*openapierror.Definition {
	return slices.Clone(r.defs)
}

// ResolveNameStrict implements Resolver.
func (r *StrictResolver) ResolveNameStrict(name string) (*openapierror.Definition, bool) {
	def, ok := r.byName[name]
	return def, ok
}

// ResolveHTTPCodeStrict implements Resolver.
func (r *StrictResolver) ResolveHTTPCodeStrict(code int) (*openapierror.Definition, bool) {
	return r.ResolveStrictFunc(func(def *openapierror.Definition) bool {
		return def.HTTPCode() == code
	})
}

// ResolveStrictFunc implements Resolver.
func (r *StrictResolver) ResolveStrictFunc(match func(def *openapierror.Definition) bool) (*openapierror.Definition, bool) {
	for _, def := range r.defs {
		if match(def) {
			return def, true // First definition wins
		}
	}
	return nil, false
}
