package resolver

import openapierror "github.com/QuisEgoSum/openapi-error"

// FallbackResolver wraps a Resolver with fallback functionality,
// returning a fallback definition when resolution fails.
type FallbackResolver struct {
	resolver Resolver
	fallback *openapierror.Definition
}

var _ Resolver = (*FallbackResolver)(nil)

// ResolveName resolves a definition by its name.
// Returns the fallback definition if resolution fails.
func (r *FallbackResolver) ResolveName(name string) *openapierror.Definition {
	if def, ok := r.resolver.ResolveNameStrict(name); ok {
		return def
	}
	return r.fallback
}

// ResolveHTTPCode resolves the first definition with the given HTTP status.
// Returns the fallback definition if resolution fails.
func (r *FallbackResolver) ResolveHTTPCode(code int) *openapierror.Definition {
	if def, ok := r.resolver.ResolveHTTPCodeStrict(code); ok {
		return def
	}
	return r.fallback
}

// ResolveFunc resolves the first definition for which match returns true.
// Returns the fallback definition if resolution fails.
func (r *FallbackResolver) ResolveFunc(match func(def *openapierror.Definition) bool) *openapierror.Definition {
	if def, ok := r.resolver.ResolveStrictFunc(match); ok {
		return def
	}
	return r.fallback
}

// Fallback returns the fallback definition.
func (r *FallbackResolver) Fallback() *openapierror.Definition {
	return r.fallback
}

// Definitions implements Resolver.
func (r *FallbackResolver) Definitions() []*openapierror.Definition {
	return r.resolver.Definitions()
}

// ResolveNameStrict implements Resolver.
func (r *FallbackResolver) ResolveNameStrict(name string) (*openapierror.Definition, bool) {
	return r.resolver.ResolveNameStrict(name)
}

// ResolveHTTPCodeStrict implements Resolver.
func (r *FallbackResolver) ResolveHTTPCodeStrict(code int) (*openapierror.Definition, bool) {
	return r.resolver.ResolveHTTPCodeStrict(code)
}

// ResolveStrictFunc implements Resolver.
func (r *FallbackResolver) ResolveStrictFunc(match func(def *openapierror.Definition) bool) (*openapierror.Definition, bool) {
	return r.resolver.ResolveStrictFunc(match)
}
