// Package resolver looks up compiled error definitions by name or HTTP status.
package resolver

import (
	"slices"

	openapierror "github.com/QuisEgoSum/openapi-error"
)

// Resolver provides error definitions for resolution.
type Resolver interface {
	// Definitions returns all definitions managed by the resolver.
	Definitions() []*openapierror.Definition
	// ResolveNameStrict resolves a definition by its name.
	// Returns the definition and true if found, nil and false otherwise.
	ResolveNameStrict(name string) (*openapierror.Definition, bool)
	// ResolveHTTPCodeStrict resolves the first definition with the given HTTP status.
	ResolveHTTPCodeStrict(code int) (*openapierror.Definition, bool)
	// ResolveStrictFunc resolves the first definition for which match returns true.
	ResolveStrictFunc(match func(def *openapierror.Definition) bool) (*openapierror.Definition, bool)
}

// New creates a new Resolver with the given definitions.
// Nil and repeated definitions are dropped. If multiple definitions have the
// same name, the first one wins.
func New(defs ...*openapierror.Definition) *StrictResolver {
	kept := make([]*openapierror.Definition, 0, len(defs))
	byName := make(map[string]*openapierror.Definition, len(defs))
	for _, d := range defs {
		if d == nil || slices.Contains(kept, d) {
			continue
		}
		kept = append(kept, d)
		if _, exists := byName[d.Name()]; !exists {
			byName[d.Name()] = d
		}
	}

	return &StrictResolver{
		defs:   kept,
		byName: byName,
	}
}
