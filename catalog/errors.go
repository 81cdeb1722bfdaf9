package catalog

import openapierror "github.com/QuisEgoSum/openapi-error"

var (
	// ErrInvalidCatalog is returned for malformed documents and for entries
	// with a missing or duplicate name.
	ErrInvalidCatalog = openapierror.Compile(
		openapierror.Schema{
			"title": "InvalidCatalogError",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"line": map[string]any{"type": "integer"},
			},
		},
		openapierror.Values{"message": "invalid error catalog"},
		openapierror.NoTrace(),
	)

	// ErrUnknownParent is returned when an entry extends a name that is not
	// in the catalog.
	ErrUnknownParent = openapierror.Compile(
		openapierror.Schema{
			"title": "UnknownParentError",
			"properties": map[string]any{
				"name":   map[string]any{"type": "string"},
				"parent": map[string]any{"type": "string"},
				"line":   map[string]any{"type": "integer"},
			},
		},
		openapierror.Values{"message": "extended error is not defined"},
		openapierror.NoTrace(),
	)

	// ErrCyclicExtends is returned when extends chains form a cycle.
	ErrCyclicExtends = openapierror.Compile(
		openapierror.Schema{
			"title": "CyclicExtendsError",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"line": map[string]any{"type": "integer"},
			},
		},
		openapierror.Values{"message": "extends chain is cyclic"},
		openapierror.NoTrace(),
	)

	// NameFrom extracts the entry name from a catalog error.
	NameFrom = openapierror.DefineField[string]("name")
	// LineFrom extracts the source line from a catalog error.
	LineFrom = openapierror.DefineField[int]("line")
)
