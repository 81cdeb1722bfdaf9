package openapierror

import (
	"math"
	"slices"
)

type (
	// Schema is a JSON-schema-like description of an error type.
	//
	// As input to Compile and Extend it may be partial. Every schema returned by
	// this package is normalized: it has a title, the message, code and error
	// properties, and a required list that contains all three.
	Schema map[string]any

	// Values maps field names to values. It is used for default values,
	// construction overrides and the JSON projection of an instance.
	Values map[string]any
)

const (
	// FieldMessage is the name of the message property.
	FieldMessage = "message"
	// FieldCode is the name of the application code property.
	FieldCode = "code"
	// FieldError is the name of the property holding the error type name.
	FieldError = "error"

	// DefaultHTTPCode is the HTTP status used when a schema declares none.
	DefaultHTTPCode = 400
	// DefaultTitle is the title of a schema that names neither a title nor an error default.
	DefaultTitle = "DefaultError"
	// DefaultMessage is the default of the message property.
	DefaultMessage = "Error message"

	keyTitle                = "title"
	keyType                 = "type"
	keyHTTPCode             = "httpCode"
	keyProperties           = "properties"
	keyRequired             = "required"
	keyAdditionalProperties = "additionalProperties"
	keyDefault              = "default"
)

var coreFields = []string{FieldMessage, FieldCode, FieldError}

func baseSchema() map[string]any {
	return map[string]any{
		keyHTTPCode: DefaultHTTPCode,
		keyType:     "object",
		keyProperties: map[string]any{
			FieldMessage: map[string]any{
				keyType:    "string",
				keyDefault: DefaultMessage,
			},
			FieldCode: map[string]any{
				keyType:    "integer",
				keyDefault: 0,
			},
			FieldError: map[string]any{
				keyType: "string",
			},
		},
		keyAdditionalProperties: false,
	}
}

// NormalizeSchema merges schema and then override onto the built-in base schema,
// applies defaults to the declared properties and resolves the title and the
// required list.
//
// Records are merged key by key with the incoming side winning at the leaves;
// sequences and primitives are replaced as a whole. Keys of defaults that do not
// name a declared property are ignored. The title is the first non-empty value
// of schema title, error default, and DefaultTitle, and it is written back as
// the error default. None of the inputs are modified.
func NormalizeSchema(schema Schema, defaults Values, override Schema) Schema {
	s := mergeDeep(baseSchema(), schema)
	s = mergeDeep(s, override)

	props, ok := asMapping(s[keyProperties])
	if !ok {
		props = make(map[string]any)
		s[keyProperties] = props
	}

	for name, v := range defaults {
		if p, ok := asMapping(props[name]); ok {
			p[keyDefault] = copyDeep(v)
		}
	}

	errProp, ok := asMapping(props[FieldError])
	if !ok {
		// A primitive replaced the error descriptor; restore a usable one.
		errProp = map[string]any{keyType: "string"}
		props[FieldError] = errProp
	}

	title := DefaultTitle
	if t, ok := s[keyTitle].(string); ok && t != "" {
		title = t
	} else if t, ok := errProp[keyDefault].(string); ok && t != "" {
		title = t
	}
	s[keyTitle] = title
	errProp[keyDefault] = title

	s[keyRequired] = resolveRequired(s[keyRequired])

	return Schema(s)
}

// resolveRequired returns the caller's required names followed by any of the
// core fields not already listed, without duplicates.
func resolveRequired(v any) []string {
	var names []string
	switch r := v.(type) {
	case []string:
		names = r
	case []any:
		names = make([]string, 0, len(r))
		for _, e := range r {
			if s, ok := e.(string); ok {
				names = append(names, s)
			}
		}
	default:
		return slices.Clone(coreFields)
	}

	out := make([]string, 0, len(names)+len(coreFields))
	for _, name := range slices.Concat(names, coreFields) {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// Title returns the schema title.
func (s Schema) Title() string {
	t, _ := s[keyTitle].(string)
	return t
}

// HTTPCode returns the httpCode key of the schema, if it holds an integer.
// Schemas returned by Definition.Schema never carry it.
func (s Schema) HTTPCode() (int, bool) {
	return intFrom(s[keyHTTPCode])
}

// Required returns a copy of the required field names.
func (s Schema) Required() []string {
	switch r := s[keyRequired].(type) {
	case []string:
		return slices.Clone(r)
	case []any:
		names := make([]string, 0, len(r))
		for _, e := range r {
			if name, ok := e.(string); ok {
				names = append(names, name)
			}
		}
		return names
	default:
		return nil
	}
}

// Property returns the descriptor of the named property.
// The returned map belongs to s.
func (s Schema) Property(name string) (map[string]any, bool) {
	props, ok := asMapping(s[keyProperties])
	if !ok {
		return nil, false
	}
	return asMapping(props[name])
}

// PropertyNames returns the declared property names in sorted order.
func (s Schema) PropertyNames() []string {
	props, ok := asMapping(s[keyProperties])
	if !ok {
		return nil
	}
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func intFrom(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return intFromFloat(float64(n))
	case float64:
		return intFromFloat(n)
	default:
		return 0, false
	}
}

func intFromFloat(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
