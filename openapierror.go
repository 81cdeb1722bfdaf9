package openapierror

import "slices"

type baseError struct{}

// ErrBase is matched by errors.Is for every error created from any Definition.
var ErrBase error = baseError{}

func (baseError) Error() string {
	return "openapierror: base error"
}

// Compile creates a new error definition from a partial schema and default values.
//
// The schema is normalized with NormalizeSchema. The definition's name is the
// resolved title, its HTTP status is the schema's httpCode (400 when absent or
// not an integer), and every declared property other than message, code and
// error becomes an additional field of its instances.
//
// Neither schema nor defaults is retained; later changes to them do not affect
// the definition.
func Compile(schema Schema, defaults Values, opts ...Option) *Definition {
	return compile(schema, defaults, nil, opts)
}

func compile(schema Schema, defaults Values, parent *Definition, opts []Option) *Definition {
	normalized := NormalizeSchema(schema, defaults, nil)

	httpCode, ok := intFrom(normalized[keyHTTPCode])
	if !ok {
		httpCode = DefaultHTTPCode
	}
	delete(normalized, keyHTTPCode)

	def := &Definition{
		name:     normalized.Title(),
		schema:   normalized,
		httpCode: httpCode,
		defaults: resolveDefaults(normalized, defaults),
		extra:    extraFields(normalized),
		parent:   parent,
	}
	def.root = def
	if parent != nil {
		def.ancestors = append([]*Definition{parent.root}, parent.ancestors...)
		def.noTrace = parent.noTrace
		def.stackSkip = parent.stackSkip
	}
	def.applyOptions(opts)
	return def
}

// resolveDefaults picks, for every declared property, the supplied default or
// else the descriptor's own default. Properties with neither are left out.
func resolveDefaults(schema Schema, defaults Values) Values {
	resolved := make(Values)
	for _, name := range schema.PropertyNames() {
		if v, ok := defaults[name]; ok {
			resolved[name] = copyDeep(v)
			continue
		}
		if p, ok := schema.Property(name); ok {
			if v, ok := p[keyDefault]; ok {
				resolved[name] = copyDeep(v)
			}
		}
	}
	return resolved
}

func extraFields(schema Schema) []string {
	names := schema.PropertyNames()
	return slices.DeleteFunc(names, func(name string) bool {
		return slices.Contains(coreFields, name)
	})
}

func cloneValues(v Values) Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = copyDeep(val)
	}
	return out
}
