package openapierror

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Definition is a compiled error type. It is immutable once created and safe
// for concurrent use.
type Definition struct {
	name      string
	schema    Schema
	httpCode  int
	defaults  Values
	extra     []string
	parent    *Definition
	root      *Definition
	ancestors []*Definition
	noTrace   bool
	stackSkip int
}

// Name returns the name of the error type. It equals the schema title and is
// the value of the error field of every instance.
func (d *Definition) Name() string {
	return d.name
}

// Error returns the name of the definition.
// This makes Definition usable as an errors.Is target.
func (d *Definition) Error() string {
	if d.name == "" {
		return "[unnamed]"
	}
	return d.name
}

// Schema returns a deep copy of the normalized schema, without httpCode.
func (d *Definition) Schema() Schema {
	return Schema(copyMapping(d.schema))
}

// HTTPCode returns the HTTP status code of the error type.
func (d *Definition) HTTPCode() int {
	return d.httpCode
}

// Defaults returns a copy of the resolved default values.
func (d *Definition) Defaults() Values {
	return cloneValues(d.defaults)
}

// AdditionalFields returns the sorted names of the declared properties other
// than message, code and error.
func (d *Definition) AdditionalFields() []string {
	return slices.Clone(d.extra)
}

// Parent returns the definition this one was extended from, or nil.
func (d *Definition) Parent() *Definition {
	return d.parent
}

// IsA reports whether d is other, a copy of other made by WithOptions, or a
// descendant of either through Extend.
func (d *Definition) IsA(other *Definition) bool {
	if other == nil {
		return false
	}
	if d.root == other.root {
		return true
	}
	return slices.Contains(d.ancestors, other.root)
}

// Extend derives a new definition from d.
//
// The override schema is merged over d's schema (with d's httpCode) and the
// defaults are applied on top, as in Compile. Unless override sets a title, the
// new definition keeps d's name. Instances of the new definition match d and
// all of d's ancestors with errors.Is. d is not modified.
func (d *Definition) Extend(override Schema, defaults Values, opts ...Option) *Definition {
	working := d.Schema()
	working[keyHTTPCode] = d.httpCode
	return compile(NormalizeSchema(working, defaults, override), defaults, d, opts)
}

// WithOptions returns a copy of d with the options applied.
// The copy is the same error type as d for errors.Is and IsA.
func (d *Definition) WithOptions(opts ...Option) *Definition {
	if len(opts) == 0 {
		return d
	}
	def := d.clone()
	def.applyOptions(opts)
	return def
}

// New creates an error instance. Values in overrides take precedence over the
// definition's defaults; keys that are not declared properties are ignored.
func (d *Definition) New(overrides Values) error {
	return d.newError(overrides, nil, callersSkip)
}

// NewContext creates an error instance like New, filling unset fields from
// the values attached to ctx with ContextWithValues.
func (d *Definition) NewContext(ctx context.Context, overrides Values) error {
	if ctxValues := valuesFromContext(ctx); len(ctxValues) > 0 {
		merged := make(Values, len(ctxValues)+len(overrides))
		for k, v := range ctxValues {
			merged[k] = v
		}
		for k, v := range overrides {
			merged[k] = v
		}
		overrides = merged
	}
	return d.newError(overrides, nil, callersSkip)
}

// Wrap creates an error instance like New that wraps cause.
// Returns nil if cause is nil.
func (d *Definition) Wrap(cause error, overrides Values) error {
	if cause == nil {
		return nil
	}
	return d.newError(overrides, cause, callersSkip)
}

// Is reports whether err is an instance of this definition or of a descendant.
func (d *Definition) Is(err error) bool {
	return errors.Is(err, d)
}

func (d *Definition) clone() *Definition {
	return &Definition{
		name:      d.name,
		schema:    d.schema,
		httpCode:  d.httpCode,
		defaults:  d.defaults,
		extra:     d.extra,
		parent:    d.parent,
		root:      d.root,
		ancestors: d.ancestors,
		noTrace:   d.noTrace,
		stackSkip: d.stackSkip,
	}
}

func (d *Definition) newError(overrides Values, cause error, stackSkip int) error {
	var stack stack
	if !d.noTrace {
		stack = newStack(d.stackSkip + stackSkip)
	}

	e := &compiledError{
		def:     d,
		message: d.messageFrom(overrides),
		code:    d.codeFrom(overrides),
		cause:   cause,
		stack:   stack,
	}
	for _, name := range d.extra {
		if v, ok := overrides[name]; ok {
			e.setAdditional(name, v)
		} else if v, ok := d.defaults[name]; ok {
			e.setAdditional(name, v)
		}
	}
	return e
}

func (d *Definition) messageFrom(overrides Values) string {
	v, ok := overrides[FieldMessage]
	if !ok || v == nil {
		v = d.defaults[FieldMessage]
	}
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	default:
		return fmt.Sprint(m)
	}
}

func (d *Definition) codeFrom(overrides Values) int {
	if n, ok := intFrom(overrides[FieldCode]); ok {
		return n
	}
	n, _ := intFrom(d.defaults[FieldCode])
	return n
}
