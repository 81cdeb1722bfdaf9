// Package unmarshaler rebuilds error instances from their flat JSON form.
package unmarshaler

import (
	openapierror "github.com/QuisEgoSum/openapi-error"
	"github.com/QuisEgoSum/openapi-error/resolver"
)

type (
	// Unmarshaler decodes payloads of type T and rebuilds the error instance
	// whose definition is named by the payload's error field.
	Unmarshaler[T any] struct {
		resolver resolver.Resolver
		decoder  Decoder[T]
	}

	fallbackProvider interface {
		Fallback() *openapierror.Definition
	}
)

// New creates an Unmarshaler that decodes payloads with decoder.
// If r is a *resolver.FallbackResolver, unknown or missing names resolve to
// its fallback definition.
func New[T any](r resolver.Resolver, decoder Decoder[T]) *Unmarshaler[T] {
	return &Unmarshaler[T]{
		resolver: r,
		decoder:  decoder,
	}
}

// NewJSON creates an Unmarshaler for JSON payloads as produced by
// json.Marshal on an openapierror.Error.
func NewJSON(r resolver.Resolver) *Unmarshaler[[]byte] {
	return New(r, jsonDecoder)
}

// Unmarshal decodes data and creates an instance of the resolved definition.
// The instance carries no stack trace. Fields not declared by the definition
// are dropped.
func (u *Unmarshaler[T]) Unmarshal(data T) (openapierror.Error, error) {
	values, err := u.decoder(data)
	if err != nil {
		return nil, ErrDecodeFailure.Wrap(err, nil)
	}
	return u.unmarshal(values)
}

func (u *Unmarshaler[T]) unmarshal(values openapierror.Values) (openapierror.Error, error) {
	def, err := u.resolveName(values)
	if err != nil {
		return nil, err
	}
	return def.WithOptions(openapierror.NoTrace()).New(values).(openapierror.Error), nil
}

func (u *Unmarshaler[T]) resolveName(values openapierror.Values) (*openapierror.Definition, error) {
	name, ok := values[openapierror.FieldError].(string)
	if !ok || name == "" {
		if fallback := u.fallback(); fallback != nil {
			return fallback, nil
		}
		return nil, ErrMissingName.New(nil)
	}

	if def, ok := u.resolver.ResolveNameStrict(name); ok {
		return def, nil
	}
	if fallback := u.fallback(); fallback != nil {
		return fallback, nil
	}
	return nil, ErrNameNotFound.New(openapierror.Values{"name": name})
}

func (u *Unmarshaler[T]) fallback() *openapierror.Definition {
	if p, ok := u.resolver.(fallbackProvider); ok {
		return p.Fallback()
	}
	return nil
}
