package openapierror

import "errors"

// FieldExtractor extracts a value of type T from an error chain.
type FieldExtractor[T any] func(err error) (T, bool)

// FieldExtractorSingleReturn extracts a value from an error, returning only the value.
type FieldExtractorSingleReturn[T any] func(err error) T

var (
	// HTTPCodeFrom extracts the HTTP status code of the first instance in the chain.
	HTTPCodeFrom FieldExtractor[int] = func(err error) (int, bool) {
		if e, ok := As(err); ok {
			return e.HTTPCode(), true
		}
		return 0, false
	}

	// NameFrom extracts the error type name of the first instance in the chain.
	NameFrom FieldExtractor[string] = func(err error) (string, bool) {
		if e, ok := As(err); ok {
			return e.Name(), true
		}
		return "", false
	}

	// CodeFrom extracts the application code of the first instance in the chain.
	CodeFrom FieldExtractor[int] = func(err error) (int, bool) {
		if e, ok := As(err); ok {
			return e.Code(), true
		}
		return 0, false
	}
)

// As finds the first instance in err's chain.
func As(err error) (Error, bool) {
	var e Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// DefineField returns an extractor for the named additional field.
//
// The extractor looks at the first instance in the chain. Integer-valued
// fields decoded from JSON or YAML are accepted for int.
func DefineField[T any](name string) FieldExtractor[T] {
	return func(err error) (T, bool) {
		e, ok := As(err)
		if !ok {
			var zero T
			return zero, false
		}
		return fieldValue[T](e.Additional(), name)
	}
}

func fieldValue[T any](additional Values, name string) (T, bool) {
	var zero T
	v, ok := additional[name]
	if !ok {
		return zero, false
	}
	if tv, ok := v.(T); ok {
		return tv, true
	}
	if _, wantInt := any(zero).(int); wantInt {
		if n, ok := intFrom(v); ok {
			return any(n).(T), true
		}
	}
	return zero, false
}

// WithZero creates an extractor that returns only the value, ignoring the boolean.
func (f FieldExtractor[T]) WithZero() FieldExtractorSingleReturn[T] {
	return func(err error) T {
		val, _ := f(err)
		return val
	}
}

// WithDefault creates an extractor that returns a default value if the field is not found.
func (f FieldExtractor[T]) WithDefault(value T) FieldExtractorSingleReturn[T] {
	return func(err error) T {
		if val, ok := f(err); ok {
			return val
		}
		return value
	}
}

// WithFallback creates an extractor that calls a function to obtain a value if the field is not found.
func (f FieldExtractor[T]) WithFallback(fn func(err error) T) FieldExtractorSingleReturn[T] {
	return func(err error) T {
		if val, ok := f(err); ok {
			return val
		}
		return fn(err)
	}
}

// OrZero extracts the value, returning the zero value if not found.
func (f FieldExtractor[T]) OrZero(err error) T {
	return f.WithZero()(err)
}

// OrDefault extracts the value, returning a default value if not found.
func (f FieldExtractor[T]) OrDefault(err error, value T) T {
	return f.WithDefault(value)(err)
}

// OrFallback extracts the value, calling a function to obtain a value if not found.
func (f FieldExtractor[T]) OrFallback(err error, fn func(err error) T) T {
	return f.WithFallback(fn)(err)
}
