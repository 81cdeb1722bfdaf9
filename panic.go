package openapierror

import (
	"fmt"
	"io"
)

type (
	// PanicError is the cause of instances created from a recovered panic.
	PanicError interface {
		error

		// PanicValue returns the value recovered from the panic.
		PanicValue() any
		// Unwrap returns the underlying error if the panic value is an error.
		Unwrap() error
	}

	panicError struct {
		msg        string
		panicValue any
	}
)

var (
	_ PanicError    = (*panicError)(nil)
	_ fmt.Formatter = (*panicError)(nil)
)

// CapturePanic stores in *errPtr an instance of d that wraps the panic value.
// It is meant to be called from a deferred function with the result of
// recover(). If errPtr or panicValue is nil, it does nothing.
//
//	defer func() {
//		ErrInternal.CapturePanic(&err, recover())
//	}()
func (d *Definition) CapturePanic(errPtr *error, panicValue any) {
	if errPtr == nil || panicValue == nil {
		return
	}
	*errPtr = d.newError(nil, newPanicError(panicValue), callersSkip)
}

// Recover runs fn and converts a panic raised by it into an instance of d.
// Otherwise it returns the error returned by fn.
func (d *Definition) Recover(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = d.newError(nil, newPanicError(r), callersSkip)
		}
	}()
	return fn()
}

func newPanicError(panicValue any) *panicError {
	return &panicError{
		msg:        fmt.Sprintf("panic: %v", panicValue),
		panicValue: panicValue,
	}
}

func (e *panicError) Error() string {
	return e.msg
}

func (e *panicError) PanicValue() any {
	return e.panicValue
}

func (e *panicError) Unwrap() error {
	if err, ok := e.panicValue.(error); ok {
		return err
	}
	return nil
}

func (e *panicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case s.Flag('+'):
			_, _ = io.WriteString(s, e.Error())
			_, _ = io.WriteString(s, "\n\nPanicValue:\n\t")
			_, _ = fmt.Fprintf(s, "%+v", e.panicValue)
		case s.Flag('#'):
			type (
				panicError_ panicError
				panicError  panicError_
			)
			_, _ = fmt.Fprintf(s, "%#v", (*panicError)(e))
		default:
			_, _ = io.WriteString(s, e.Error())
		}
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}
