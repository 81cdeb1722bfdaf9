package openapierror

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

type (
	// Error is an instance of a compiled error type.
	Error interface {
		error
		// Name returns the name of the error type, the value of the error field.
		Name() string
		// Message returns the message field.
		Message() string
		// Code returns the application code field.
		Code() int
		// Additional returns a copy of the fields beyond message, code and error.
		Additional() Values
		// HTTPCode returns the HTTP status code of the error type.
		HTTPCode() int
		// Schema returns a deep copy of the error type's schema.
		Schema() Schema
		// Definition returns the definition this error was created from.
		Definition() *Definition
		// ToJSON returns the flat JSON projection of this error.
		ToJSON() Values
		// Stack returns the stack trace where this error was created.
		Stack() Stack
		// Unwrap returns the wrapped cause, if any.
		Unwrap() error
	}

	compiledError struct {
		def        *Definition
		message    string
		code       int
		additional Values
		cause      error
		stack      stack
	}
)

var (
	_ Error          = (*compiledError)(nil)
	_ fmt.Formatter  = (*compiledError)(nil)
	_ json.Marshaler = (*compiledError)(nil)
	_ slog.LogValuer = (*compiledError)(nil)
)

func (e *compiledError) Error() string {
	return e.message
}

func (e *compiledError) Name() string {
	return e.def.name
}

func (e *compiledError) Message() string {
	return e.message
}

func (e *compiledError) Code() int {
	return e.code
}

func (e *compiledError) Additional() Values {
	out := cloneValues(e.additional)
	if out == nil {
		out = Values{}
	}
	return out
}

func (e *compiledError) HTTPCode() int {
	return e.def.httpCode
}

func (e *compiledError) Schema() Schema {
	return e.def.Schema()
}

func (e *compiledError) Definition() *Definition {
	return e.def
}

func (e *compiledError) Stack() Stack {
	return e.stack
}

func (e *compiledError) Unwrap() error {
	return e.cause
}

// Is matches ErrBase, the error's definition and every ancestor of it.
func (e *compiledError) Is(target error) bool {
	if target == ErrBase {
		return true
	}
	if d, ok := target.(*Definition); ok {
		return e.def.IsA(d)
	}
	return false
}

func (e *compiledError) ToJSON() Values {
	out := make(Values, len(e.additional)+3)
	for k, v := range e.additional {
		out[k] = copyDeep(v)
	}
	out[FieldMessage] = e.message
	out[FieldCode] = e.code
	out[FieldError] = e.def.name
	return out
}

func (e *compiledError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToJSON())
}

func (e *compiledError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String(FieldMessage, e.message),
		slog.Int(FieldCode, e.code),
		slog.String(FieldError, e.def.name),
		slog.Int(keyHTTPCode, e.def.httpCode),
	}
	for _, k := range e.additionalKeys() {
		attrs = append(attrs, slog.Any(k, e.additional[k]))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

func (e *compiledError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		switch {
		case s.Flag('+'):
			_, _ = fmt.Fprintf(s, "%s\n\n", e.Error())

			_, _ = io.WriteString(s, "Error:\n")
			_, _ = fmt.Fprintf(s, "\t%s\n", e.def.name)
			_, _ = io.WriteString(s, "Code:\n")
			_, _ = fmt.Fprintf(s, "\t%d\n", e.code)
			_, _ = io.WriteString(s, "HTTPCode:\n")
			_, _ = fmt.Fprintf(s, "\t%d\n", e.def.httpCode)

			if keys := e.additionalKeys(); len(keys) > 0 {
				_, _ = io.WriteString(s, "Additional:\n")
				for _, k := range keys {
					_, _ = fmt.Fprintf(s, "\t%s: %+v\n", k, e.additional[k])
				}
			}

			if e.stack.Len() > 0 {
				_, _ = io.WriteString(s, "Stack:\n")
				for _, f := range e.stack.Frames() {
					if f.File != "" {
						_, _ = fmt.Fprintf(s, "\t%s\n\t\t%s:%d\n", f.Func, f.File, f.Line)
					}
				}
			}

			if e.cause != nil {
				_, _ = io.WriteString(s, "Cause:\n")
				causeStr := strings.Trim(fmt.Sprintf("%+v", e.cause), "\n")
				for line := range strings.SplitSeq(causeStr, "\n") {
					_, _ = fmt.Fprintf(s, "\t%s\n", line)
				}
			}
		case s.Flag('#'):
			// Avoid infinite recursion in case someone does %#v on compiledError.
			type compiledError struct {
				def        *Definition
				message    string
				code       int
				additional Values
				cause      error
				stack      stack
			}
			var tmp = compiledError(*e)
			_, _ = fmt.Fprintf(s, "%#v", &tmp)
		default:
			_, _ = io.WriteString(s, e.Error())
		}
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *compiledError) setAdditional(name string, value any) {
	if e.additional == nil {
		e.additional = make(Values, len(e.def.extra))
	}
	e.additional[name] = copyDeep(value)
}

func (e *compiledError) additionalKeys() []string {
	keys := make([]string, 0, len(e.additional))
	for k := range e.additional {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
