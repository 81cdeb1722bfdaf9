// Package zerologerr renders openapierror instances as zerolog objects.
package zerologerr

import (
	"slices"

	openapierror "github.com/QuisEgoSum/openapi-error"
	"github.com/rs/zerolog"
)

type (
	errorMarshaler struct {
		err openapierror.Error
	}

	stdErrorMarshaler struct {
		err error
	}
)

// Error returns a LogObjectMarshaler for err that can be used with Object()
// or EmbedObject().
//
// The object carries message, code, error and httpCode, the additional fields
// under "additional", the origin frame and the cause message when present.
//
// Example with Object() (nested under "error" key):
//
//	err := ErrUserNotExists.New(openapierror.Values{"userId": 1})
//	logger.Info().Object("error", zerologerr.Error(err)).Msg("operation failed")
//
// Example with EmbedObject() (fields at top level):
//
//	logger.Info().EmbedObject(zerologerr.Error(err)).Msg("operation failed")
func Error(err error) zerolog.LogObjectMarshaler {
	if e, ok := openapierror.As(err); ok {
		return &errorMarshaler{err: e}
	}
	return &stdErrorMarshaler{err: err}
}

func (m *errorMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str("message", m.err.Message())
	e.Int("code", m.err.Code())
	e.Str("error", m.err.Name())
	e.Int("httpCode", m.err.HTTPCode())

	if additional := m.err.Additional(); len(additional) > 0 {
		e.Object("additional", additionalMarshaler(additional))
	}

	if frame, ok := m.err.Stack().HeadFrame(); ok {
		e.Object("origin", frameMarshaler{frame: frame})
	}

	if cause := m.err.Unwrap(); cause != nil {
		e.Str("cause", cause.Error())
	}
}

type additionalMarshaler openapierror.Values

func (m additionalMarshaler) MarshalZerologObject(e *zerolog.Event) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		e.Interface(k, m[k])
	}
}

type frameMarshaler struct {
	frame openapierror.Frame
}

func (m frameMarshaler) MarshalZerologObject(e *zerolog.Event) {
	e.Str("func", m.frame.Func)
	e.Str("file", m.frame.File)
	e.Int("line", m.frame.Line)
}

func (m *stdErrorMarshaler) MarshalZerologObject(e *zerolog.Event) {
	if m.err != nil {
		e.Str("message", m.err.Error())
	}
}
