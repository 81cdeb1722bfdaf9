// Package zaperr renders openapierror instances as zap fields.
package zaperr

import (
	"slices"

	openapierror "github.com/QuisEgoSum/openapi-error"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type errorMarshaler struct {
	err openapierror.Error
}

// Error returns a Field that nests error information under the "error" key.
//
// The error object contains the following fields:
//   - message, code, error: the core fields of the instance
//   - httpCode: the HTTP status of the error type
//   - additional: the additional fields (if present)
//   - origin: the origin stack frame (if present) with func, file, and line
//   - cause: the message of the wrapped cause (if present)
//
// Errors that are not instances only carry a message.
// For top-level field expansion, use ErrorInline instead.
func Error(err error) zapcore.Field {
	return zap.Object("error", marshalerFor(err))
}

// ErrorInline returns a Field that expands all error information at the top
// level of the log entry.
func ErrorInline(err error) zapcore.Field {
	return zap.Inline(marshalerFor(err))
}

func marshalerFor(err error) zapcore.ObjectMarshaler {
	if e, ok := openapierror.As(err); ok {
		return &errorMarshaler{err: e}
	}
	return zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		if err != nil {
			enc.AddString("message", err.Error())
		}
		return nil
	})
}

func (m *errorMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", m.err.Message())
	enc.AddInt("code", m.err.Code())
	enc.AddString("error", m.err.Name())
	enc.AddInt("httpCode", m.err.HTTPCode())

	if additional := m.err.Additional(); len(additional) > 0 {
		_ = enc.AddObject("additional", additionalMarshaler(additional))
	}

	if frame, ok := m.err.Stack().HeadFrame(); ok {
		_ = enc.AddObject("origin", frameMarshaler{frame: frame})
	}

	if cause := m.err.Unwrap(); cause != nil {
		enc.AddString("cause", cause.Error())
	}

	return nil
}

type additionalMarshaler openapierror.Values

func (m additionalMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		_ = enc.AddReflected(k, m[k])
	}
	return nil
}

type frameMarshaler struct {
	frame openapierror.Frame
}

func (m frameMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("func", m.frame.Func)
	enc.AddString("file", m.frame.File)
	enc.AddInt("line", m.frame.Line)
	return nil
}
