// Package sentryerr reports openapierror instances to Sentry.
package sentryerr

import (
	"context"
	"strconv"

	openapierror "github.com/QuisEgoSum/openapi-error"
	"github.com/getsentry/sentry-go"
)

// CaptureError reports an error to Sentry with context from the instance data.
//
// This function:
//   - Returns false if the error is nil
//   - Retrieves the Sentry hub from the context, falling back to the current hub
//   - Configures a scope for this event only:
//   - Level from the HTTP status class (see LevelFor)
//   - Name, HTTP status and application code as tags
//   - Additional fields as the "error.additional" context
//   - Name as the fingerprint, so events group by error type
//   - Captures the error exception
func CaptureError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(LevelFor(err))

		if e, ok := openapierror.As(err); ok {
			scope.SetTag("error.name", e.Name())
			scope.SetTag("http.status", strconv.Itoa(e.HTTPCode()))
			scope.SetTag("error.code", strconv.Itoa(e.Code()))
			scope.SetFingerprint([]string{e.Name()})

			if additional := e.Additional(); len(additional) > 0 {
				scope.SetContext("error.additional", sentry.Context(additional))
			}
		}

		hub.CaptureException(err)
	})
	return true
}

// LevelFor returns the Sentry level for err: error for 5xx statuses and for
// errors that are not instances, warning for 4xx and info otherwise.
func LevelFor(err error) sentry.Level {
	status, ok := openapierror.HTTPCodeFrom(err)
	switch {
	case !ok || status >= 500:
		return sentry.LevelError
	case status >= 400:
		return sentry.LevelWarning
	default:
		return sentry.LevelInfo
	}
}
