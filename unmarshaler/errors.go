package unmarshaler

import openapierror "github.com/QuisEgoSum/openapi-error"

var (
	// ErrDecodeFailure is returned when the payload cannot be decoded.
	ErrDecodeFailure = openapierror.Compile(
		openapierror.Schema{"title": "UnmarshalDecodeFailureError"},
		openapierror.Values{"message": "failed to decode error payload"},
		openapierror.NoTrace(),
	)

	// ErrMissingName is returned when the payload has no error name and the
	// resolver has no fallback.
	ErrMissingName = openapierror.Compile(
		openapierror.Schema{"title": "UnmarshalMissingNameError"},
		openapierror.Values{"message": "error name is missing"},
		openapierror.NoTrace(),
	)

	// ErrNameNotFound is returned when the error name is not known to the
	// resolver and the resolver has no fallback.
	ErrNameNotFound = openapierror.Compile(
		openapierror.Schema{
			"title": "UnmarshalNameNotFoundError",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
			},
		},
		openapierror.Values{"message": "error name not found"},
		openapierror.NoTrace(),
	)

	// NameFrom extracts the unresolved name from an ErrNameNotFound error.
	NameFrom = openapierror.DefineField[string]("name")
)
