/*
Package openapierror builds error types from JSON-schema-like descriptions.

A description names the HTTP status, the default values and any additional
fields of an error. Compiling it yields a *Definition: a reusable error type
that creates instances, exposes its normalized schema (for example to publish
it in an OpenAPI document), and can be extended into more specific types.

# Basic Usage

Compile the error types of your application once, at package scope.

	package myapp

	import "github.com/QuisEgoSum/openapi-error"

	var ErrEntityNotExists = openapierror.Compile(
		openapierror.Schema{"httpCode": 404},
		openapierror.Values{
			"error":   "EntityNotExistsError",
			"message": "Entity not exists",
		},
	)

Instances take their fields from the definition's defaults unless they are
overridden at construction.

	func findEntity(ctx context.Context, id int) (*Entity, error) {
		entity, ok := store[id]
		if !ok {
			return nil, ErrEntityNotExists.New(nil)
		}
		return entity, nil
	}

Every instance is an error, matches its definition with errors.Is, and
projects to a flat JSON record.

	if errors.Is(err, ErrEntityNotExists) {
		status := openapierror.HTTPCodeFrom.OrDefault(err, 500)
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(err)
		// {"code":0,"error":"EntityNotExistsError","message":"Entity not exists"}
	}

# Extension

Extend derives a new type. Its schema is the parent's schema with the
override merged over it, and its instances also match the parent.

	var ErrUserNotExists = ErrEntityNotExists.Extend(
		openapierror.Schema{
			"title": "UserNotExistsError",
			"properties": map[string]any{
				"userId": map[string]any{"type": "integer"},
			},
		},
		openapierror.Values{"code": 2000},
	)

	err := ErrUserNotExists.New(openapierror.Values{"userId": 1})
	errors.Is(err, ErrEntityNotExists) // true

When the override schema has no title, the derived type keeps its parent's
name.

# Additional Fields

Declared properties other than message, code and error are additional fields.
DefineField creates a typed extractor for one of them.

	var UserIDFrom = openapierror.DefineField[int]("userId")

	id, ok := UserIDFrom(err)

# Context Integration

Request-scoped values can be attached to a context and picked up by
NewContext for the fields a definition declares.

	ctx = openapierror.ContextWithValues(ctx, openapierror.Values{"requestId": reqID})
	err := ErrUserNotExists.NewContext(ctx, openapierror.Values{"userId": 1})
*/
package openapierror
