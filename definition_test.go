package openapierror_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	openapierror "github.com/QuisEgoSum/openapi-error"
)

func newEntityNotExists() *openapierror.Definition {
	return openapierror.Compile(
		openapierror.Schema{"httpCode": 404},
		openapierror.Values{"error": "EntityNotExistsError", "message": "Entity not exists"},
	)
}

func newUserNotExists(parent *openapierror.Definition) *openapierror.Definition {
	return parent.Extend(
		openapierror.Schema{
			"title": "UserNotExistsError",
			"properties": map[string]any{
				"userId": map[string]any{"type": "integer"},
			},
		},
		openapierror.Values{"code": 2000, "message": "test"},
	)
}

func TestCompile(t *testing.T) {
	def := newEntityNotExists()

	t.Run("name", func(t *testing.T) {
		if want, got := "EntityNotExistsError", def.Name(); got != want {
			t.Errorf("want name %q, got %q", want, got)
		}
	})

	t.Run("default instance values", func(t *testing.T) {
		err := def.New(nil).(openapierror.Error)

		if want, got := 0, err.Code(); got != want {
			t.Errorf("want code %d, got %d", want, got)
		}
		if want, got := "Entity not exists", err.Message(); got != want {
			t.Errorf("want message %q, got %q", want, got)
		}
		if want, got := "EntityNotExistsError", err.Name(); got != want {
			t.Errorf("want error %q, got %q", want, got)
		}
		if want, got := 404, err.HTTPCode(); got != want {
			t.Errorf("want http code %d, got %d", want, got)
		}
	})

	t.Run("redefinition instance values", func(t *testing.T) {
		err := def.New(openapierror.Values{"code": 200, "message": "test"}).(openapierror.Error)

		if want, got := 200, err.Code(); got != want {
			t.Errorf("want code %d, got %d", want, got)
		}
		if want, got := "test", err.Message(); got != want {
			t.Errorf("want message %q, got %q", want, got)
		}
		if want, got := "EntityNotExistsError", err.Name(); got != want {
			t.Errorf("want error %q, got %q", want, got)
		}
		if want, got := 404, err.HTTPCode(); got != want {
			t.Errorf("want http code %d, got %d", want, got)
		}
	})

	t.Run("error field cannot be overridden", func(t *testing.T) {
		err := def.New(openapierror.Values{"error": "Other"}).(openapierror.Error)

		if want, got := "EntityNotExistsError", err.Name(); got != want {
			t.Errorf("want error %q, got %q", want, got)
		}
	})

	t.Run("equal schema", func(t *testing.T) {
		want := openapierror.Schema{
			"title": "EntityNotExistsError",
			"type":  "object",
			"properties": map[string]any{
				"code":    map[string]any{"type": "integer", "default": 0},
				"message": map[string]any{"type": "string", "default": "Entity not exists"},
				"error":   map[string]any{"type": "string", "default": "EntityNotExistsError"},
			},
			"required":             []string{"message", "code", "error"},
			"additionalProperties": false,
		}
		if got := def.Schema(); !reflect.DeepEqual(got, want) {
			t.Errorf("schema mismatch\ngot:  %#v\nwant: %#v", got, want)
		}
	})

	t.Run("is error", func(t *testing.T) {
		err := def.New(nil)

		if !errors.Is(err, openapierror.ErrBase) {
			t.Error("want instance to match ErrBase")
		}
		if !errors.Is(err, def) {
			t.Error("want instance to match its definition")
		}
		if !def.Is(err) {
			t.Error("want Definition.Is to report true")
		}
	})

	t.Run("unrelated definition", func(t *testing.T) {
		other := openapierror.Compile(nil, openapierror.Values{"error": "EntityNotExistsError"})
		err := def.New(nil)

		if errors.Is(err, other) {
			t.Error("want same-named definitions to be distinct types")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		d := openapierror.Compile(nil, nil)
		err := d.New(nil).(openapierror.Error)

		if want, got := openapierror.DefaultTitle, d.Name(); got != want {
			t.Errorf("want name %q, got %q", want, got)
		}
		if want, got := openapierror.DefaultHTTPCode, d.HTTPCode(); got != want {
			t.Errorf("want http code %d, got %d", want, got)
		}
		if want, got := openapierror.DefaultMessage, err.Message(); got != want {
			t.Errorf("want message %q, got %q", want, got)
		}
	})

	t.Run("inputs are not retained", func(t *testing.T) {
		schema := openapierror.Schema{
			"properties": map[string]any{
				"userId": map[string]any{"type": "integer", "default": 1},
			},
		}
		defaults := openapierror.Values{"message": "before"}
		d := openapierror.Compile(schema, defaults)

		schema["properties"].(map[string]any)["userId"].(map[string]any)["default"] = 2
		defaults["message"] = "after"

		err := d.New(nil).(openapierror.Error)
		if want, got := 1, err.Additional()["userId"]; got != want {
			t.Errorf("want userId %v, got %v", want, got)
		}
		if want, got := "before", err.Message(); got != want {
			t.Errorf("want message %q, got %q", want, got)
		}
	})

	t.Run("non-integer http code", func(t *testing.T) {
		d := openapierror.Compile(openapierror.Schema{"httpCode": "teapot"}, nil)

		if want, got := openapierror.DefaultHTTPCode, d.HTTPCode(); got != want {
			t.Errorf("want http code %d, got %d", want, got)
		}
	})
}

func TestDefinition_Extend(t *testing.T) {
	entity := newEntityNotExists()
	user := newUserNotExists(entity)

	t.Run("is error", func(t *testing.T) {
		err := user.New(nil)

		if !errors.Is(err, openapierror.ErrBase) {
			t.Error("want instance to match ErrBase")
		}
		if !errors.Is(err, user) {
			t.Error("want instance to match its definition")
		}
		if !errors.Is(err, entity) {
			t.Error("want instance to match the parent definition")
		}
		if errors.Is(entity.New(nil), user) {
			t.Error("want parent instance not to match the derived definition")
		}
	})

	t.Run("parent", func(t *testing.T) {
		if user.Parent() != entity {
			t.Errorf("want parent %p, got %p", entity, user.Parent())
		}
		if !user.IsA(entity) {
			t.Error("want derived definition to be a parent")
		}
		if entity.IsA(user) {
			t.Error("want parent not to be a derived definition")
		}
	})

	t.Run("default instance values", func(t *testing.T) {
		err := user.New(openapierror.Values{"userId": 1}).(openapierror.Error)

		if want, got := 2000, err.Code(); got != want {
			t.Errorf("want code %d, got %d", want, got)
		}
		if want, got := "test", err.Message(); got != want {
			t.Errorf("want message %q, got %q", want, got)
		}
		if want, got := "UserNotExistsError", err.Name(); got != want {
			t.Errorf("want error %q, got %q", want, got)
		}
		if want, got := 1, err.Additional()["userId"]; got != want {
			t.Errorf("want userId %v, got %v", want, got)
		}
		if want, got := 404, err.HTTPCode(); got != want {
			t.Errorf("want http code %d, got %d", want, got)
		}
	})

	t.Run("redefinition instance values", func(t *testing.T) {
		err := user.New(openapierror.Values{"code": 200, "message": "test", "userId": 2}).(openapierror.Error)

		if want, got := 200, err.Code(); got != want {
			t.Errorf("want code %d, got %d", want, got)
		}
		if want, got := 2, err.Additional()["userId"]; got != want {
			t.Errorf("want userId %v, got %v", want, got)
		}
		if want, got := "UserNotExistsError", err.Name(); got != want {
			t.Errorf("want error %q, got %q", want, got)
		}
	})

	t.Run("additional field without default", func(t *testing.T) {
		err := user.New(nil).(openapierror.Error)

		if _, ok := err.Additional()["userId"]; ok {
			t.Error("want userId to be absent")
		}
	})

	t.Run("additional field from defaults", func(t *testing.T) {
		d := entity.Extend(
			openapierror.Schema{
				"title": "UserNotExistsError",
				"properties": map[string]any{
					"userId": map[string]any{"type": "integer"},
				},
			},
			openapierror.Values{"userId": 7},
		)
		err := d.New(nil).(openapierror.Error)

		want := openapierror.Values{"userId": 7}
		if got := err.Additional(); !reflect.DeepEqual(got, want) {
			t.Errorf("want additional %#v, got %#v", want, got)
		}
	})

	t.Run("equal schema", func(t *testing.T) {
		want := openapierror.Schema{
			"title": "UserNotExistsError",
			"type":  "object",
			"properties": map[string]any{
				"code":    map[string]any{"type": "integer", "default": 2000},
				"message": map[string]any{"type": "string", "default": "test"},
				"error":   map[string]any{"type": "string", "default": "UserNotExistsError"},
				"userId":  map[string]any{"type": "integer"},
			},
			"required":             []string{"message", "code", "error"},
			"additionalProperties": false,
		}
		if got := user.Schema(); !reflect.DeepEqual(got, want) {
			t.Errorf("schema mismatch\ngot:  %#v\nwant: %#v", got, want)
		}
	})

	t.Run("parent is not modified", func(t *testing.T) {
		before := entity.Schema()
		_ = entity.Extend(
			openapierror.Schema{"properties": map[string]any{"message": map[string]any{"maxLength": 10}}},
			openapierror.Values{"message": "changed"},
		)

		if got := entity.Schema(); !reflect.DeepEqual(got, before) {
			t.Errorf("parent schema changed\ngot:  %#v\nwant: %#v", got, before)
		}
		if _, ok := entity.Schema()["httpCode"]; ok {
			t.Error("want parent schema to stay without httpCode")
		}
	})

	t.Run("keeps parent name without title", func(t *testing.T) {
		d := entity.Extend(nil, openapierror.Values{"error": "RenamedError", "code": 5})

		if want, got := "EntityNotExistsError", d.Name(); got != want {
			t.Errorf("want name %q, got %q", want, got)
		}
		err := d.New(nil).(openapierror.Error)
		if want, got := "EntityNotExistsError", err.Name(); got != want {
			t.Errorf("want error %q, got %q", want, got)
		}
		if want, got := 5, err.Code(); got != want {
			t.Errorf("want code %d, got %d", want, got)
		}
		if !errors.Is(err, entity) {
			t.Error("want instance to match the parent definition")
		}
	})

	t.Run("http code override", func(t *testing.T) {
		d := entity.Extend(openapierror.Schema{"title": "GoneError", "httpCode": 410}, nil)

		if want, got := 410, d.HTTPCode(); got != want {
			t.Errorf("want http code %d, got %d", want, got)
		}
		if want, got := 404, entity.HTTPCode(); got != want {
			t.Errorf("want parent http code %d, got %d", want, got)
		}
	})

	t.Run("chain", func(t *testing.T) {
		admin := user.Extend(openapierror.Schema{"title": "AdminNotExistsError"}, nil)
		err := admin.New(openapierror.Values{"userId": 3})

		for _, def := range []*openapierror.Definition{admin, user, entity} {
			if !errors.Is(err, def) {
				t.Errorf("want instance to match %s", def.Name())
			}
		}
		if want, got := 3, err.(openapierror.Error).Additional()["userId"]; got != want {
			t.Errorf("want inherited userId %v, got %v", want, got)
		}
	})
}

func TestDefinition_Schema(t *testing.T) {
	def := newUserNotExists(newEntityNotExists())

	first := def.Schema()
	second := def.Schema()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("want equal schemas\ngot:  %#v\nwant: %#v", second, first)
	}

	first["title"] = "Mutated"
	first["properties"].(map[string]any)["userId"].(map[string]any)["type"] = "string"
	first["required"].([]string)[0] = "mutated"

	if !reflect.DeepEqual(def.Schema(), second) {
		t.Errorf("mutation of a returned schema leaked into the definition")
	}
	if second.Title() != "UserNotExistsError" {
		t.Errorf("mutation of a returned schema leaked into another copy")
	}

	err := def.New(nil).(openapierror.Error)
	if !reflect.DeepEqual(err.Schema(), second) {
		t.Errorf("want instance schema to equal definition schema")
	}
}

func TestDefinition_Error(t *testing.T) {
	t.Run("with name", func(t *testing.T) {
		def := newEntityNotExists()

		if want, got := "EntityNotExistsError", def.Error(); got != want {
			t.Errorf("want error string %q, got %q", want, got)
		}
	})
}

func TestDefinition_Defaults(t *testing.T) {
	def := openapierror.Compile(
		openapierror.Schema{
			"properties": map[string]any{
				"userId": map[string]any{"type": "integer"},
				"tags":   map[string]any{"type": "array", "default": []any{"a"}},
			},
		},
		openapierror.Values{"error": "TaggedError", "unknown": true},
	)

	want := openapierror.Values{
		"message": "Error message",
		"code":    0,
		"error":   "TaggedError",
		"tags":    []any{"a"},
	}
	got := def.Defaults()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want defaults %#v, got %#v", want, got)
	}

	got["tags"].([]any)[0] = "b"
	if def.Defaults()["tags"].([]any)[0] != "a" {
		t.Error("mutation of returned defaults leaked into the definition")
	}

	if want, got := []string{"tags", "userId"}, def.AdditionalFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("want additional fields %v, got %v", want, got)
	}
}

func TestDefinition_WithOptions(t *testing.T) {
	t.Run("same type", func(t *testing.T) {
		def := newEntityNotExists()
		quiet := def.WithOptions(openapierror.NoTrace())

		err := quiet.New(nil)
		if !errors.Is(err, def) {
			t.Error("want instance of the copy to match the original")
		}
		if !errors.Is(def.New(nil), quiet) {
			t.Error("want instance of the original to match the copy")
		}
		if err.(openapierror.Error).Stack().Len() != 0 {
			t.Error("want no stack trace")
		}
	})

	t.Run("no options", func(t *testing.T) {
		def := newEntityNotExists()

		if got := def.WithOptions(); got != def {
			t.Errorf("want same, got %#v vs %#v", def, got)
		}
	})
}

func TestDefinition_NewContext(t *testing.T) {
	def := openapierror.Compile(
		openapierror.Schema{
			"title": "RequestError",
			"properties": map[string]any{
				"requestId": map[string]any{"type": "string"},
			},
		},
		nil,
	)

	t.Run("values from context", func(t *testing.T) {
		ctx := openapierror.ContextWithValues(context.Background(), openapierror.Values{
			"requestId": "req-1",
			"message":   "from context",
			"ignored":   true,
		})
		err := def.NewContext(ctx, nil).(openapierror.Error)

		want := openapierror.Values{
			"message":   "from context",
			"code":      0,
			"error":     "RequestError",
			"requestId": "req-1",
		}
		if got := err.ToJSON(); !reflect.DeepEqual(got, want) {
			t.Errorf("want %#v, got %#v", want, got)
		}
	})

	t.Run("overrides win", func(t *testing.T) {
		ctx := openapierror.ContextWithValues(context.Background(), openapierror.Values{"requestId": "req-1"})
		err := def.NewContext(ctx, openapierror.Values{"requestId": "req-2"}).(openapierror.Error)

		if want, got := "req-2", err.Additional()["requestId"]; got != want {
			t.Errorf("want requestId %v, got %v", want, got)
		}
	})

	t.Run("empty context", func(t *testing.T) {
		err := def.NewContext(context.Background(), nil).(openapierror.Error)

		if len(err.Additional()) != 0 {
			t.Errorf("want no additional fields, got %#v", err.Additional())
		}
	})
}

func TestDefinition_Wrap(t *testing.T) {
	def := newEntityNotExists()

	t.Run("cause", func(t *testing.T) {
		cause := errors.New("row not found")
		err := def.Wrap(cause, openapierror.Values{"message": "lookup failed"})

		if !errors.Is(err, cause) {
			t.Error("want wrapped error to match its cause")
		}
		if !errors.Is(err, def) {
			t.Error("want wrapped error to match its definition")
		}
		if want, got := "lookup failed", err.Error(); got != want {
			t.Errorf("want message %q, got %q", want, got)
		}
	})

	t.Run("nil cause", func(t *testing.T) {
		if err := def.Wrap(nil, nil); err != nil {
			t.Errorf("want nil, got %v", err)
		}
	})

	t.Run("instance cause", func(t *testing.T) {
		other := openapierror.Compile(nil, openapierror.Values{"error": "DatabaseError"})
		err := def.Wrap(other.New(nil), nil)

		if !errors.Is(err, other) {
			t.Error("want wrapped error to match the cause's definition")
		}
		if want, got := "EntityNotExistsError", openapierror.NameFrom.OrZero(err); got != want {
			t.Errorf("want outermost name %q, got %q", want, got)
		}
	})
}
