package openapierror_test

import (
	"errors"
	"fmt"
	"testing"

	openapierror "github.com/QuisEgoSum/openapi-error"
)

var (
	UserIDFrom = openapierror.DefineField[int]("userId")
	TagsFrom   = openapierror.DefineField[[]any]("tags")
)

func TestDefineField(t *testing.T) {
	def := openapierror.Compile(
		openapierror.Schema{
			"title": "UserError",
			"properties": map[string]any{
				"userId": map[string]any{"type": "integer"},
				"tags":   map[string]any{"type": "array"},
			},
		},
		nil,
	)

	t.Run("found", func(t *testing.T) {
		err := def.New(openapierror.Values{"userId": 42})

		got, ok := UserIDFrom(err)
		if !ok {
			t.Fatal("want field to be found")
		}
		if want := 42; got != want {
			t.Errorf("want %d, got %d", want, got)
		}
	})

	t.Run("integral float", func(t *testing.T) {
		err := def.New(openapierror.Values{"userId": float64(42)})

		if got, ok := UserIDFrom(err); !ok || got != 42 {
			t.Errorf("want 42, got %d (%v)", got, ok)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", def.New(openapierror.Values{"tags": []any{"a"}}))

		got, ok := TagsFrom(err)
		if !ok || len(got) != 1 || got[0] != "a" {
			t.Errorf("want [a], got %v (%v)", got, ok)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		err := def.New(openapierror.Values{"userId": "42"})

		if _, ok := UserIDFrom(err); ok {
			t.Error("want field not to be found")
		}
	})

	t.Run("absent", func(t *testing.T) {
		err := def.New(nil)

		if _, ok := UserIDFrom(err); ok {
			t.Error("want field not to be found")
		}
	})

	t.Run("not an instance", func(t *testing.T) {
		if _, ok := UserIDFrom(errors.New("plain")); ok {
			t.Error("want field not to be found")
		}
	})
}

func TestFieldExtractor(t *testing.T) {
	def := openapierror.Compile(openapierror.Schema{"httpCode": 409}, openapierror.Values{"error": "ConflictError", "code": 7})
	err := def.New(nil)
	plain := errors.New("plain")

	t.Run("OrZero", func(t *testing.T) {
		if want, got := 409, openapierror.HTTPCodeFrom.OrZero(err); got != want {
			t.Errorf("want %d, got %d", want, got)
		}
		if want, got := 0, openapierror.HTTPCodeFrom.OrZero(plain); got != want {
			t.Errorf("want %d, got %d", want, got)
		}
	})

	t.Run("OrDefault", func(t *testing.T) {
		if want, got := 500, openapierror.HTTPCodeFrom.OrDefault(plain, 500); got != want {
			t.Errorf("want %d, got %d", want, got)
		}
		if want, got := "ConflictError", openapierror.NameFrom.OrDefault(err, "InternalError"); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("OrFallback", func(t *testing.T) {
		got := openapierror.CodeFrom.OrFallback(plain, func(err error) int { return len(err.Error()) })
		if want := 5; got != want {
			t.Errorf("want %d, got %d", want, got)
		}
		if want, got := 7, openapierror.CodeFrom.OrFallback(err, nil); got != want {
			t.Errorf("want %d, got %d", want, got)
		}
	})
}

func TestAs(t *testing.T) {
	def := openapierror.Compile(nil, nil)

	if _, ok := openapierror.As(errors.New("plain")); ok {
		t.Error("want plain error not to be an instance")
	}
	if _, ok := openapierror.As(nil); ok {
		t.Error("want nil not to be an instance")
	}
	if e, ok := openapierror.As(fmt.Errorf("x: %w", def.New(nil))); !ok || e.Definition() != def {
		t.Error("want wrapped instance to be found")
	}
}
