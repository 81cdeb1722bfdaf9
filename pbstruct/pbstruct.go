// Package pbstruct converts openapierror instances to and from
// google.protobuf.Struct messages.
package pbstruct

import (
	"errors"
	"fmt"
	"math"

	openapierror "github.com/QuisEgoSum/openapi-error"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var errNilStruct = errors.New("pbstruct: nil struct")

// ToStruct returns the JSON projection of err as a Struct.
// err must be an instance or wrap one.
func ToStruct(err error) (*structpb.Struct, error) {
	e, ok := openapierror.As(err)
	if !ok {
		return nil, fmt.Errorf("pbstruct: %T is not an openapierror.Error", err)
	}
	fields, convErr := toProtoValues(e.ToJSON())
	if convErr != nil {
		return nil, convErr
	}
	return structpb.NewStruct(fields)
}

// Marshal returns the wire encoding of the Struct form of err.
func Marshal(err error) ([]byte, error) {
	s, convErr := ToStruct(err)
	if convErr != nil {
		return nil, convErr
	}
	return proto.Marshal(s)
}

// FromStruct returns the field values carried by s.
// Integral numbers are returned as int.
func FromStruct(s *structpb.Struct) openapierror.Values {
	if s == nil {
		return nil
	}
	out := make(openapierror.Values, len(s.GetFields()))
	for k, v := range s.AsMap() {
		out[k] = fromProtoValue(v)
	}
	return out
}

// Decode is an unmarshaler.Decoder for Struct messages.
func Decode(s *structpb.Struct) (openapierror.Values, error) {
	if s == nil {
		return nil, errNilStruct
	}
	return FromStruct(s), nil
}

// DecodeBytes is an unmarshaler.Decoder for wire-encoded Struct messages.
func DecodeBytes(data []byte) (openapierror.Values, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return FromStruct(&s), nil
}

func toProtoValues(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		pv, err := toProtoValue(v)
		if err != nil {
			return nil, fmt.Errorf("pbstruct: field %q: %w", k, err)
		}
		out[k] = pv
	}
	return out, nil
}

// toProtoValue rewrites the shapes structpb.NewValue does not accept.
func toProtoValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		return toProtoValues(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			pv, err := toProtoValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = pv
		}
		return out, nil
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out, nil
	default:
		if _, err := structpb.NewValue(v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func fromProtoValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = fromProtoValue(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = fromProtoValue(e)
		}
		return t
	case float64:
		if t == math.Trunc(t) && t >= math.MinInt && t < math.MaxInt {
			return int(t)
		}
		return t
	default:
		return v
	}
}
