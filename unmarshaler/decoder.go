package unmarshaler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"

	openapierror "github.com/QuisEgoSum/openapi-error"
)

// Decoder decodes an error payload of type T into its flat field values.
//
// The type parameter T specifies the input data type, enabling decoding from
// formats beyond JSON bytes, such as *structpb.Struct messages.
type Decoder[T any] func(data T) (openapierror.Values, error)

var errTrailingData = errors.New("unexpected data after top-level value")

func jsonDecoder(data []byte) (openapierror.Values, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	if raw == nil {
		return nil, errors.New("payload is not an object")
	}
	return openapierror.Values(normalizeNumbers(raw).(map[string]any)), nil
}

// normalizeNumbers turns json.Number values into int when they are integral
// and into float64 otherwise.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	case json.Number:
		if n, err := t.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	default:
		return v
	}
}
