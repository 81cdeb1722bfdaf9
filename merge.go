package openapierror

import "slices"

// asMapping reports whether v is a structured record and returns it as a plain map.
// Arrays are never records.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Schema:
		return map[string]any(m), true
	case Values:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

// copyDeep returns a copy of v that shares no records or sequences with v.
// Every record in the result is a map[string]any.
func copyDeep(v any) any {
	if m, ok := asMapping(v); ok {
		return copyMapping(m)
	}
	switch s := v.(type) {
	case []any:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = copyDeep(e)
		}
		return out
	case []string:
		return slices.Clone(s)
	default:
		return v
	}
}

func copyMapping(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyDeep(v)
	}
	return out
}

// mergeDeep merges src onto dst and returns dst.
//
// For every key of src: when both sides hold a record, the records are merged
// recursively so keys only present in dst survive; otherwise the value from src
// replaces the one in dst. Values taken from src are copied, and dst is modified
// in place, so callers pass a map they own.
func mergeDeep(dst map[string]any, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		if sm, ok := asMapping(v); ok {
			if dm, ok := asMapping(dst[k]); ok {
				dst[k] = mergeDeep(copyMapping(dm), sm)
				continue
			}
		}
		dst[k] = copyDeep(v)
	}
	return dst
}
