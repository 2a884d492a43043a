package spec

import (
	"fmt"
	"strconv"
	"strings"
)

// The accessor functions below extract typed values from the untyped tree.
// They share one contract: a missing key, a null value, or a value of the
// wrong shape reports absence (ok == false) rather than failing, so
// downstream logic defaults the field away. None of them ever panic,
// regardless of document shape.

// MapAt extracts a mapping from m[key]. Values that are raw Go maps
// (including map[any]any with non-string keys) are coerced via AsMap.
func MapAt(m *Map, key string) (*Map, bool) {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return nil, false
	}
	return AsMap(v)
}

// SliceAt extracts a sequence from m[key] as a fresh []any, preserving
// element order.
func SliceAt(m *Map, key string) ([]any, bool) {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	result := make([]any, len(arr))
	copy(result, arr)
	return result, true
}

// StringAt extracts a string from m[key]. Numeric and boolean scalars are
// converted to their canonical text form; mappings and sequences are absent.
func StringAt(m *Map, key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return "", false
	}
	switch v.(type) {
	case string, bool, int, int64, uint64, float64:
		return ValueToString(v), true
	default:
		return "", false
	}
}

// IntAt extracts an int from m[key].
// Handles both float64 (from JSON) and int (from YAML) numeric values,
// plus numeric strings.
func IntAt(m *Map, key string) (int, bool) {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// BoolAt extracts a bool from m[key]. The strings "true" and "false"
// convert; anything else non-bool is absent.
func BoolAt(m *Map, key string) (bool, bool) {
	v, ok := m.Get(key)
	if !ok || v == nil {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

// StringSliceAt extracts a []string from m[key], skipping non-string
// elements. Returns nil when the key is absent or not a sequence.
func StringSliceAt(m *Map, key string) []string {
	arr, ok := SliceAt(m, key)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// ValueToString renders a scalar value the way it should appear inside a
// generated URL or header: strings verbatim, numbers without exponent
// notation where possible, booleans as true/false.
func ValueToString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		// Whole floats (JSON numbers) print as integers.
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
