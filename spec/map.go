package spec

import (
	"fmt"
	"sort"
)

// Map is a string-keyed mapping that preserves key insertion order.
// It is the mapping node of the untyped document tree: YAML and JSON
// mappings decode into *Map with their source declaration order intact.
//
// A nil *Map behaves as an empty mapping for all read operations.
type Map struct {
	keys   []string
	values map[string]any
}

// Document is the root of a loaded specification tree.
type Document = *Map

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Get returns the value stored under key and whether it was present.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present, regardless of its value.
// A key explicitly set to null counts as present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Set stores a value under key. Setting an existing key replaces the
// value but keeps the key's original position.
func (m *Map) Set(key string, v any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// AsMap coerces an arbitrary tree value into a *Map.
//
// Values decoded by this package are already *Map and pass through.
// Raw Go maps (map[string]any, and map[any]any as some YAML layers
// produce for non-string keys) are rebuilt with keys coerced to their
// string representation; since Go map iteration order is unspecified,
// coerced keys are sorted for determinism. Everything else reports false.
func AsMap(v any) (*Map, bool) {
	switch m := v.(type) {
	case *Map:
		if m == nil {
			return nil, false
		}
		return m, true
	case map[string]any:
		result := NewMap()
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			result.Set(k, m[k])
		}
		return result, true
	case map[any]any:
		result := NewMap()
		keys := make([]string, 0, len(m))
		byString := make(map[string]any, len(m))
		for k, val := range m {
			s := fmt.Sprint(k)
			keys = append(keys, s)
			byString[s] = val
		}
		sort.Strings(keys)
		for _, k := range keys {
			result.Set(k, byString[k])
		}
		return result, true
	default:
		return nil, false
	}
}
