package extract

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/reqgen/reqgen/spec"
)

// definitionsPrefix is the only $ref shape this extractor follows.
// External (cross-file) references are out of scope.
const definitionsPrefix = "#/definitions/"

// requestBody resolves an example request body for an operation, trying in
// priority order: the body parameter schema's own example, the example of
// the referenced definition, then an example synthesized from declared
// properties. Returns "" when no body can be produced; the operation still
// yields an endpoint.
func requestBody(doc spec.Document, params []*spec.Map, cfg *config) string {
	var schema *spec.Map
	for _, param := range params {
		if in, _ := spec.StringAt(param, "in"); in == "body" {
			schema, _ = spec.MapAt(param, "schema")
			break
		}
	}
	if schema == nil {
		return ""
	}

	if v, ok := schema.Get("example"); ok {
		return encodeJSON(v)
	}

	if ref, _ := spec.StringAt(schema, "$ref"); strings.HasPrefix(ref, definitionsPrefix) {
		definition, ok := lookupDefinition(doc, ref)
		if !ok {
			cfg.logger.Debug("body schema references undefined definition", "ref", ref)
			return ""
		}
		if v, ok := definition.Get("example"); ok {
			return encodeJSON(v)
		}
		if properties, ok := spec.MapAt(definition, "properties"); ok {
			return encodeJSON(synthesizeObject(doc, properties, 0, cfg))
		}
		return ""
	}

	if schemaType, _ := spec.StringAt(schema, "type"); schemaType == "object" {
		if properties, ok := spec.MapAt(schema, "properties"); ok {
			return encodeJSON(synthesizeObject(doc, properties, 0, cfg))
		}
	}

	return ""
}

// lookupDefinition resolves a #/definitions/<Name> ref against the
// document's own definitions.
func lookupDefinition(doc spec.Document, ref string) (*spec.Map, bool) {
	name := ref
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		name = ref[idx+1:]
	}
	definitions, ok := spec.MapAt(doc, "definitions")
	if !ok {
		return nil, false
	}
	return spec.MapAt(definitions, name)
}

// synthesizeObject builds an example object from a properties mapping, in
// declaration order. A property contributes a value when it carries its
// own example or when its declared type has a synthesizable default;
// properties with an unknown or missing type are omitted.
//
// The schema's required list deliberately does not filter synthesis:
// required and optional properties are treated identically, preserving
// output compatibility with existing specifications.
//
// Synthesis does not recurse: object-typed properties become empty
// mappings and array items get a single flat example-or-placeholder pass.
// Depth is guarded explicitly anyway so future schema extensions cannot
// recurse unbounded.
func synthesizeObject(doc spec.Document, properties *spec.Map, depth int, cfg *config) *spec.Map {
	example := spec.NewMap()
	if depth > cfg.maxSynthDepth {
		cfg.logger.Warn("example synthesis depth exceeded", "depth", depth)
		return example
	}

	for _, name := range properties.Keys() {
		propSchema, ok := spec.AsMap(mustGet(properties, name))
		if !ok {
			continue
		}

		if v, ok := propSchema.Get("example"); ok {
			example.Set(name, v)
			continue
		}

		propType, _ := spec.StringAt(propSchema, "type")
		switch propType {
		case "string":
			example.Set(name, synthesizeString(propSchema, name))
		case "integer":
			if v, ok := propSchema.Get("default"); ok && v != nil {
				example.Set(name, v)
			} else {
				example.Set(name, 0)
			}
		case "boolean":
			if v, ok := propSchema.Get("default"); ok && v != nil {
				example.Set(name, v)
			} else {
				example.Set(name, false)
			}
		case "array":
			example.Set(name, synthesizeArray(doc, propSchema, cfg))
		case "object":
			// No recursive synthesis into untyped nested objects.
			example.Set(name, spec.NewMap())
		default:
			// Unknown or missing type: omitted.
		}
	}
	return example
}

// synthesizeString picks an illustrative value for a string property based
// on its declared format.
func synthesizeString(propSchema *spec.Map, name string) string {
	switch format, _ := spec.StringAt(propSchema, "format"); format {
	case "email":
		return "user@example.com"
	case "date-time":
		return "2024-12-31T23:59:59Z"
	default:
		return "<" + name + ">"
	}
}

// synthesizeArray produces a one-element example when the array's items
// are a $ref into definitions with declared properties, and an empty
// sequence otherwise. Each item property contributes its own example or a
// <name> placeholder; item synthesis applies no type defaults and follows
// no nested $refs.
func synthesizeArray(doc spec.Document, propSchema *spec.Map, cfg *config) []any {
	items, ok := spec.MapAt(propSchema, "items")
	if !ok {
		return []any{}
	}
	ref, _ := spec.StringAt(items, "$ref")
	if !strings.HasPrefix(ref, definitionsPrefix) {
		return []any{}
	}
	definition, ok := lookupDefinition(doc, ref)
	if !ok {
		cfg.logger.Debug("array items reference undefined definition", "ref", ref)
		return []any{}
	}
	properties, ok := spec.MapAt(definition, "properties")
	if !ok {
		return []any{}
	}

	item := spec.NewMap()
	for _, name := range properties.Keys() {
		if itemProp, ok := spec.AsMap(mustGet(properties, name)); ok {
			if v, ok := itemProp.Get("example"); ok {
				item.Set(name, v)
				continue
			}
		}
		item.Set(name, "<"+name+">")
	}
	return []any{item}
}

// mustGet fetches a key known to exist (the caller iterates Keys()).
func mustGet(m *spec.Map, key string) any {
	v, _ := m.Get(key)
	return v
}

// encodeJSON pretty-prints a tree value as JSON with 2-space indentation,
// preserving mapping key order as encountered. encoding/json alone cannot
// be used because it sorts map keys.
func encodeJSON(v any) string {
	var sb strings.Builder
	writeJSON(&sb, v, 0)
	return sb.String()
}

func writeJSON(sb *strings.Builder, v any, indent int) {
	switch val := v.(type) {
	case *spec.Map:
		writeJSONObject(sb, val, indent)
	case map[string]any, map[any]any:
		if m, ok := spec.AsMap(val); ok {
			writeJSONObject(sb, m, indent)
		} else {
			sb.WriteString("{}")
		}
	case []any:
		writeJSONArray(sb, val, indent)
	default:
		// Scalars: delegate to encoding/json for correct escaping and
		// number formatting. Encoding of a scalar cannot fail.
		data, err := marshalScalar(val)
		if err != nil {
			sb.WriteString("null")
			return
		}
		sb.Write(data)
	}
}

// marshalScalar serializes a scalar without HTML-escaping < > &, which
// would mangle <name> placeholder strings. The encoder appends a newline
// that must be trimmed.
func marshalScalar(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeJSONObject(sb *strings.Builder, m *spec.Map, indent int) {
	if m.Len() == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteString("{\n")
	inner := strings.Repeat("  ", indent+1)
	for i, key := range m.Keys() {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(inner)
		keyJSON, _ := marshalScalar(key)
		sb.Write(keyJSON)
		sb.WriteString(": ")
		writeJSON(sb, mustGet(m, key), indent+1)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString("}")
}

func writeJSONArray(sb *strings.Builder, arr []any, indent int) {
	if len(arr) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteString("[\n")
	inner := strings.Repeat("  ", indent+1)
	for i, item := range arr {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(inner)
		writeJSON(sb, item, indent+1)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString("]")
}
