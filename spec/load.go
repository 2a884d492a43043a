package spec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/reqgen/reqgen/reqerrors"
)

// Load reads and parses a specification document from a file.
// Both YAML and JSON content are accepted.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, reqerrors.NewParseError(path, "reading file", err)
	}
	doc, err := LoadBytes(data)
	if err != nil {
		// Attach the source path for a better message.
		var parseErr *reqerrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// LoadReader reads and parses a specification document from r.
func LoadReader(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, reqerrors.NewParseError("", "reading input", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a specification document from raw YAML or JSON bytes.
// The root must be a mapping; anything else is a parse error, the single
// fatal condition at this boundary. An empty input yields an empty,
// usable document.
func LoadBytes(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, reqerrors.NewParseError("", "failed to parse YAML/JSON", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return NewMap(), nil
	}

	value, err := nodeToValue(&root, 0)
	if err != nil {
		return nil, reqerrors.NewParseError("", "failed to decode document", err)
	}
	if value == nil {
		return NewMap(), nil
	}
	doc, ok := value.(*Map)
	if !ok {
		return nil, reqerrors.NewParseError("", fmt.Sprintf("document root must be a mapping, got %s", describeValue(value)), nil)
	}
	return doc, nil
}

// maxNodeDepth bounds recursion while converting the YAML node tree.
// Documents nested this deep are hostile, not real specifications.
const maxNodeDepth = 1000

// nodeToValue converts a yaml.Node tree into the untyped document
// representation: *Map for mappings (key order preserved, keys coerced to
// strings), []any for sequences, and Go scalars for scalar nodes.
func nodeToValue(node *yaml.Node, depth int) (any, error) {
	if node == nil {
		return nil, nil
	}
	if depth > maxNodeDepth {
		return nil, fmt.Errorf("document nesting exceeds %d levels", maxNodeDepth)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return nodeToValue(node.Content[0], depth)

	case yaml.MappingNode:
		m := NewMap()
		// Content alternates: key, value, key, value...
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := keyString(node.Content[i], depth+1)
			if err != nil {
				return nil, err
			}
			val, err := nodeToValue(node.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			m.Set(key, val)
		}
		return m, nil

	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			val, err := nodeToValue(child, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil

	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil

	case yaml.AliasNode:
		return nodeToValue(node.Alias, depth+1)

	default:
		return nil, nil
	}
}

// keyString resolves a mapping key node to its string form. YAML permits
// non-string keys (numbers, booleans); downstream logic universally
// indexes by string, so keys are coerced here.
func keyString(node *yaml.Node, depth int) (string, error) {
	v, err := nodeToValue(node, depth)
	if err != nil {
		return "", err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return ValueToString(v), nil
}

// describeValue names a tree value's shape for error messages.
func describeValue(v any) string {
	switch v.(type) {
	case *Map:
		return "mapping"
	case []any:
		return "sequence"
	default:
		return fmt.Sprintf("%T", v)
	}
}
