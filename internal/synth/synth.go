// Package synth derives representative example values from schema
// nodes. Synthesis is deterministic and total: any node, including a
// missing or malformed one, yields a value.
package synth

import (
	"encoding/json"
	"strconv"

	"github.com/fedefreue/developers-agent-toolkit/internal/spec"
)

const (
	// fallback is returned for absent nodes and unrecognized shapes.
	fallback = "example"
	// placeholderString stands in for string-typed values with no
	// declared example, default or enum.
	placeholderString = "string"
)

// Value returns one representative value for a schema node. Precedence,
// first match wins: explicit example, default, first enum entry, then a
// type-driven placeholder. Example, default and enum literals are
// returned verbatim as raw JSON.
func Value(node *spec.SchemaNode) any {
	if node == nil {
		return fallback
	}
	if spec.Present(node.Example) {
		return node.Example
	}
	if spec.Present(node.Default) {
		return node.Default
	}
	if len(node.Enum) > 0 {
		return node.Enum[0]
	}

	switch node.Type {
	case "string":
		return placeholderString
	case "integer", "number":
		return 0
	case "boolean":
		return true
	case "array":
		return []any{Value(node.Items)}
	case "object":
		obj := spec.NewObject()
		for _, name := range node.Properties.Keys() {
			child, _ := node.Properties.Get(name)
			obj.Set(name, Value(child))
		}
		return obj
	}
	return fallback
}

// Format coerces a value to its string form for interpolation into
// URLs and header lines. Strings pass through unquoted; raw JSON
// literals are unwrapped first; everything else renders as compact
// JSON.
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(t, &decoded); err != nil {
			return string(t)
		}
		return Format(decoded)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
