package spec

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"
)

// SchemaNode is a possibly partial type description for a value,
// following the common JSON-Schema-like shape. A node may be absent
// entirely; synthesis still produces a fallback value.
type SchemaNode struct {
	Type       string            `json:"type,omitempty"`
	Example    json.RawMessage   `json:"example,omitempty"`
	Default    json.RawMessage   `json:"default,omitempty"`
	Enum       []json.RawMessage `json:"enum,omitempty"`
	Items      *SchemaNode       `json:"items,omitempty"`
	Properties *Properties       `json:"properties,omitempty"`
}

// UnmarshalJSON decodes a schema node tolerantly: data that is not a
// JSON object leaves the node zero-valued, and fields of unexpected
// types are dropped instead of failing the whole document. Incomplete
// specifications must never block request-snippet generation.
func (n *SchemaNode) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	if v, ok := raw["type"]; ok {
		_ = json.Unmarshal(v, &n.Type)
	}
	if v, ok := raw["example"]; ok && Present(v) {
		n.Example = v
	}
	if v, ok := raw["default"]; ok && Present(v) {
		n.Default = v
	}
	if v, ok := raw["enum"]; ok {
		_ = json.Unmarshal(v, &n.Enum)
	}
	if v, ok := raw["items"]; ok && Present(v) {
		item := &SchemaNode{}
		if err := item.UnmarshalJSON(v); err != nil {
			return err
		}
		n.Items = item
	}
	if v, ok := raw["properties"]; ok && Present(v) {
		props := &Properties{}
		if err := props.UnmarshalJSON(v); err != nil {
			return err
		}
		n.Properties = props
	}
	return nil
}

// Properties is an insertion-ordered mapping from property name to
// schema node. Declaration order matters: synthesized objects and
// rendered request bodies preserve it.
type Properties struct {
	keys  []string
	nodes map[string]*SchemaNode
}

// Set adds or replaces a property. A replaced property keeps its
// original position.
func (p *Properties) Set(name string, node *SchemaNode) {
	if p.nodes == nil {
		p.nodes = make(map[string]*SchemaNode)
	}
	if _, exists := p.nodes[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.nodes[name] = node
}

// Get returns the node declared for name.
func (p *Properties) Get(name string) (*SchemaNode, bool) {
	if p == nil {
		return nil, false
	}
	node, ok := p.nodes[name]
	return node, ok
}

// Keys returns the property names in declaration order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return p.keys
}

// Len returns the number of declared properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// UnmarshalJSON walks the object's keys in document order. Property
// values that are not objects decode to the zero node.
func (p *Properties) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	return jsonparser.ObjectEach(trimmed, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		node := &SchemaNode{}
		if vt == jsonparser.Object {
			if err := node.UnmarshalJSON(value); err != nil {
				return err
			}
		}
		p.Set(string(key), node)
		return nil
	})
}

// MarshalJSON renders the properties in declaration order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.nodes[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Object is an insertion-ordered JSON object, used for synthesized
// object values so their rendered form follows property declaration
// order.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{vals: make(map[string]any)}
}

// Set adds or replaces an entry, keeping the original position on
// replacement.
func (o *Object) Set(key string, value any) {
	if o.vals == nil {
		o.vals = make(map[string]any)
	}
	if _, exists := o.vals[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the entry keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// MarshalJSON renders the entries in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(o.vals[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
