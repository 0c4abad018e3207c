package spec

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSchemaNodeUnmarshal(t *testing.T) {
	data := []byte(`{
		"type": "object",
		"properties": {
			"zebra": {"type": "string"},
			"apple": {"type": "integer"},
			"mango": {"type": "boolean"}
		}
	}`)

	var node SchemaNode
	if err := json.Unmarshal(data, &node); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if node.Type != "object" {
		t.Errorf("expected type object, got %q", node.Type)
	}
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(node.Properties.Keys(), want) {
		t.Errorf("property order not preserved: got %v, want %v", node.Properties.Keys(), want)
	}
	apple, ok := node.Properties.Get("apple")
	if !ok || apple.Type != "integer" {
		t.Errorf("unexpected apple schema: %+v", apple)
	}
}

func TestSchemaNodeUnmarshalNonObject(t *testing.T) {
	for _, data := range []string{"true", "5", `"string"`, "[1,2]", "null"} {
		var node SchemaNode
		if err := json.Unmarshal([]byte(data), &node); err != nil {
			t.Errorf("unmarshal of %q should not fail, got %v", data, err)
		}
		if node.Type != "" || node.Properties.Len() != 0 {
			t.Errorf("expected zero node for %q, got %+v", data, node)
		}
	}
}

func TestSchemaNodeUnmarshalTolerant(t *testing.T) {
	// Wrong-typed fields are dropped, not fatal.
	var node SchemaNode
	if err := json.Unmarshal([]byte(`{"type": 5, "enum": "nope", "properties": {"a": true}}`), &node); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if node.Type != "" {
		t.Errorf("expected empty type, got %q", node.Type)
	}
	if len(node.Enum) != 0 {
		t.Errorf("expected no enum, got %v", node.Enum)
	}
	a, ok := node.Properties.Get("a")
	if !ok || a == nil || a.Type != "" {
		t.Errorf("non-object property should decode to the zero node, got %+v", a)
	}
}

func TestSchemaNodeUnmarshalVerbatimLiterals(t *testing.T) {
	var node SchemaNode
	if err := json.Unmarshal([]byte(`{"example": {"b": 2, "a": 1}, "default": 7, "enum": ["x", "y"]}`), &node); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if string(node.Example) != `{"b": 2, "a": 1}` {
		t.Errorf("example not verbatim: %s", node.Example)
	}
	if string(node.Default) != "7" {
		t.Errorf("default not verbatim: %s", node.Default)
	}
	if len(node.Enum) != 2 || string(node.Enum[0]) != `"x"` {
		t.Errorf("unexpected enum: %v", node.Enum)
	}
}

func TestPropertiesMarshalOrder(t *testing.T) {
	props := &Properties{}
	props.Set("zebra", &SchemaNode{Type: "string"})
	props.Set("apple", &SchemaNode{Type: "integer"})

	data, err := json.Marshal(props)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"zebra":{"type":"string"},"apple":{"type":"integer"}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestPropertiesDuplicateKeepsPosition(t *testing.T) {
	props := &Properties{}
	props.Set("a", &SchemaNode{Type: "string"})
	props.Set("b", &SchemaNode{Type: "string"})
	props.Set("a", &SchemaNode{Type: "integer"})

	if !reflect.DeepEqual(props.Keys(), []string{"a", "b"}) {
		t.Errorf("unexpected key order: %v", props.Keys())
	}
	a, _ := props.Get("a")
	if a.Type != "integer" {
		t.Errorf("replacement should win, got %q", a.Type)
	}
}

func TestObjectMarshalOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zebra", "string")
	obj.Set("apple", 0)
	obj.Set("mango", true)

	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"zebra":"string","apple":0,"mango":true}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestObjectMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewObject())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("got %s, want {}", data)
	}
}
