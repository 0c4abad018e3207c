// Package search filters operation summaries by free-text query and
// tag. It operates on the raw lookup payload so the matching operation
// objects are re-emitted with every original field in original order.
package search

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// Render filters the operations in payload and pretty-prints the
// matches as a JSON array. The payload may be an object carrying an
// "operations" array or a bare array; anything else that is valid JSON
// degrades to an empty result. A payload that is not JSON at all is
// returned verbatim, since the raw text may itself be diagnostic.
// Render never fails.
func Render(payload []byte, query, tag string) string {
	operations, ok := extract(payload)
	if !ok {
		return string(payload)
	}

	query = strings.ToLower(query)
	tag = strings.ToLower(tag)

	var matched []json.RawMessage
	for _, raw := range operations {
		if matches(raw, query, tag) {
			matched = append(matched, raw)
		}
	}
	return indent(matched)
}

// extract pulls the operation array out of the payload. The second
// return value is false only when the payload is not valid JSON.
func extract(payload []byte) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(payload)
	if !json.Valid(trimmed) {
		return nil, false
	}

	var operations []json.RawMessage
	if err := json.Unmarshal(trimmed, &operations); err == nil {
		return operations, true
	}

	var wrapper struct {
		Operations []json.RawMessage `json:"operations"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err == nil {
		return wrapper.Operations, true
	}
	return nil, true
}

func matches(raw json.RawMessage, query, tag string) bool {
	var fields map[string]any
	_ = json.Unmarshal(raw, &fields)

	summary, _ := fields["summary"].(string)
	description, _ := fields["description"].(string)

	var tags []string
	if list, ok := fields["tags"].([]any); ok {
		for _, entry := range list {
			if s, ok := entry.(string); ok {
				tags = append(tags, strings.ToLower(s))
			}
		}
	}

	if tag != "" && !slices.Contains(tags, tag) {
		return false
	}

	if strings.Contains(strings.ToLower(summary), query) ||
		strings.Contains(strings.ToLower(description), query) {
		return true
	}
	for _, t := range tags {
		if strings.Contains(t, query) {
			return true
		}
	}
	return false
}

func indent(operations []json.RawMessage) string {
	var src bytes.Buffer
	src.WriteByte('[')
	for i, op := range operations {
		if i > 0 {
			src.WriteByte(',')
		}
		src.Write(op)
	}
	src.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, src.Bytes(), "", "  "); err != nil {
		return src.String()
	}
	return out.String()
}
