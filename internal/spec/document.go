// Package spec holds the operation document model consumed by the
// example synthesizer and the request assembler. Documents arrive as
// JSON from an operation lookup source and are read-only once parsed.
package spec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedDocument is returned when an operation document cannot be
// parsed as structured data. Assembly produces no partial output in that
// case; every downstream derivation would be unreliable.
var ErrMalformedDocument = errors.New("malformed operation document")

// Document describes one endpoint of an API specification.
type Document struct {
	Servers     []Server     `json:"servers,omitempty"`
	Path        string       `json:"path,omitempty"`
	Method      string       `json:"method,omitempty"`
	OperationID string       `json:"operationId,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`
}

// Server is one entry of the document's server list.
type Server struct {
	URL string `json:"url"`
}

// Parameter declares one path, query or header input of an operation.
// Other "in" locations are ignored by the assembler.
type Parameter struct {
	Name    string          `json:"name"`
	In      string          `json:"in"`
	Schema  *SchemaNode     `json:"schema,omitempty"`
	Example json.RawMessage `json:"example,omitempty"`
}

// RequestBody maps media types to their content descriptions. Only
// application/json is consulted when assembling a request.
type RequestBody struct {
	Content map[string]MediaType `json:"content,omitempty"`
}

// MediaType holds the literal example and schema for one media type.
type MediaType struct {
	Example json.RawMessage `json:"example,omitempty"`
	Schema  *SchemaNode     `json:"schema,omitempty"`
}

// ParseDocument decodes an operation document from JSON. Any decode
// failure wraps ErrMalformedDocument.
func ParseDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// Present reports whether a raw JSON literal carries a value. JSON null
// counts as absent, matching how example and default declarations are
// treated during synthesis.
func Present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
