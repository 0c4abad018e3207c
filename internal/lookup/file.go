package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// FileSource serves operation data from a local OpenAPI specification
// file instead of a remote lookup service. The specification identifier
// is accepted and ignored: a file source describes exactly one
// specification.
type FileSource struct {
	document libopenapi.Document
}

// NewFileSource parses an OpenAPI specification file.
func NewFileSource(filePath string) (*FileSource, error) {
	specBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI file: %w", err)
	}

	document, err := libopenapi.NewDocument(specBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	return &FileSource{document: document}, nil
}

type operationSummary struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operationId,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Operations lists the specification's operations as a payload with an
// "operations" array, path order as declared, methods in a fixed order
// per path.
func (f *FileSource) Operations(ctx context.Context, specID string) ([]byte, error) {
	model, errs := f.document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("failed to build v3 model: %v", errs)
	}

	summaries := []operationSummary{}
	paths := model.Model.Paths
	if paths != nil && paths.PathItems != nil {
		for pair := paths.PathItems.First(); pair != nil; pair = pair.Next() {
			path := pair.Key()
			item := pair.Value()
			if item == nil {
				continue
			}
			for _, entry := range pathOperations(item) {
				if entry.op == nil {
					continue
				}
				summaries = append(summaries, operationSummary{
					Method:      entry.method,
					Path:        path,
					OperationID: entry.op.OperationId,
					Summary:     entry.op.Summary,
					Description: entry.op.Description,
					Tags:        entry.op.Tags,
				})
			}
		}
	}

	payload := struct {
		Operations []operationSummary `json:"operations"`
	}{Operations: summaries}
	return json.Marshal(payload)
}

// Operation locates one operation by method and path and returns it in
// the operation document form.
func (f *FileSource) Operation(ctx context.Context, specID, method, path string) ([]byte, error) {
	model, errs := f.document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("failed to build v3 model: %v", errs)
	}

	paths := model.Model.Paths
	if paths == nil || paths.PathItems == nil {
		return nil, fmt.Errorf("path not found: %s", path)
	}

	var item *v3.PathItem
	for pair := paths.PathItems.First(); pair != nil; pair = pair.Next() {
		if pair.Key() == path {
			item = pair.Value()
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("path not found: %s", path)
	}

	var operation *v3.Operation
	for _, entry := range pathOperations(item) {
		if entry.op != nil && strings.EqualFold(entry.method, method) {
			operation = entry.op
			break
		}
	}
	if operation == nil {
		return nil, fmt.Errorf("operation not found: %s %s", method, path)
	}

	doc := convertOperation(&model.Model, operation, method, path)
	return json.Marshal(doc)
}

type methodOperation struct {
	method string
	op     *v3.Operation
}

// pathOperations returns the path item's operations in a fixed method
// order so listings are deterministic.
func pathOperations(item *v3.PathItem) []methodOperation {
	return []methodOperation{
		{http.MethodGet, item.Get},
		{http.MethodPost, item.Post},
		{http.MethodPut, item.Put},
		{http.MethodPatch, item.Patch},
		{http.MethodDelete, item.Delete},
		{http.MethodHead, item.Head},
		{http.MethodOptions, item.Options},
	}
}
