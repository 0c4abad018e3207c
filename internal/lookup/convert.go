package lookup

import (
	"encoding/json"
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"go.yaml.in/yaml/v4"

	"github.com/fedefreue/developers-agent-toolkit/internal/spec"
)

// convertOperation maps a libopenapi operation model onto the operation
// document form served by lookup sources. Specification schemas are
// assumed acyclic; a self-referential schema would recurse here.
func convertOperation(model *v3.Document, operation *v3.Operation, method, path string) *spec.Document {
	doc := &spec.Document{
		Path:        path,
		Method:      strings.ToUpper(method),
		OperationID: operation.OperationId,
		Summary:     operation.Summary,
		Description: operation.Description,
		Tags:        operation.Tags,
	}

	for _, server := range model.Servers {
		if server != nil {
			doc.Servers = append(doc.Servers, spec.Server{URL: server.URL})
		}
	}

	for _, param := range operation.Parameters {
		if param == nil {
			continue
		}
		doc.Parameters = append(doc.Parameters, spec.Parameter{
			Name:    param.Name,
			In:      param.In,
			Schema:  convertSchemaProxy(param.Schema),
			Example: yamlToJSON(param.Example),
		})
	}

	if operation.RequestBody != nil && operation.RequestBody.Content != nil {
		content := make(map[string]spec.MediaType)
		for pair := operation.RequestBody.Content.First(); pair != nil; pair = pair.Next() {
			media := pair.Value()
			if media == nil {
				continue
			}
			content[pair.Key()] = spec.MediaType{
				Example: yamlToJSON(media.Example),
				Schema:  convertSchemaProxy(media.Schema),
			}
		}
		if len(content) > 0 {
			doc.RequestBody = &spec.RequestBody{Content: content}
		}
	}
	return doc
}

func convertSchemaProxy(proxy *base.SchemaProxy) *spec.SchemaNode {
	if proxy == nil {
		return nil
	}
	return convertSchema(proxy.Schema())
}

func convertSchema(schema *base.Schema) *spec.SchemaNode {
	if schema == nil {
		return nil
	}

	node := &spec.SchemaNode{}
	if len(schema.Type) > 0 {
		node.Type = schema.Type[0]
	}
	node.Example = yamlToJSON(schema.Example)
	node.Default = yamlToJSON(schema.Default)
	for _, entry := range schema.Enum {
		if raw := yamlToJSON(entry); raw != nil {
			node.Enum = append(node.Enum, raw)
		}
	}
	if schema.Items != nil && schema.Items.IsA() && schema.Items.A != nil {
		node.Items = convertSchema(schema.Items.A.Schema())
	}
	if schema.Properties != nil {
		props := &spec.Properties{}
		for pair := schema.Properties.First(); pair != nil; pair = pair.Next() {
			props.Set(pair.Key(), convertSchemaProxy(pair.Value()))
		}
		if props.Len() > 0 {
			node.Properties = props
		}
	}
	return node
}

// yamlToJSON re-encodes a YAML literal (example, default, enum entry)
// as raw JSON. Literals that cannot be decoded are dropped rather than
// failing the conversion.
func yamlToJSON(node *yaml.Node) json.RawMessage {
	if node == nil {
		return nil
	}
	var value any
	if err := node.Decode(&value); err != nil {
		return nil
	}
	if value == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	return raw
}
