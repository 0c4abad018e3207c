// Package request assembles runnable example requests from operation
// documents, substituting synthesized parameter values into the URL
// template and deriving a JSON body when one is declared.
package request

import (
	"net/url"
	"strings"

	"github.com/fedefreue/developers-agent-toolkit/internal/spec"
	"github.com/fedefreue/developers-agent-toolkit/internal/synth"
)

// DefaultBaseURL is used when the operation document declares no
// servers.
const DefaultBaseURL = "http://localhost"

const jsonMediaType = "application/json"

// Request is the fully resolved representation of an example request.
// Headers keep parameter declaration order, followed by body-derived
// headers.
type Request struct {
	Method  string
	URL     string
	Headers []string
	Body    any
	HasBody bool
}

// Assemble builds a request representation from an operation document.
// The document's own path template wins over the caller-supplied path;
// unmatched path parameters are dropped silently, as are parameters
// with an unrecognized "in" location. Assembly never fails: a document
// that parsed is assembled as-is.
func Assemble(doc *spec.Document, method, path string) *Request {
	if doc == nil {
		doc = &spec.Document{}
	}

	base := DefaultBaseURL
	if len(doc.Servers) > 0 {
		base = doc.Servers[0].URL
	}
	template := doc.Path
	if template == "" {
		template = path
	}

	var query []string
	var headers []string
	for _, param := range doc.Parameters {
		value := synth.Format(parameterValue(param))
		switch param.In {
		case "path":
			template = strings.Replace(template, "{"+param.Name+"}", url.PathEscape(value), 1)
		case "query":
			// url.Values would sort the keys; declaration order is
			// part of the output contract.
			query = append(query, url.QueryEscape(param.Name)+"="+url.QueryEscape(value))
		case "header":
			headers = append(headers, param.Name+": "+value)
		}
	}

	req := &Request{
		Method:  strings.ToUpper(method),
		Headers: headers,
	}

	if doc.RequestBody != nil {
		if media, ok := doc.RequestBody.Content[jsonMediaType]; ok {
			if spec.Present(media.Example) {
				req.Body = media.Example
			} else {
				req.Body = synth.Value(media.Schema)
			}
			req.HasBody = true
			req.Headers = append(req.Headers, "Content-Type: "+jsonMediaType)
		}
	}

	fullURL := base + template
	if len(query) > 0 {
		fullURL += "?" + strings.Join(query, "&")
	}
	req.URL = fullURL
	return req
}

func parameterValue(param spec.Parameter) any {
	if spec.Present(param.Example) {
		return param.Example
	}
	return synth.Value(param.Schema)
}
