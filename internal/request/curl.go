package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Curl renders the request as a single curl command line. This textual
// form is the external contract other tooling parses; header values are
// interpolated as-is.
func (r *Request) Curl() (string, error) {
	var b strings.Builder
	b.WriteString("curl -X ")
	b.WriteString(r.Method)
	b.WriteString(" '")
	b.WriteString(r.URL)
	b.WriteString("'")

	for _, header := range r.Headers {
		b.WriteString(" -H '")
		b.WriteString(header)
		b.WriteString("'")
	}

	if r.HasBody {
		body, err := r.BodyJSON()
		if err != nil {
			return "", err
		}
		b.WriteString(" -d '")
		b.Write(body)
		b.WriteString("'")
	}
	return b.String(), nil
}

// BodyJSON serializes the request body as compact JSON without HTML
// escaping. It returns nil when the request carries no body.
func (r *Request) BodyJSON() ([]byte, error) {
	if !r.HasBody {
		return nil, nil
	}

	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Body); err != nil {
		return nil, err
	}

	// Compact normalizes whitespace carried over from verbatim example
	// literals; Encode also appends a newline.
	var compact bytes.Buffer
	if err := json.Compact(&compact, bytes.TrimSpace(encoded.Bytes())); err != nil {
		return nil, err
	}
	return compact.Bytes(), nil
}
