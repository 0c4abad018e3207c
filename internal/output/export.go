package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fedefreue/developers-agent-toolkit/internal/request"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a string into a Format, returning error if invalid
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format '%s': must be 'text' or 'json'", s)
	}
}

// ExportRequest writes an assembled request to stdout or a file, either
// as the curl command line or as a JSON rendering of the request
// representation.
func ExportRequest(req *request.Request, format Format, filePath string) error {
	w, closer, err := getWriter(filePath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	switch format {
	case FormatText:
		curl, err := req.Curl()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, curl)
		return err
	case FormatJSON:
		return exportRequestJSON(w, req)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// ExportSearch writes rendered search results to stdout or a file.
func ExportSearch(result string, filePath string) error {
	w, closer, err := getWriter(filePath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	_, err = fmt.Fprintln(w, result)
	return err
}

// getWriter returns an io.Writer for output (stdout or file)
func getWriter(filePath string) (io.Writer, io.Closer, error) {
	if filePath == "" {
		return os.Stdout, nil, nil
	}

	f, err := os.Create(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f, nil
}

func exportRequestJSON(w io.Writer, req *request.Request) error {
	body, err := req.BodyJSON()
	if err != nil {
		return err
	}

	view := struct {
		Method  string          `json:"method"`
		URL     string          `json:"url"`
		Headers []string        `json:"headers"`
		Body    json.RawMessage `json:"body,omitempty"`
	}{
		Method:  req.Method,
		URL:     req.URL,
		Headers: req.Headers,
		Body:    body,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
