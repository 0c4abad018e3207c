package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fedefreue/developers-agent-toolkit/internal/request"
	"github.com/fedefreue/developers-agent-toolkit/internal/spec"
)

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func exampleRequest(t *testing.T) *request.Request {
	t.Helper()
	doc, err := spec.ParseDocument([]byte(`{
		"servers": [{"url": "https://api.example.com"}],
		"path": "/payments",
		"requestBody": {
			"content": {
				"application/json": {
					"schema": {"type": "object", "properties": {"amount": {"type": "number"}}}
				}
			}
		}
	}`))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	return request.Assemble(doc, "POST", "/payments")
}

func TestExportRequestText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.txt")
	if err := ExportRequest(exampleRequest(t), FormatText, path); err != nil {
		t.Fatalf("ExportRequest failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	got := strings.TrimSpace(string(data))
	want := `curl -X POST 'https://api.example.com/payments' -H 'Content-Type: application/json' -d '{"amount":0}'`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestExportRequestJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.json")
	if err := ExportRequest(exampleRequest(t), FormatJSON, path); err != nil {
		t.Fatalf("ExportRequest failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var view struct {
		Method  string          `json:"method"`
		URL     string          `json:"url"`
		Headers []string        `json:"headers"`
		Body    json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &view); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if view.Method != "POST" || view.URL != "https://api.example.com/payments" {
		t.Errorf("unexpected request view: %+v", view)
	}
	if string(view.Body) != `{"amount":0}` {
		t.Errorf("unexpected body: %s", view.Body)
	}
}

func TestExportSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := ExportSearch("[]", path); err != nil {
		t.Fatalf("ExportSearch failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("unexpected output: %s", data)
	}
}
