package search

import (
	"encoding/json"
	"strings"
	"testing"
)

const operationsPayload = `{
	"operations": [
		{"method": "POST", "path": "/payments", "summary": "Create a payment", "tags": ["Payments"]},
		{"method": "GET", "path": "/accounts", "summary": "List accounts", "description": "All accounts", "tags": ["Finance"]},
		{"method": "GET", "path": "/accounts/{id}", "summary": "Fetch one account", "tags": ["Accounts"]}
	]
}`

func decode(t *testing.T, rendered string) []map[string]any {
	t.Helper()
	var items []map[string]any
	if err := json.Unmarshal([]byte(rendered), &items); err != nil {
		t.Fatalf("result is not a JSON array: %v\n%s", err, rendered)
	}
	return items
}

func TestRenderQueryMatch(t *testing.T) {
	result := Render([]byte(operationsPayload), "payment", "")
	items := decode(t, result)
	if len(items) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(items))
	}
	if items[0]["path"] != "/payments" {
		t.Errorf("unexpected match: %v", items[0])
	}
	// Original fields survive untouched.
	if items[0]["method"] != "POST" {
		t.Errorf("original fields not preserved: %v", items[0])
	}
}

func TestRenderTagFilterExcludes(t *testing.T) {
	result := Render([]byte(operationsPayload), "account", "Finance")
	items := decode(t, result)
	if len(items) != 1 {
		t.Fatalf("expected one match, got %d", len(items))
	}
	if items[0]["path"] != "/accounts" {
		t.Errorf("tag filter kept the wrong operation: %v", items[0])
	}
}

func TestRenderTagFilterCaseInsensitive(t *testing.T) {
	items := decode(t, Render([]byte(operationsPayload), "account", "finance"))
	if len(items) != 1 {
		t.Errorf("tag matching should be case-insensitive, got %d matches", len(items))
	}
}

func TestRenderMatchesTags(t *testing.T) {
	// The query also matches against tag names.
	items := decode(t, Render([]byte(operationsPayload), "finance", ""))
	if len(items) != 1 || items[0]["path"] != "/accounts" {
		t.Errorf("query should match tags: %v", items)
	}
}

func TestRenderBareArrayPayload(t *testing.T) {
	payload := `[{"summary": "Create a payment"}, {"summary": "Something else"}]`
	items := decode(t, Render([]byte(payload), "payment", ""))
	if len(items) != 1 {
		t.Errorf("bare array payload should work, got %d matches", len(items))
	}
}

func TestRenderNonJSONPassthrough(t *testing.T) {
	raw := "upstream exploded: stack trace follows"
	if got := Render([]byte(raw), "payment", ""); got != raw {
		t.Errorf("non-JSON payload should pass through verbatim, got %q", got)
	}
}

func TestRenderDegradesToEmpty(t *testing.T) {
	for _, payload := range []string{`{}`, `{"operations": 5}`, `"quoted"`, `42`} {
		if got := Render([]byte(payload), "payment", ""); got != "[]" {
			t.Errorf("payload %q should degrade to [], got %q", payload, got)
		}
	}
}

func TestRenderMalformedOperationEntries(t *testing.T) {
	payload := `{"operations": [5, {"summary": "payment stuff"}, {"tags": "notanarray", "summary": "payment other"}]}`
	items := decode(t, Render([]byte(payload), "payment", ""))
	if len(items) != 2 {
		t.Errorf("expected 2 matches, got %d", len(items))
	}
}

func TestRenderIndentation(t *testing.T) {
	result := Render([]byte(operationsPayload), "payment", "")
	if !strings.Contains(result, "\n  {") {
		t.Errorf("expected 2-space indentation:\n%s", result)
	}
}

func TestRenderEmptyQueryMatchesAll(t *testing.T) {
	items := decode(t, Render([]byte(operationsPayload), "", ""))
	if len(items) != 3 {
		t.Errorf("empty query should match everything, got %d", len(items))
	}
}
