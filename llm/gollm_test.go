package llm

import "testing"

func TestParseToolCallsBareArray(t *testing.T) {
	text := `[{"name": "list_files", "arguments": {"path": "."}}]`
	calls := parseToolCalls(text)
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	if calls[0].Name != "list_files" {
		t.Errorf("expected list_files, got %q", calls[0].Name)
	}
	if calls[0].Arguments["path"] != "." {
		t.Errorf("expected path argument, got %v", calls[0].Arguments)
	}
	if calls[0].ID == "" {
		t.Error("each parsed call must get an ID")
	}
}

func TestParseToolCallsWrapped(t *testing.T) {
	text := `I'll list the files. {"tool_calls": [{"name": "list_files", "arguments": {"path": "/tmp"}}]}`
	calls := parseToolCalls(text)
	if len(calls) != 1 || calls[0].Name != "list_files" {
		t.Fatalf("expected wrapped tool call to parse, got %v", calls)
	}
}

func TestParseToolCallsPlainText(t *testing.T) {
	if calls := parseToolCalls("just a normal sentence"); calls != nil {
		t.Errorf("plain text must yield no calls, got %v", calls)
	}
}

func TestParseToolCallsMalformedJSON(t *testing.T) {
	if calls := parseToolCalls(`[{"name": "broken`); calls != nil {
		t.Errorf("malformed JSON must yield no calls, got %v", calls)
	}
}

func TestStripToolCallJSON(t *testing.T) {
	text := `Here is my plan. [{"name": "list_files", "arguments": {}}]`
	if got := stripToolCallJSON(text); got != "Here is my plan." {
		t.Errorf("expected prose only, got %q", got)
	}
}
