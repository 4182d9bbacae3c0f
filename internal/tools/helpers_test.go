package tools_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mwynn/ryzenadj-mcp/internal/audit"
	"github.com/mwynn/ryzenadj-mcp/internal/tools"
)

// resultText extracts the text string from the first Content element of a
// CallToolResult.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("CallToolResult is nil")
	}
	if len(result.Content) == 0 {
		t.Fatal("CallToolResult.Content is empty")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Content[0] is %T, want mcp.TextContent", result.Content[0])
	}
	return tc.Text
}

func Test_JSONResult(t *testing.T) {
	text := resultText(t, tools.JSONResult(map[string]any{"selected": "Quiet"}))

	var parsed map[string]any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatalf("result is not valid JSON: %v\ntext: %s", err, text)
	}
	if parsed["selected"] != "Quiet" {
		t.Errorf("selected = %v, want %q", parsed["selected"], "Quiet")
	}
	if !strings.Contains(text, "  \"selected\"") {
		t.Errorf("expected 2-space indented JSON, got:\n%s", text)
	}
}

func Test_ErrorResult(t *testing.T) {
	text := resultText(t, tools.ErrorResult("profile 'x' does not exist"))
	if text != "error: profile 'x' does not exist" {
		t.Errorf("text = %q", text)
	}
}

func Test_LogAudit_Cases(t *testing.T) {
	t.Run("nil logger is ignored", func(t *testing.T) {
		tools.LogAudit(nil, "profile_list", nil, "ok", time.Now())
		tools.LogCommand(nil, "tuning_apply", "ryzenadj --info", "ok", time.Now())
	})

	t.Run("entries are written", func(t *testing.T) {
		var buf bytes.Buffer
		logger := audit.NewLogger(&buf)

		tools.LogAudit(logger, "profile_save", map[string]any{"name": "Quiet"}, "ok", time.Now())
		tools.LogCommand(logger, "tuning_apply", "ryzenadj --stapm-limit 15000", "success", time.Now())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d audit lines, want 2", len(lines))
		}
		if !strings.Contains(lines[0], "profile_save") {
			t.Errorf("first line missing action: %s", lines[0])
		}
		if !strings.Contains(lines[1], "--stapm-limit") {
			t.Errorf("second line missing command: %s", lines[1])
		}
	})
}
