package audit

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
)

func Test_Logger_Log_Cases(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		validate func(t *testing.T, output string)
	}{
		{
			name: "tool invocation entry",
			entry: Entry{
				Timestamp: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
				Action:    "profile_save",
				Params:    map[string]any{"name": "Quiet"},
				Result:    "ok",
				Duration:  3 * time.Millisecond,
			},
			validate: func(t *testing.T, output string) {
				t.Helper()
				var decoded Entry
				if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &decoded); err != nil {
					t.Fatalf("output is not valid JSON: %v", err)
				}
				if decoded.Action != "profile_save" {
					t.Errorf("Action = %q, want %q", decoded.Action, "profile_save")
				}
				if strings.Contains(output, `"command"`) {
					t.Error("empty command should be omitted")
				}
			},
		},
		{
			name: "command execution entry",
			entry: Entry{
				Timestamp: time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
				Action:    "tuning_apply",
				Command:   "pkexec ryzenadj --stapm-limit 15000",
				Result:    "success",
			},
			validate: func(t *testing.T, output string) {
				t.Helper()
				if !strings.Contains(output, "--stapm-limit") {
					t.Errorf("command line missing from entry: %s", output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf)
			if err := logger.Log(tt.entry); err != nil {
				t.Fatalf("Log: %v", err)
			}
			if !strings.HasSuffix(buf.String(), "\n") {
				t.Error("entry is not newline-terminated")
			}
			tt.validate(t, buf.String())
		})
	}
}

func Test_Logger_NilHandling(t *testing.T) {
	if NewLogger(nil) != nil {
		t.Error("NewLogger(nil) should return nil")
	}

	var logger *Logger
	if err := logger.Log(Entry{Action: "x"}); err != ErrNilWriter {
		t.Errorf("nil logger Log() = %v, want ErrNilWriter", err)
	}
}

func Test_Logger_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = logger.Log(Entry{Action: "tuning_info", Result: "ok"})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for _, line := range lines {
		var decoded Entry
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Errorf("interleaved write produced invalid JSON line: %v", err)
		}
	}
}
