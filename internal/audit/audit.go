// Package audit records tool invocations and executed commands as
// newline-delimited JSON.
package audit

import (
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"
)

// ErrNilWriter is returned by Logger.Log when the logger was constructed
// with a nil writer.
var ErrNilWriter = errors.New("audit logger: writer is nil")

// Entry captures a single auditable action. Command carries the
// shell-quoted command line for actions that executed a process; it is
// empty for pure store operations.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	Params    map[string]any `json:"params,omitempty"`
	Command   string         `json:"command,omitempty"`
	Result    string         `json:"result"`
	Duration  time.Duration  `json:"duration_ns"`
}

// Logger writes Entry records to an io.Writer, one JSON object per line.
// It is safe for concurrent use.
type Logger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger writing to w. A nil writer yields a nil
// logger; callers must tolerate that (Log on a nil Logger returns
// ErrNilWriter).
func NewLogger(w io.Writer) *Logger {
	if w == nil {
		return nil
	}
	return &Logger{w: w}
}

// Log serialises entry as a single JSON line and appends it to the
// underlying writer. Safe for concurrent use.
func (l *Logger) Log(entry Entry) error {
	if l == nil || l.w == nil {
		return ErrNilWriter
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	l.mu.Lock()
	_, err = l.w.Write(data)
	l.mu.Unlock()

	return err
}
