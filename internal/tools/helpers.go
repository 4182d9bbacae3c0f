// Package tools provides shared helper utilities for MCP tool handlers.
package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mwynn/ryzenadj-mcp/internal/audit"
)

// JSONResult marshals v to indented JSON and returns an mcp.CallToolResult.
func JSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("error marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// ErrorResult returns an mcp.CallToolResult that describes an error
// condition.
func ErrorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("error: %s", msg))
}

// LogAudit logs a tool invocation to the audit logger, silently ignoring a
// nil logger.
func LogAudit(logger *audit.Logger, action string, params map[string]any, result string, start time.Time) {
	if logger == nil {
		return
	}
	_ = logger.Log(audit.Entry{
		Timestamp: start,
		Action:    action,
		Params:    params,
		Result:    result,
		Duration:  time.Since(start),
	})
}

// LogCommand logs an executed command line to the audit logger, silently
// ignoring a nil logger.
func LogCommand(logger *audit.Logger, action, commandLine, result string, start time.Time) {
	if logger == nil {
		return
	}
	_ = logger.Log(audit.Entry{
		Timestamp: start,
		Action:    action,
		Command:   commandLine,
		Result:    result,
		Duration:  time.Since(start),
	})
}
