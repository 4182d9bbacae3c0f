package tuning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mwynn/ryzenadj-mcp/internal/audit"
	"github.com/mwynn/ryzenadj-mcp/internal/tools"
)

// TuningTools returns the tool registrations for applying profiles and
// reading diagnostics, wired to the provided Manager and AuditLogger.
func TuningTools(mgr *Manager, auditLog *audit.Logger) []tools.Registration {
	return []tools.Registration{
		toolTuningApply(mgr, auditLog),
		toolTuningInfo(mgr, auditLog),
		toolTuningCaptureBaseline(mgr, auditLog),
	}
}

func toolTuningApply(mgr *Manager, auditLog *audit.Logger) tools.Registration {
	const toolName = "tuning_apply"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Apply tuning values through ryzenadj. Provide either a stored profile name (empty selects the current profile) or an inline JSON value map. "+
			"power_saving and max_performance are passed through as given; ryzenadj itself rejects the combination."),
		mcp.WithString("profile",
			mcp.Description("Stored profile name; empty applies the selected profile"),
		),
		mcp.WithString("values",
			mcp.Description("Inline JSON value map; overrides 'profile' when set"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		name := req.GetString("profile", "")
		raw := req.GetString("values", "")
		params := map[string]any{"profile": name}

		var (
			res *ApplyResult
			err error
		)
		if raw != "" {
			var values map[string]any
			if jsonErr := json.Unmarshal([]byte(raw), &values); jsonErr != nil {
				tools.LogAudit(auditLog, toolName, params, "error: invalid values", start)
				return tools.ErrorResult(fmt.Sprintf("values must be a JSON object: %v", jsonErr)), nil
			}
			res, err = mgr.Apply(values)
		} else {
			res, err = mgr.ApplyProfile(name)
		}

		if errors.Is(err, ErrNoActiveSettings) {
			tools.LogAudit(auditLog, toolName, params, "nothing to apply", start)
			return mcp.NewToolResultText("no options are enabled; nothing to apply"), nil
		}
		if err != nil {
			tools.LogAudit(auditLog, toolName, params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogCommand(auditLog, toolName, res.Command, string(res.Outcome), start)
		return tools.JSONResult(res), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolTuningInfo(mgr *Manager, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("tuning_info",
		mcp.WithDescription("Run ryzenadj --info and return a best-effort telemetry snapshot (stapm, ppt_fast, ppt_slow, cpu_temp, power_draw). Metrics missing from the output are reported as N/A."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := mgr.Info()
		if err != nil {
			tools.LogAudit(auditLog, "tuning_info", nil, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		tools.LogCommand(auditLog, "tuning_info", res.Command, "ok", start)
		return tools.JSONResult(res), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolTuningCaptureBaseline(mgr *Manager, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("tuning_capture_baseline",
		mcp.WithDescription("Capture the machine's current defaults from ryzenadj --info into the reserved read-only baseline profile. The current selection is left untouched."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		if _, err := mgr.CaptureBaseline(); err != nil {
			tools.LogAudit(auditLog, "tuning_capture_baseline", nil, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		tools.LogAudit(auditLog, "tuning_capture_baseline", nil, "ok", start)
		return mcp.NewToolResultText("baseline profile captured"), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
