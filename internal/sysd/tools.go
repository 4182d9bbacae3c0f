package sysd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mwynn/ryzenadj-mcp/internal/audit"
	"github.com/mwynn/ryzenadj-mcp/internal/command"
	"github.com/mwynn/ryzenadj-mcp/internal/executor"
	"github.com/mwynn/ryzenadj-mcp/internal/profile"
	"github.com/mwynn/ryzenadj-mcp/internal/tools"
)

// Deps bundles the collaborators the integration tools need: the script
// builder, the autostart writer, the profile store the command line is
// built from, the runner that executes the privileged scripts, and the
// absolute path of the tuning binary baked into the generated units.
type Deps struct {
	Manager    *Manager
	Autostart  *Autostart
	Store      *profile.Store
	Runner     *executor.Runner
	BinaryPath string
	UsePkexec  bool
}

// IntegrationTools returns the tool registrations for managing boot, resume
// and login-autostart integrations.
func IntegrationTools(deps Deps, auditLog *audit.Logger) []tools.Registration {
	return []tools.Registration{
		toolIntegrationSync(deps, auditLog),
		toolIntegrationBoot(deps, auditLog),
		toolIntegrationResume(deps, auditLog),
		toolIntegrationStatus(deps, auditLog),
	}
}

// scriptResult is the JSON payload for tools that executed a generated
// script.
type scriptResult struct {
	Outcome executor.Outcome `json:"outcome"`
	Command string           `json:"command"`
	Stdout  string           `json:"stdout"`
	Stderr  string           `json:"stderr"`
}

// profileArgs resolves the command line persisted into the integrations:
// the named profile (or the current selection) built against the absolute
// binary path. Enabling an integration for a profile with nothing enabled
// is rejected rather than installing a no-op unit.
func (d Deps) profileArgs(name string) ([]string, error) {
	doc, err := d.Store.LoadAll()
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = doc.Selected
	}
	if name == "" {
		return nil, errors.New("no profile selected")
	}
	values, ok := doc.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile '%s' does not exist", name)
	}
	args := command.Build(values, d.BinaryPath)
	if !command.HasSettings(args) {
		return nil, fmt.Errorf("profile '%s' enables no options; nothing to persist", name)
	}
	return args, nil
}

// runScript executes a generated script through the runner and blocks for
// its single completion result.
func (d Deps) runScript(script string) executor.Result {
	done := make(chan executor.Result, 1)
	d.Runner.RunShell(script, d.UsePkexec, func(res executor.Result) {
		done <- res
	})
	return <-done
}

func scriptPayload(res executor.Result) scriptResult {
	return scriptResult{
		Outcome: executor.Classify(res),
		Command: res.Command,
		Stdout:  res.Stdout,
		Stderr:  res.Stderr,
	}
}

func toolIntegrationSync(deps Deps, auditLog *audit.Logger) tools.Registration {
	const toolName = "integration_sync"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Bring all persistent integrations to the requested state: boot service, resume hook, and login autostart. Boot and resume changes run through a privileged shell script; the autostart entry is written directly."),
		mcp.WithBoolean("boot", mcp.Description("Install the boot service (default: false removes it)")),
		mcp.WithBoolean("resume", mcp.Description("Install the resume hook (default: false removes it)")),
		mcp.WithBoolean("autostart", mcp.Description("Install the login autostart entry (default: false removes it)")),
		mcp.WithString("profile", mcp.Description("Profile to persist; empty uses the current selection")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		boot := req.GetBool("boot", false)
		resume := req.GetBool("resume", false)
		autostart := req.GetBool("autostart", false)
		name := req.GetString("profile", "")
		params := map[string]any{"boot": boot, "resume": resume, "autostart": autostart, "profile": name}

		args := []string{deps.BinaryPath}
		if boot || resume {
			resolved, err := deps.profileArgs(name)
			if err != nil {
				tools.LogAudit(auditLog, toolName, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err.Error()), nil
			}
			args = resolved
		}

		res := deps.runScript(deps.Manager.SyncScript(args, boot, resume))
		outcome := executor.Classify(res)

		if err := deps.Autostart.Set(autostart); err != nil {
			tools.LogCommand(auditLog, toolName, res.Command, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}

		tools.LogCommand(auditLog, toolName, res.Command, string(outcome), start)
		return tools.JSONResult(scriptPayload(res)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolIntegrationBoot(deps Deps, auditLog *audit.Logger) tools.Registration {
	const toolName = "integration_boot"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Install or remove only the boot service, leaving the resume hook untouched."),
		mcp.WithBoolean("enable", mcp.Required(), mcp.Description("true installs, false removes")),
		mcp.WithString("profile", mcp.Description("Profile to persist; empty uses the current selection")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		enable := req.GetBool("enable", false)
		name := req.GetString("profile", "")
		params := map[string]any{"enable": enable, "profile": name}

		args := []string{deps.BinaryPath}
		if enable {
			resolved, err := deps.profileArgs(name)
			if err != nil {
				tools.LogAudit(auditLog, toolName, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err.Error()), nil
			}
			args = resolved
		}

		res := deps.runScript(deps.Manager.BootScript(args, enable))
		tools.LogCommand(auditLog, toolName, res.Command, string(executor.Classify(res)), start)
		return tools.JSONResult(scriptPayload(res)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolIntegrationResume(deps Deps, auditLog *audit.Logger) tools.Registration {
	const toolName = "integration_resume"

	tool := mcp.NewTool(toolName,
		mcp.WithDescription("Install or remove only the resume hook, leaving the boot service untouched."),
		mcp.WithBoolean("enable", mcp.Required(), mcp.Description("true installs, false removes")),
		mcp.WithString("profile", mcp.Description("Profile to persist; empty uses the current selection")),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		enable := req.GetBool("enable", false)
		name := req.GetString("profile", "")
		params := map[string]any{"enable": enable, "profile": name}

		args := []string{deps.BinaryPath}
		if enable {
			resolved, err := deps.profileArgs(name)
			if err != nil {
				tools.LogAudit(auditLog, toolName, params, "error: "+err.Error(), start)
				return tools.ErrorResult(err.Error()), nil
			}
			args = resolved
		}

		res := deps.runScript(deps.Manager.ResumeScript(args, enable))
		tools.LogCommand(auditLog, toolName, res.Command, string(executor.Classify(res)), start)
		return tools.JSONResult(scriptPayload(res)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolIntegrationStatus(deps Deps, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("integration_status",
		mcp.WithDescription("Report which persistent integrations are currently installed."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		st := deps.Manager.Probe(deps.Autostart)
		tools.LogAudit(auditLog, "integration_status", nil, "ok", start)
		return tools.JSONResult(st), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
