package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mwynn/ryzenadj-mcp/internal/audit"
	"github.com/mwynn/ryzenadj-mcp/internal/tools"
)

// ProfileTools returns a slice of tool registrations for all profile store
// MCP tools, wired to the provided Store and AuditLogger.
func ProfileTools(store *Store, auditLog *audit.Logger) []tools.Registration {
	return []tools.Registration{
		toolProfileList(store, auditLog),
		toolProfileGet(store, auditLog),
		toolProfileSave(store, auditLog),
		toolProfileDelete(store, auditLog),
		toolProfileExport(store, auditLog),
		toolProfileImport(store, auditLog),
	}
}

// listResult is the JSON payload returned by profile_list.
type listResult struct {
	Selected    string   `json:"selected"`
	Profiles    []string `json:"profiles"`
	HasBaseline bool     `json:"has_baseline"`
}

func toolProfileList(store *Store, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("profile_list",
		mcp.WithDescription("List saved tuning profiles and the current selection. The reserved baseline profile is excluded."),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		doc, err := store.LoadAll()
		if err != nil {
			tools.LogAudit(auditLog, "profile_list", nil, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		_, hasBaseline := doc.Profiles[BaselineProfileName]
		tools.LogAudit(auditLog, "profile_list", nil, "ok", start)
		return tools.JSONResult(listResult{
			Selected:    doc.Selected,
			Profiles:    ListNames(doc),
			HasBaseline: hasBaseline,
		}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolProfileGet(store *Store, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("profile_get",
		mcp.WithDescription("Return the stored value map of a named profile."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Profile name"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		name := req.GetString("name", "")
		params := map[string]any{"name": name}

		doc, err := store.LoadAll()
		if err != nil {
			tools.LogAudit(auditLog, "profile_get", params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		values, ok := doc.Profiles[name]
		if !ok {
			tools.LogAudit(auditLog, "profile_get", params, "not found", start)
			return tools.ErrorResult(fmt.Sprintf("profile '%s' does not exist", name)), nil
		}
		tools.LogAudit(auditLog, "profile_get", params, "ok", start)
		return tools.JSONResult(values), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolProfileSave(store *Store, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("profile_save",
		mcp.WithDescription("Save (create or overwrite) a named profile from a value map and select it. Unknown keys are dropped, numerics clamped non-negative."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Profile name; must not be blank or the reserved baseline name"),
		),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description("JSON object mapping option keys to values, e.g. {\"stapm_limit\": 15000, \"stapm_limit_enabled\": true}"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		name := req.GetString("name", "")
		raw := req.GetString("values", "")
		params := map[string]any{"name": name}

		var values map[string]any
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			tools.LogAudit(auditLog, "profile_save", params, "error: invalid values", start)
			return tools.ErrorResult(fmt.Sprintf("values must be a JSON object: %v", err)), nil
		}

		doc, err := store.Upsert(name, values)
		if err != nil {
			tools.LogAudit(auditLog, "profile_save", params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		tools.LogAudit(auditLog, "profile_save", params, "ok", start)
		return tools.JSONResult(doc.Profiles[doc.Selected]), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolProfileDelete(store *Store, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("profile_delete",
		mcp.WithDescription("Delete a named profile. Deleting the selected profile reassigns the selection."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Profile name"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		name := req.GetString("name", "")
		params := map[string]any{"name": name}

		doc, err := store.Delete(name)
		if err != nil {
			tools.LogAudit(auditLog, "profile_delete", params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		tools.LogAudit(auditLog, "profile_delete", params, "ok", start)
		return tools.JSONResult(listResult{Selected: doc.Selected, Profiles: ListNames(doc)}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolProfileExport(store *Store, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("profile_export",
		mcp.WithDescription("Write the full profile document to an arbitrary destination file."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Destination file path"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		path := req.GetString("path", "")
		params := map[string]any{"path": path}

		if err := store.Export(path); err != nil {
			tools.LogAudit(auditLog, "profile_export", params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		tools.LogAudit(auditLog, "profile_export", params, "ok", start)
		return mcp.NewToolResultText(fmt.Sprintf("profiles exported to %q", path)), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}

func toolProfileImport(store *Store, auditLog *audit.Logger) tools.Registration {
	tool := mcp.NewTool("profile_import",
		mcp.WithDescription("Replace the entire profile store with a document read from a file. Fails (leaving the store untouched) when no entry normalizes into a valid profile."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Source file path"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		path := req.GetString("path", "")
		params := map[string]any{"path": path}

		doc, err := store.Import(path)
		if err != nil {
			tools.LogAudit(auditLog, "profile_import", params, "error: "+err.Error(), start)
			return tools.ErrorResult(err.Error()), nil
		}
		tools.LogAudit(auditLog, "profile_import", params, "ok", start)
		return tools.JSONResult(listResult{Selected: doc.Selected, Profiles: ListNames(doc)}), nil
	}

	return tools.Registration{Tool: tool, Handler: server.ToolHandlerFunc(handler)}
}
