// Package sysd generates the shell scripts and unit files that make a tuning
// profile persistent across boot and suspend, and manages the per-user login
// autostart entry. Script builders only produce text; executing them (with
// elevated privileges) is the caller's concern.
package sysd

import (
	"strings"

	"github.com/mwynn/ryzenadj-mcp/internal/command"
)

// System paths for persistent integrations.
const (
	ServicePath = "/etc/systemd/system/ryzenadj-mcp.service"
	HookPath    = "/usr/lib/systemd/system-sleep/ryzenadj-mcp-resume"

	serviceDir = "/etc/systemd/system"
	hookDir    = "/usr/lib/systemd/system-sleep"
	unitName   = "ryzenadj-mcp.service"
)

// Manager builds integration scripts and probes integration state. Paths are
// injectable so tests can point probes at a scratch directory.
type Manager struct {
	servicePath string
	hookPath    string
}

// NewManager returns a Manager using the standard system paths.
func NewManager() *Manager {
	return &Manager{servicePath: ServicePath, hookPath: HookPath}
}

// ServiceContent renders the oneshot systemd unit whose single start action
// is the given command line.
func (m *Manager) ServiceContent(args []string) string {
	quoted := command.Join(args)
	return strings.Join([]string{
		"[Unit]",
		"Description=Apply ryzenadj profile (ryzenadj-mcp)",
		"After=multi-user.target",
		"",
		"[Service]",
		"Type=oneshot",
		"ExecStart=" + quoted,
		"",
		"[Install]",
		"WantedBy=multi-user.target",
		"",
	}, "\n")
}

// SleepHookContent renders the system-sleep hook script. systemd invokes
// sleep hooks with pre/post phase arguments; the command only runs on the
// post-resume phase.
func (m *Manager) SleepHookContent(args []string) string {
	quoted := command.Join(args)
	return strings.Join([]string{
		"#!/usr/bin/env bash",
		`if [ "$1" = "post" ]; then`,
		"  " + quoted,
		"fi",
		"",
	}, "\n")
}

// SyncScript generates an idempotent shell script that brings both the boot
// service and the resume hook to the requested state. The script runs under
// set -euo pipefail and must be executed with elevated privileges.
func (m *Manager) SyncScript(args []string, enableBoot, enableResume bool) string {
	lines := []string{
		"set -euo pipefail",
		"mkdir -p " + serviceDir,
		"mkdir -p " + hookDir,
	}
	lines = append(lines, m.bootLines(args, enableBoot)...)
	lines = append(lines, m.resumeLines(args, enableResume)...)
	return strings.Join(lines, "\n")
}

// BootScript generates a script touching only the boot service half.
func (m *Manager) BootScript(args []string, enable bool) string {
	lines := []string{
		"set -euo pipefail",
		"mkdir -p " + serviceDir,
	}
	lines = append(lines, m.bootLines(args, enable)...)
	return strings.Join(lines, "\n")
}

// ResumeScript generates a script touching only the resume hook half.
func (m *Manager) ResumeScript(args []string, enable bool) string {
	lines := []string{
		"set -euo pipefail",
		"mkdir -p " + hookDir,
	}
	lines = append(lines, m.resumeLines(args, enable)...)
	return strings.Join(lines, "\n")
}

func (m *Manager) bootLines(args []string, enable bool) []string {
	if !enable {
		return []string{
			"systemctl disable " + unitName + " || true",
			"rm -f " + m.servicePath,
			"systemctl daemon-reload",
		}
	}
	return []string{
		"printf '%s' " + command.Quote(m.ServiceContent(args)) + " > " + m.servicePath,
		"chmod 644 " + m.servicePath,
		"systemctl daemon-reload",
		"systemctl enable " + unitName,
		"systemctl restart " + unitName + " || true",
	}
}

func (m *Manager) resumeLines(args []string, enable bool) []string {
	if !enable {
		return []string{"rm -f " + m.hookPath}
	}
	return []string{
		"printf '%s' " + command.Quote(m.SleepHookContent(args)) + " > " + m.hookPath,
		"chmod 755 " + m.hookPath,
	}
}
