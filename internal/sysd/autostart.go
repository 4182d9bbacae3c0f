package sysd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Status reports which persistent integrations are currently installed.
type Status struct {
	BootService bool `json:"boot_service"`
	ResumeHook  bool `json:"resume_hook"`
	Autostart   bool `json:"autostart"`
}

// Autostart manages the per-user desktop-entry file that launches the
// front-end at login. Unlike the boot and resume integrations this file
// lives in the user's own config directory, so it is written directly,
// without a privileged script.
type Autostart struct {
	path       string
	installed  string
	sourceExec string
}

// NewAutostart returns an Autostart for the current user. installedBinary is
// the executable name used when it exists on disk; sourceExec is the
// fallback launch command used otherwise.
func NewAutostart(installedBinary, sourceExec string) (*Autostart, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return &Autostart{
		path:       filepath.Join(base, "autostart", "ryzenadj-mcp.desktop"),
		installed:  installedBinary,
		sourceExec: sourceExec,
	}, nil
}

// Path returns the location of the autostart descriptor.
func (a *Autostart) Path() string {
	return a.path
}

// Enabled reports whether the autostart descriptor exists.
func (a *Autostart) Enabled() bool {
	_, err := os.Stat(a.path)
	return err == nil
}

// Content renders the desktop entry. The Exec line prefers the installed
// binary and falls back to the source invocation when the binary is absent.
func (a *Autostart) Content() string {
	execCommand := filepath.Base(a.installed)
	if _, err := os.Stat(a.installed); err != nil {
		execCommand = a.sourceExec
	}
	return strings.Join([]string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=RyzenAdj Control",
		"Comment=Frontend for ryzenadj",
		"Exec=" + execCommand,
		"Icon=utilities-system-monitor",
		"Terminal=false",
		"Categories=System;Settings;",
		"StartupNotify=true",
		"",
	}, "\n")
}

// Set installs or removes the autostart descriptor.
func (a *Autostart) Set(enabled bool) error {
	if !enabled {
		if err := os.Remove(a.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("autostart update failed: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("autostart update failed: %w", err)
	}
	if err := os.WriteFile(a.path, []byte(a.Content()), 0o644); err != nil {
		return fmt.Errorf("autostart update failed: %w", err)
	}
	return nil
}

// Probe reports the install state of all three integrations.
func (m *Manager) Probe(autostart *Autostart) Status {
	st := Status{}
	if _, err := os.Stat(m.servicePath); err == nil {
		st.BootService = true
	}
	if _, err := os.Stat(m.hookPath); err == nil {
		st.ResumeHook = true
	}
	if autostart != nil {
		st.Autostart = autostart.Enabled()
	}
	return st
}
