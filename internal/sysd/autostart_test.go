package sysd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestAutostart(t *testing.T, installedBinary string) *Autostart {
	t.Helper()
	return &Autostart{
		path:       filepath.Join(t.TempDir(), "autostart", "ryzenadj-mcp.desktop"),
		installed:  installedBinary,
		sourceExec: "ryzenadj-mcp",
	}
}

func Test_Autostart_SetAndRemove(t *testing.T) {
	a := newTestAutostart(t, "/nonexistent/ryzenadj-mcp")

	if a.Enabled() {
		t.Error("Enabled() = true before install")
	}

	if err := a.Set(true); err != nil {
		t.Fatalf("Set(true): %v", err)
	}
	if !a.Enabled() {
		t.Error("Enabled() = false after install")
	}

	data, err := os.ReadFile(a.Path())
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{
		"[Desktop Entry]",
		"Type=Application",
		"Exec=ryzenadj-mcp",
		"Categories=System;Settings;",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("desktop entry missing %q:\n%s", want, content)
		}
	}

	if err := a.Set(false); err != nil {
		t.Fatalf("Set(false): %v", err)
	}
	if a.Enabled() {
		t.Error("Enabled() = true after removal")
	}
}

func Test_Autostart_Set_RemoveIsIdempotent(t *testing.T) {
	a := newTestAutostart(t, "/nonexistent/ryzenadj-mcp")
	if err := a.Set(false); err != nil {
		t.Errorf("Set(false) on missing file: %v", err)
	}
}

func Test_Autostart_Content_PrefersInstalledBinary(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "ryzenadj-mcp")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	a := newTestAutostart(t, binary)
	if !strings.Contains(a.Content(), "Exec=ryzenadj-mcp") {
		t.Errorf("Content() should use the installed binary name:\n%s", a.Content())
	}

	// Missing binary falls back to the source invocation.
	a2 := newTestAutostart(t, filepath.Join(dir, "missing"))
	a2.sourceExec = "python /opt/ryzenadj-mcp/main.py"
	if !strings.Contains(a2.Content(), "Exec=python /opt/ryzenadj-mcp/main.py") {
		t.Errorf("Content() should fall back to source invocation:\n%s", a2.Content())
	}
}

func Test_Manager_Probe(t *testing.T) {
	dir := t.TempDir()
	m := &Manager{
		servicePath: filepath.Join(dir, "unit.service"),
		hookPath:    filepath.Join(dir, "resume-hook"),
	}
	a := newTestAutostart(t, "/nonexistent")

	st := m.Probe(a)
	if st.BootService || st.ResumeHook || st.Autostart {
		t.Errorf("Probe() = %+v, want all false", st)
	}

	if err := os.WriteFile(m.servicePath, []byte("unit"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := a.Set(true); err != nil {
		t.Fatal(err)
	}

	st = m.Probe(a)
	if !st.BootService {
		t.Error("BootService = false after unit file written")
	}
	if st.ResumeHook {
		t.Error("ResumeHook = true without hook file")
	}
	if !st.Autostart {
		t.Error("Autostart = false after install")
	}
}
