// Package tuning orchestrates the apply, info, and baseline-capture flows:
// it builds command lines from profile values, runs them through the
// executor, and routes diagnostic output through the telemetry parser and
// profile store.
package tuning

import (
	"errors"
	"fmt"

	"github.com/mwynn/ryzenadj-mcp/internal/command"
	"github.com/mwynn/ryzenadj-mcp/internal/executor"
	"github.com/mwynn/ryzenadj-mcp/internal/profile"
	"github.com/mwynn/ryzenadj-mcp/internal/telemetry"
)

// ErrNoActiveSettings is returned when a value map enables nothing: the
// built command line would be the bare binary, which must not be executed.
var ErrNoActiveSettings = errors.New("no options are enabled; nothing to apply")

// Manager ties the command builder, executor, telemetry parser and profile
// store together for the user-facing tuning actions.
type Manager struct {
	store     *profile.Store
	runner    *executor.Runner
	binary    string
	usePkexec bool
}

// NewManager returns a Manager invoking the given binary (bare name, PATH
// resolved) through runner, persisting into store.
func NewManager(store *profile.Store, runner *executor.Runner, binary string, usePkexec bool) *Manager {
	return &Manager{
		store:     store,
		runner:    runner,
		binary:    binary,
		usePkexec: usePkexec,
	}
}

// ApplyResult reports one completed apply action.
type ApplyResult struct {
	Outcome executor.Outcome `json:"outcome"`
	Command string           `json:"command"`
	Stdout  string           `json:"stdout"`
	Stderr  string           `json:"stderr"`
}

// InfoResult carries the telemetry snapshot together with the raw output it
// was scraped from.
type InfoResult struct {
	Metrics map[string]string `json:"metrics"`
	Raw     string            `json:"raw"`
	Command string            `json:"command"`
}

// Apply builds the command line for values and executes it. Returns
// ErrNoActiveSettings when nothing is enabled. Execution failures are not
// errors: they surface through the result's Outcome and captured streams.
func (m *Manager) Apply(values map[string]any) (*ApplyResult, error) {
	args := command.Build(values, m.binary)
	if !command.HasSettings(args) {
		return nil, ErrNoActiveSettings
	}

	res := m.await(args)
	return &ApplyResult{
		Outcome: executor.Classify(res),
		Command: res.Command,
		Stdout:  res.Stdout,
		Stderr:  res.Stderr,
	}, nil
}

// ApplyProfile applies a stored profile by name. An empty name applies the
// currently selected profile. The reserved baseline name is accepted here —
// applying it is the reset-to-defaults operation.
func (m *Manager) ApplyProfile(name string) (*ApplyResult, error) {
	values, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return m.Apply(values)
}

// Info runs the binary with --info and parses the telemetry snapshot.
// A failed run is reported as an error carrying the captured stderr.
func (m *Manager) Info() (*InfoResult, error) {
	res := m.await([]string{m.binary, "--info"})
	if !res.Success {
		return nil, fmt.Errorf("info failed: %s", res.Stderr)
	}
	return &InfoResult{
		Metrics: telemetry.ParseInfo(res.Stdout),
		Raw:     res.Stdout,
		Command: res.Command,
	}, nil
}

// CaptureBaseline runs --info, reconstructs a full value map from the
// output, and stores it as the reserved baseline profile. The visible
// selection is left untouched.
func (m *Manager) CaptureBaseline() (*profile.Document, error) {
	res := m.await([]string{m.binary, "--info"})
	if !res.Success {
		return nil, fmt.Errorf("failed to capture initial defaults: %s", res.Stderr)
	}
	values := telemetry.ParseBaseline(res.Stdout)
	return m.store.SaveBaseline(values)
}

// lookup resolves a profile name (or the current selection when empty) to
// its stored value map.
func (m *Manager) lookup(name string) (map[string]any, error) {
	doc, err := m.store.LoadAll()
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
	return values, nil
}

// await bridges the runner's callback contract to a synchronous result for
// tool handlers. The runner still executes on its own goroutine; only this
// call site blocks.
func (m *Manager) await(args []string) executor.Result {
	done := make(chan executor.Result, 1)
	m.runner.Run(args, m.usePkexec, func(res executor.Result) {
		done <- res
	})
	return <-done
}
