// Package executor runs built ryzenadj commands and integration scripts
// asynchronously and reports a single completion result per invocation.
package executor

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/mwynn/ryzenadj-mcp/internal/command"
)

// notFoundMessage replaces the raw launch error when the executable could
// not be located at all.
const notFoundMessage = "Command not found. Is ryzenadj installed?"

// Result is the completion event for one invocation: whether the process
// exited zero, its trimmed output streams, and the shell-quoted command line
// that was actually executed (for the audit trail).
type Result struct {
	Success bool
	Stdout  string
	Stderr  string
	Command string
}

// Callback receives exactly one Result per invocation. It is invoked from
// the invocation's own goroutine, never from the caller's control flow.
type Callback func(Result)

// Runner executes commands on one goroutine per invocation. Concurrent
// invocations are independent; the only shared state is the bookkeeping set
// used to track in-flight work, guarded by a mutex. Invocations have no
// timeout and cannot be cancelled once started.
type Runner struct {
	// euid is swappable so tests can exercise both privilege branches.
	euid func() int

	mu     sync.Mutex
	active map[uint64]struct{}
	nextID uint64
}

// NewRunner returns a Runner that checks the real effective UID.
func NewRunner() *Runner {
	return &Runner{
		euid:   os.Geteuid,
		active: make(map[uint64]struct{}),
	}
}

// Run executes args asynchronously. When usePkexec is set and the current
// process is not already root, the command is prefixed with pkexec. Run
// never fails directly: launch errors are folded into a failed Result.
func (r *Runner) Run(args []string, usePkexec bool, cb Callback) {
	r.spawn(r.withPrivilege(args, usePkexec), cb)
}

// RunShell executes an ad hoc script through bash with the same privilege
// handling as Run. Scripts are expected to carry their own strict-mode
// preamble.
func (r *Runner) RunShell(script string, usePkexec bool, cb Callback) {
	r.spawn(r.withPrivilege([]string{"/usr/bin/bash", "-lc", script}, usePkexec), cb)
}

// InFlight reports the number of invocations that have started but not yet
// delivered their result.
func (r *Runner) InFlight() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

func (r *Runner) withPrivilege(args []string, usePkexec bool) []string {
	if r.euid() == 0 || !usePkexec {
		return args
	}
	return append([]string{"pkexec"}, args...)
}

func (r *Runner) spawn(args []string, cb Callback) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.active[id] = struct{}{}
	r.mu.Unlock()

	go func() {
		res := run(args)
		r.mu.Lock()
		delete(r.active, id)
		r.mu.Unlock()
		cb(res)
	}()
}

func run(args []string) Result {
	display := command.Join(args)

	cmd := exec.Command(args[0], args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Success: err == nil,
		Stdout:  strings.TrimSpace(stdout.String()),
		Stderr:  strings.TrimSpace(stderr.String()),
		Command: display,
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		res.Stdout = ""
		res.Stderr = notFoundMessage
	case errors.As(err, &exitErr):
		// Shells report a missing command as exit 127.
		if exitErr.ExitCode() == 127 && res.Stderr == "" {
			res.Stderr = notFoundMessage
		}
	default:
		res.Stdout = ""
		res.Stderr = err.Error()
	}

	return res
}
