// Package process runs external programs and captures their output.
//
// Invocations block until the child exits. No deadline is applied: a child
// that never terminates stalls the caller until it is killed externally or
// the context passed to Run is cancelled.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/oxell/testsuite/internal/textenc"
)

// Command describes one program invocation.
type Command struct {
	Name string   // Program path or name looked up in PATH
	Args []string // Arguments, not including Name
	Dir  string   // Working directory; empty means the current directory
}

// String renders the command line for messages.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result is the outcome of a finished process.
type Result struct {
	ExitCode int
	Output   string // Stdout and stderr interleaved as written
}

// Success reports whether the process exited with code 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner runs commands to completion.
type Runner interface {
	// Run waits for the command and returns its exit code and output.
	// A non-zero exit code is not an error; errors mean the process could
	// not be started or waited on.
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner is the Runner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new os/exec backed runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes cmd with stdout and stderr bound to a single buffer.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var captured bytes.Buffer
	c.Stdout = &captured
	c.Stderr = &captured

	err := c.Run()
	res := Result{Output: textenc.Decode(captured.Bytes())}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		// -1 when the child was killed by a signal.
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	default:
		return res, fmt.Errorf("%s: %w", cmd.Name, err)
	}
}
