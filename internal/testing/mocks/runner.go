// Package mocks provides shared test doubles for run-tests packages.
package mocks

import (
	"context"
	"sync"

	"github.com/oxell/testsuite/internal/process"
)

// Response is a scripted reply for one program.
type Response struct {
	Result process.Result
	Err    error
}

// Runner implements process.Runner for testing.
// Use NewRunner() to create instances with a fluent builder API.
// Commands without a scripted response succeed with empty output.
type Runner struct {
	responses map[string]Response
	fallback  *Response

	// RunFunc, when set, answers every call instead of the scripted responses.
	RunFunc func(ctx context.Context, cmd process.Command) (process.Result, error)

	mu    sync.Mutex
	calls []process.Command
}

// NewRunner creates a new mock runner.
func NewRunner() *Runner {
	return &Runner{responses: make(map[string]Response)}
}

// On scripts the result returned when the program name equals name.
func (m *Runner) On(name string, res process.Result) *Runner {
	m.responses[name] = Response{Result: res}
	return m
}

// OnOutput scripts a successful run of name printing output.
func (m *Runner) OnOutput(name, output string) *Runner {
	return m.On(name, process.Result{Output: output})
}

// OnExit scripts a run of name exiting with code and printing output.
func (m *Runner) OnExit(name string, code int, output string) *Runner {
	return m.On(name, process.Result{ExitCode: code, Output: output})
}

// OnError scripts a start failure for name.
func (m *Runner) OnError(name string, err error) *Runner {
	m.responses[name] = Response{Err: err}
	return m
}

// Otherwise sets the result for programs without a scripted response.
func (m *Runner) Otherwise(res process.Result) *Runner {
	m.fallback = &Response{Result: res}
	return m
}

// WithRunFunc sets the function called by Run.
func (m *Runner) WithRunFunc(fn func(ctx context.Context, cmd process.Command) (process.Result, error)) *Runner {
	m.RunFunc = fn
	return m
}

// Run records cmd and returns the scripted response.
func (m *Runner) Run(ctx context.Context, cmd process.Command) (process.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, cloneCommand(cmd))
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, cmd)
	}
	if resp, ok := m.responses[cmd.Name]; ok {
		return resp.Result, resp.Err
	}
	if m.fallback != nil {
		return m.fallback.Result, m.fallback.Err
	}
	return process.Result{}, nil
}

// Test inspection methods

// Calls returns every command passed to Run, in order.
func (m *Runner) Calls() []process.Command {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]process.Command, len(m.calls))
	copy(result, m.calls)
	return result
}

// CallCount returns the number of times Run was called.
func (m *Runner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// CallsTo returns the commands whose program name equals name.
func (m *Runner) CallsTo(name string) []process.Command {
	var out []process.Command
	for _, c := range m.Calls() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears call tracking state.
func (m *Runner) Reset() {
	m.mu.Lock()
	m.calls = nil
	m.mu.Unlock()
}

func cloneCommand(cmd process.Command) process.Command {
	if cmd.Args != nil {
		cmd.Args = append([]string(nil), cmd.Args...)
	}
	return cmd
}
