package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/oxell/testsuite/internal/process"
)

// Compile-time check.
var _ process.Runner = (*Runner)(nil)

func TestRunner_ScriptedResponses(t *testing.T) {
	startErr := errors.New("exec format error")
	m := NewRunner().
		OnOutput("/bin/add", "2\n").
		OnExit("/bin/oxell", 1, "parse error").
		OnError("/bin/broken", startErr)

	ctx := context.Background()

	res, err := m.Run(ctx, process.Command{Name: "/bin/add"})
	if err != nil || res.Output != "2\n" || res.ExitCode != 0 {
		t.Errorf("Run(add) = %+v, %v", res, err)
	}

	res, err = m.Run(ctx, process.Command{Name: "/bin/oxell", Args: []string{"a.hl"}})
	if err != nil || res.ExitCode != 1 || res.Output != "parse error" {
		t.Errorf("Run(oxell) = %+v, %v", res, err)
	}

	if _, err := m.Run(ctx, process.Command{Name: "/bin/broken"}); !errors.Is(err, startErr) {
		t.Errorf("Run(broken) error = %v, want %v", err, startErr)
	}

	res, err = m.Run(ctx, process.Command{Name: "unscripted"})
	if err != nil || !res.Success() || res.Output != "" {
		t.Errorf("Run(unscripted) = %+v, %v, want empty success", res, err)
	}
}

func TestRunner_Otherwise(t *testing.T) {
	m := NewRunner().Otherwise(process.Result{ExitCode: 9})

	res, _ := m.Run(context.Background(), process.Command{Name: "anything"})
	if res.ExitCode != 9 {
		t.Errorf("ExitCode = %d, want 9", res.ExitCode)
	}
}

func TestRunner_RunFuncTakesPrecedence(t *testing.T) {
	m := NewRunner().OnOutput("x", "scripted").WithRunFunc(func(_ context.Context, cmd process.Command) (process.Result, error) {
		return process.Result{Output: "func:" + cmd.Name}, nil
	})

	res, _ := m.Run(context.Background(), process.Command{Name: "x"})
	if res.Output != "func:x" {
		t.Errorf("Output = %q, want %q", res.Output, "func:x")
	}
}

func TestRunner_Tracking(t *testing.T) {
	m := NewRunner()
	ctx := context.Background()
	args := []string{"a.hl"}

	_, _ = m.Run(ctx, process.Command{Name: "cc", Args: args, Dir: "/s"})
	_, _ = m.Run(ctx, process.Command{Name: "bin"})
	_, _ = m.Run(ctx, process.Command{Name: "cc", Args: []string{"b.hl"}})
	args[0] = "mutated"

	if m.CallCount() != 3 {
		t.Errorf("CallCount() = %d, want 3", m.CallCount())
	}

	want := []process.Command{
		{Name: "cc", Args: []string{"a.hl"}, Dir: "/s"},
		{Name: "cc", Args: []string{"b.hl"}},
	}
	if diff := cmp.Diff(want, m.CallsTo("cc")); diff != "" {
		t.Errorf("CallsTo(cc) mismatch (-want +got):\n%s", diff)
	}

	m.Reset()
	if m.CallCount() != 0 {
		t.Errorf("CallCount() after Reset = %d, want 0", m.CallCount())
	}
}
