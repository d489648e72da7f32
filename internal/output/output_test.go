package output

import (
	"bytes"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestNewWithWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	w := NewWithWriters(&out, &errOut, true)
	if !w.color {
		t.Error("color = false, want true")
	}
	w.Print("x")
	w.Errorln("y")
	if out.String() != "x" || errOut.String() != "y\n" {
		t.Errorf("stdout = %q, stderr = %q", out.String(), errOut.String())
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Errorln(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Errorln("error %d", 42)

	if got := stderr.String(); got != "error 42\n" {
		t.Errorf("Errorln() = %q, want %q", got, "error 42\n")
	}
}

func TestWriter_Action(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Action("Using executable: %s", "/bin/oxell")

	if got := stdout.String(); got != "Using executable: /bin/oxell\n" {
		t.Errorf("Action() = %q", got)
	}
}

func TestWriter_Warning(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Warning("no fixtures under %s", "tests")

	if got := stderr.String(); got != "warning: no fixtures under tests\n" {
		t.Errorf("Warning() = %q", got)
	}
}

func TestWriter_ErrorPrefix(t *testing.T) {
	w, stdout, stderr := newTestWriter()

	w.ErrorPrefix("install failed: %s", "exit 1")

	if got := stderr.String(); got != "run-tests: install failed: exit 1\n" {
		t.Errorf("ErrorPrefix() = %q", got)
	}
	if stdout.Len() != 0 {
		t.Errorf("ErrorPrefix() wrote to stdout: %q", stdout.String())
	}
}

func TestWriter_ColorWrapsMessages(t *testing.T) {
	var out, errOut bytes.Buffer
	w := NewWithWriters(&out, &errOut, true)

	w.Action("go")
	w.ErrorPrefix("bad")

	if !strings.HasPrefix(out.String(), cyan) || !strings.HasSuffix(out.String(), reset+"\n") {
		t.Errorf("Action() colored = %q", out.String())
	}
	if !strings.Contains(errOut.String(), red+"run-tests:"+reset) {
		t.Errorf("ErrorPrefix() colored = %q", errOut.String())
	}
}

func TestWriter_PercentInArgumentsIsLiteral(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Action("%s", "100% done")

	if got := stdout.String(); got != "100% done\n" {
		t.Errorf("Action() = %q", got)
	}
}
