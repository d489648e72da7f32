package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/oxell/testsuite/internal/outcome"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status outcome.Status
		want   string
	}{
		{outcome.StatusPassed, "\033[0;32m"},
		{outcome.StatusFailed, "\033[0;31m"},
		{outcome.StatusExcluded, "\033[0;33m"},
		{outcome.Status(99), ""},
	}

	for _, tt := range tests {
		if got := StatusColor(tt.status); got != tt.want {
			t.Errorf("StatusColor(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestWriter_Result_Plain(t *testing.T) {
	tests := []struct {
		name string
		o    outcome.Outcome
		want string
	}{
		{"passed", outcome.Passed(), "[add] PASSED\n"},
		{"excluded", outcome.Excluded(), "[add] EXCLUDED\n"},
		{"failed", outcome.Failed("missing output file"), "[add] FAILED\nmissing output file\n"},
		{"failed multi-line", outcome.Failed("a\nb"), "[add] FAILED\na\nb\n"},
		{"failed with percent", outcome.Failed("100%s"), "[add] FAILED\n100%s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, stdout, stderr := newTestWriter()

			w.Result("add", tt.o)

			if got := stdout.String(); got != tt.want {
				t.Errorf("Result() = %q, want %q", got, tt.want)
			}
			if stderr.Len() != 0 {
				t.Errorf("Result() wrote to stderr: %q", stderr.String())
			}
		})
	}
}

func TestWriter_Result_Color(t *testing.T) {
	tests := []struct {
		name string
		o    outcome.Outcome
		want string
	}{
		{"passed", outcome.Passed(), "\033[0;32m[add] PASSED\n\033[0m"},
		{"excluded", outcome.Excluded(), "\033[0;33m[add] EXCLUDED\n\033[0m"},
		{"failed", outcome.Failed("boom"), "\033[0;31m[add] FAILED\nboom\n\033[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w := NewWithWriters(&out, &bytes.Buffer{}, true)

			w.Result("add", tt.o)

			if got := out.String(); got != tt.want {
				t.Errorf("Result() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	// A regular file is never a terminal.
	f, err := createTemp(t)
	if err != nil {
		t.Fatal(err)
	}
	if isTerminal(f) {
		t.Error("isTerminal(regular file) = true")
	}
}

func createTemp(t *testing.T) (*os.File, error) {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() { f.Close() })
	return f, nil
}
