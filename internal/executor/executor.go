// Package executor runs a single fixture through compile, execute and compare.
package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oxell/testsuite/internal/diff"
	harnesserrors "github.com/oxell/testsuite/internal/errors"
	"github.com/oxell/testsuite/internal/fixture"
	"github.com/oxell/testsuite/internal/outcome"
	"github.com/oxell/testsuite/internal/process"
	"github.com/oxell/testsuite/internal/textenc"
)

// Diagnostics for fixtures missing one of their files.
const (
	MissingInput  = "missing input file"
	MissingOutput = "missing output file"
)

// MismatchHeader starts the diagnostic of a fixture whose output differs.
const MismatchHeader = "Output did not match expected"

// Config is fixed for the lifetime of an Executor.
type Config struct {
	Compiler        string // Absolute path of the compiler executable
	ArtifactDir     string // Folder, next to each input, the compiler writes to
	ExclusionMarker string // First-line prefix that skips a fixture
}

// Executor turns fixture records into outcomes.
type Executor struct {
	cfg    Config
	runner process.Runner
}

// New creates an Executor that starts processes through runner.
func New(cfg Config, runner process.Runner) *Executor {
	return &Executor{cfg: cfg, runner: runner}
}

// Execute runs rec and classifies the result. Every per-fixture problem is
// reported as a Failed outcome. The returned error is reserved for I/O
// failures on the fixture's own files after discovery (a vanished or
// unreadable input, for instance) and should abort the run.
func (e *Executor) Execute(ctx context.Context, rec fixture.Record) (outcome.Outcome, error) {
	if !rec.Executable() {
		return outcome.Failed(structuralFailure(rec)), nil
	}

	excluded, err := e.isExcluded(rec.Input)
	if err != nil {
		return outcome.Outcome{}, harnesserrors.FixtureError(rec.Name, err, "failed to read input")
	}
	if excluded {
		return outcome.Excluded(), nil
	}

	artifact, failure := e.compile(ctx, rec.Input)
	if failure != "" {
		return outcome.Failed(failure), nil
	}

	actual, failure := e.run(ctx, artifact)
	if failure != "" {
		return outcome.Failed(failure), nil
	}

	expectedData, err := os.ReadFile(rec.Output)
	if err != nil {
		return outcome.Outcome{}, harnesserrors.FixtureError(rec.Name, err, "failed to read expected output")
	}

	expected := diff.SplitLines(textenc.Decode(expectedData))
	got := diff.SplitLines(actual)
	if diff.Equal(expected, got) {
		return outcome.Passed(), nil
	}

	hunks, err := diff.Unified(expected, got, rec.Output, artifact)
	if err != nil {
		werr := harnesserrors.Wrap(err, "failed to render diff")
		werr.Fixture = rec.Name
		return outcome.Outcome{}, werr
	}
	return outcome.Failed(MismatchHeader + "\n" + hunks), nil
}

// structuralFailure names the file missing from an incomplete record. The
// input is reported first when both are missing.
func structuralFailure(rec fixture.Record) string {
	if rec.Input == "" {
		return MissingInput
	}
	return MissingOutput
}

// isExcluded reports whether the first line of the input starts with the
// exclusion marker. Nothing past the first line is read.
func (e *Executor) isExcluded(input string) (bool, error) {
	f, err := os.Open(input)
	if err != nil {
		return false, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.HasPrefix(textenc.Decode([]byte(line)), e.cfg.ExclusionMarker), nil
}

// compile invokes the compiler from the input's directory. It returns the
// artifact path, or a non-empty failure diagnostic.
func (e *Executor) compile(ctx context.Context, input string) (string, string) {
	res, err := e.runner.Run(ctx, process.Command{
		Name: e.cfg.Compiler,
		Args: []string{input},
		Dir:  filepath.Dir(input),
	})
	if err != nil {
		return "", fmt.Sprintf("compiler failed to start: file='%s' error: %v", input, err)
	}
	if !res.Success() {
		return "", fmt.Sprintf("compilation failed: file='%s' exit-code='%d' output:\n%s", input, res.ExitCode, res.Output)
	}
	return ArtifactPath(input, e.cfg.ArtifactDir), ""
}

// run executes the compiled artifact without arguments. It returns the
// program output, or a non-empty failure diagnostic.
func (e *Executor) run(ctx context.Context, artifact string) (string, string) {
	res, err := e.runner.Run(ctx, process.Command{Name: artifact})
	if err != nil {
		return "", fmt.Sprintf("artifact failed to start: file='%s' error: %v", artifact, err)
	}
	if !res.Success() {
		return "", fmt.Sprintf("artifact run failed: file='%s' exit-code='%d' output:\n%s", artifact, res.ExitCode, res.Output)
	}
	return res.Output, ""
}

// ArtifactPath returns where the compiler places the executable built from
// input: <dir>/<artifactDir>/<base name without extension>.
func ArtifactPath(input, artifactDir string) string {
	dir, file := filepath.Split(input)
	name, _ := fixture.SplitExt(file)
	return filepath.Join(dir, artifactDir, name)
}
