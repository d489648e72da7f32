package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/oxell/testsuite/internal/errors"
	"github.com/oxell/testsuite/internal/executor"
	"github.com/oxell/testsuite/internal/fixture"
	"github.com/oxell/testsuite/internal/outcome"
	"github.com/oxell/testsuite/internal/output"
	"github.com/oxell/testsuite/internal/process"
	"github.com/oxell/testsuite/internal/project"
)

// Options holds the parsed command-line flags.
type Options struct {
	Match string // Only fixtures whose name contains Match are executed
}

// Driver performs one harness run: build, install, discover, execute, report.
type Driver struct {
	project *project.Project
	runner  process.Runner
	out     *output.Writer
}

// NewDriver loads the project that contains dir.
func NewDriver(dir string, runner process.Runner, out *output.Writer) (*Driver, error) {
	p, err := project.Load(dir)
	if err != nil {
		return nil, errors.Configf("%v", err)
	}
	return &Driver{project: p, runner: runner, out: out}, nil
}

// Run executes every fixture in discovery order and reports each outcome as
// soon as it is known. It stops early only on a fatal error.
func (d *Driver) Run(ctx context.Context, opts Options) error {
	cfg := d.project.Config

	if err := d.step(ctx, "build", cfg.Build); err != nil {
		return err
	}
	if err := d.step(ctx, "install", cfg.Install); err != nil {
		return err
	}

	compiler := d.project.CompilerPath()
	d.out.Action("Using executable: %s", compiler)

	suites := d.project.SuitesDir()
	set, err := fixture.Locate(suites, fixture.Options{
		InputExt:  cfg.InputExtension,
		OutputExt: cfg.OutputExtension,
		Reserved:  cfg.Reserved,
	})
	if err != nil {
		return errors.IO(err, "fixture discovery failed")
	}
	if set.Len() == 0 {
		d.out.Warning("no fixtures found under %s", suites)
	}

	exec := executor.New(executor.Config{
		Compiler:        compiler,
		ArtifactDir:     cfg.ArtifactDir,
		ExclusionMarker: cfg.ExclusionMarker,
	}, d.runner)

	for _, rec := range set.Records() {
		if opts.Match != "" && !strings.Contains(rec.Name, opts.Match) {
			d.out.Result(rec.Name, outcome.Excluded())
			continue
		}

		o, err := exec.Execute(ctx, rec)
		if err != nil {
			return err
		}
		d.out.Result(rec.Name, o)
	}

	return nil
}

// step runs a toolchain command from the project root. An empty command
// disables the step.
func (d *Driver) step(ctx context.Context, name string, argv []string) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := process.Command{Name: argv[0], Args: argv[1:], Dir: d.project.Root}
	res, err := d.runner.Run(ctx, cmd)
	if err != nil {
		return &errors.HarnessError{
			Kind:    errors.KindBuild,
			Message: fmt.Sprintf("%s step could not start (%s)", name, cmd),
			Cause:   err,
		}
	}
	if !res.Success() {
		return errors.Buildf("%s step failed: command='%s' exit-code='%d' output:\n%s", name, cmd, res.ExitCode, res.Output)
	}
	return nil
}
