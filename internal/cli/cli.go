// Package cli provides the run-tests command-line interface.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxell/testsuite/internal/errors"
	"github.com/oxell/testsuite/internal/output"
	"github.com/oxell/testsuite/internal/process"
)

// Deps are the collaborators the CLI talks to. Tests substitute them.
type Deps struct {
	Out    *output.Writer
	Runner process.Runner
	Getwd  func() (string, error)
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return RunWith(context.Background(), args, Deps{
		Out:    output.New(),
		Runner: process.NewExecRunner(),
		Getwd:  os.Getwd,
	})
}

// RunWith is Run with explicit dependencies.
//
// Fixture results never affect the exit code; only fatal errors (bad
// configuration, a failed build or install step, I/O anomalies) do.
func RunWith(ctx context.Context, args []string, deps Deps) int {
	root := NewRootCmd(deps)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		deps.Out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

// NewRootCmd creates the run-tests command.
func NewRootCmd(deps Deps) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "run-tests",
		Short: "Build the compiler and run the golden-output test suite",
		Long: "run-tests builds and installs the compiler, then compiles every fixture\n" +
			"input, runs the produced program and compares its output with the\n" +
			"expected file next to it.",
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := deps.Getwd()
			if err != nil {
				return errors.IO(err, "cannot determine working directory")
			}

			d, err := NewDriver(cwd, deps.Runner, deps.Out)
			if err != nil {
				return err
			}
			return d.Run(cmd.Context(), opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Configf("%v", err)
	})

	cmd.Flags().StringVarP(&opts.Match, "match", "m", "",
		"only run tests whose name contains this text")

	return cmd
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.Configf("unexpected argument %q", args[0])
	}
	return nil
}
