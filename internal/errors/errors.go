// Package errors provides structured error types and exit codes for run-tests.
//
// Only fatal conditions are represented here. Per-fixture problems (compile
// failures, crashes, output mismatches) are outcomes, not errors.
package errors

import (
	"fmt"

	"github.com/oxell/testsuite/pkg/runtests"
)

// Exit codes for fatal conditions. A run that processes every fixture exits
// with ExitSuccess regardless of individual fixture results.
const (
	ExitSuccess      = runtests.ExitSuccess     // All fixtures processed
	ExitRuntimeError = runtests.ExitFailure     // I/O anomaly or unexpected failure
	ExitConfigError  = runtests.ExitConfigError // Invalid configuration or CLI usage
	ExitBuildError   = runtests.ExitBuildError  // Toolchain build or install step failed
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindBuild
	KindIO
)

// HarnessError is the base error type for run-tests.
type HarnessError struct {
	Kind    ErrorKind
	Message string
	Fixture string // Fixture name if applicable
	Cause   error  // Underlying error
}

func (e *HarnessError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if e.Fixture != "" {
		return fmt.Sprintf("[%s] %s", e.Fixture, msg)
	}
	return msg
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *HarnessError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindBuild:
		return ExitBuildError
	default:
		return ExitRuntimeError
	}
}

// Config creates a new configuration error.
func Config(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *HarnessError {
	return Config(fmt.Sprintf(format, args...))
}

// Build creates an error for a failed toolchain build or install step.
func Build(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindBuild,
		Message: message,
	}
}

// Buildf creates a build error with formatting.
func Buildf(format string, args ...interface{}) *HarnessError {
	return Build(fmt.Sprintf(format, args...))
}

// IO wraps a filesystem error that happened outside any fixture's contract.
func IO(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindIO,
		Message: message,
		Cause:   err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// FixtureError attaches a fixture name to an I/O error raised while executing it.
func FixtureError(fixture string, err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindIO,
		Message: message,
		Fixture: fixture,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var he *HarnessError
	if As(err, &he) {
		return he.ExitCode()
	}
	return ExitRuntimeError
}
