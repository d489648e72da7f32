// Package runtests provides public constants for scripts and CI jobs that
// invoke the run-tests harness.
package runtests

// Exit codes returned by run-tests. Fixture failures are reported on stdout
// and never change the exit code; only fatal conditions do.
const (
	// ExitSuccess indicates every fixture was processed.
	ExitSuccess = 0

	// ExitFailure indicates an I/O anomaly, such as an unreadable suite root.
	ExitFailure = 1

	// ExitConfigError indicates an invalid configuration file or command line.
	ExitConfigError = 2

	// ExitBuildError indicates the build or install step failed.
	ExitBuildError = 3
)
