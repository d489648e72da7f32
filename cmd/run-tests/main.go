// Package main is the entry point for the run-tests harness.
package main

import (
	"os"

	"github.com/oxell/testsuite/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
