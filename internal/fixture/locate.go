package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Options controls how files are paired.
type Options struct {
	InputExt  string   // Extension of input files, including the dot
	OutputExt string   // Extension of expected-output files, including the dot
	Reserved  []string // Entry names skipped inside a suite (compiler output folders)
}

// entry is a suite-level directory entry that takes part in pairing.
type entry struct {
	suite string
	path  string
	name  string
	ext   string
}

// Locate scans every suite directory directly under root and pairs their
// files by base name.
//
// Suites are read in directory order and their entries are not descended
// into. When two suites contribute a file of the same role for the same base
// name, the later one replaces the earlier one. Entries with an unrelated
// extension still produce a record; it stays incomplete and is reported as a
// structural failure when executed.
func Locate(root string, opts Options) (*Set, error) {
	entries, err := listEntries(root, opts.Reserved)
	if err != nil {
		return nil, err
	}

	set := newSet()

	// Pass 1: every name gets a record; inputs are assigned.
	for _, e := range entries {
		r := set.ensure(e.name, e.suite)
		if e.ext == opts.InputExt {
			r.Input = e.path
			r.Suite = e.suite
		}
	}

	// Pass 2: expected outputs are assigned.
	for _, e := range entries {
		if e.ext == opts.OutputExt {
			set.records[e.name].Output = e.path
		}
	}

	return set, nil
}

// listEntries flattens root/<suite>/<entry> into traversal order.
func listEntries(root string, reserved []string) ([]entry, error) {
	suites, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite root: %w", err)
	}

	skip := make(map[string]bool, len(reserved))
	for _, name := range reserved {
		skip[name] = true
	}

	var entries []entry
	for _, suite := range suites {
		if !suite.IsDir() {
			continue
		}

		suiteDir := filepath.Join(root, suite.Name())
		files, err := os.ReadDir(suiteDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read suite %q: %w", suite.Name(), err)
		}

		for _, f := range files {
			if skip[f.Name()] {
				continue
			}
			name, ext := SplitExt(f.Name())
			entries = append(entries, entry{
				suite: suite.Name(),
				path:  filepath.Join(suiteDir, f.Name()),
				name:  name,
				ext:   ext,
			})
		}
	}

	return entries, nil
}

// SplitExt splits a file name into base name and extension. Leading dots
// belong to the base name, so ".hl" has no extension and "a.b.hl" splits
// into "a.b" and ".hl".
func SplitExt(filename string) (string, string) {
	trimmed := strings.TrimLeft(filename, ".")
	i := strings.LastIndexByte(trimmed, '.')
	if i < 0 {
		return filename, ""
	}
	cut := len(filename) - len(trimmed) + i
	return filename[:cut], filename[cut:]
}
