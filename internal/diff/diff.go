// Package diff produces unified line diffs between expected and actual output.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// ContextLines is the number of unchanged lines shown around each hunk.
const ContextLines = 3

const noNewlineMarker = "\\ No newline at end of file\n"

// SplitLines splits s into lines, keeping each line's terminator. A final
// line without a terminator is kept as-is, so "2\n" and "2" split differently.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Unified returns the unified diff turning from into to, or "" when the two
// line sequences are identical. Lines are compared byte for byte.
func Unified(from, to []string, fromFile, toFile string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        markUnterminated(from),
		B:        markUnterminated(to),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  ContextLines,
	})
}

// Equal reports whether a and b are the same line sequence.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// markUnterminated terminates a final unterminated line and annotates it the
// way diff(1) does. Two sequences stay equal after marking exactly when they
// were equal before.
func markUnterminated(lines []string) []string {
	if len(lines) == 0 || strings.HasSuffix(lines[len(lines)-1], "\n") {
		return lines
	}
	marked := make([]string, len(lines))
	copy(marked, lines)
	marked[len(marked)-1] += "\n" + noNewlineMarker
	return marked
}
