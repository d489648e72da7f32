package output

import (
	"github.com/oxell/testsuite/internal/outcome"
)

// StatusColor maps a fixture status to the ANSI sequence used for it.
func StatusColor(s outcome.Status) string {
	switch s {
	case outcome.StatusPassed:
		return green
	case outcome.StatusFailed:
		return red
	case outcome.StatusExcluded:
		return yellow
	default:
		return ""
	}
}

// Result prints "[name] STATUS" and, when present, the diagnostic on the
// lines that follow. With color enabled the whole block takes the status
// color and is followed by a reset.
func (w *Writer) Result(name string, o outcome.Outcome) {
	if w.color {
		w.Print("%s", StatusColor(o.Status()))
	}

	w.Println("[%s] %s", name, o.Status())
	if d := o.Diagnostic(); d != "" {
		w.Println("%s", d)
	}

	if w.color {
		w.Print("%s", reset)
	}
}
