// Package outcome defines the classified result of running one fixture.
package outcome

// Status is the closed set of fixture results.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusExcluded
)

// String returns the label printed by the reporter.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASSED"
	case StatusFailed:
		return "FAILED"
	case StatusExcluded:
		return "EXCLUDED"
	default:
		return "UNKNOWN"
	}
}

// Outcome is produced once per fixture and never modified. Only Failed
// outcomes carry a diagnostic. Construct it with Passed, Failed or Excluded.
type Outcome struct {
	status     Status
	diagnostic string
}

// Passed reports a fixture whose output matched.
func Passed() Outcome {
	return Outcome{status: StatusPassed}
}

// Failed reports a fixture that could not be run or did not match.
func Failed(diagnostic string) Outcome {
	return Outcome{status: StatusFailed, diagnostic: diagnostic}
}

// Excluded reports a fixture that was skipped on purpose.
func Excluded() Outcome {
	return Outcome{status: StatusExcluded}
}

func (o Outcome) Status() Status     { return o.status }
func (o Outcome) Diagnostic() string { return o.diagnostic }
