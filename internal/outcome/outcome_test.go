package outcome

import "testing"

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		o          Outcome
		status     Status
		label      string
		diagnostic string
	}{
		{"passed", Passed(), StatusPassed, "PASSED", ""},
		{"failed", Failed("missing input file"), StatusFailed, "FAILED", "missing input file"},
		{"excluded", Excluded(), StatusExcluded, "EXCLUDED", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.o.Status() != tt.status {
				t.Errorf("Status() = %v, want %v", tt.o.Status(), tt.status)
			}
			if got := tt.o.Status().String(); got != tt.label {
				t.Errorf("String() = %q, want %q", got, tt.label)
			}
			if got := tt.o.Diagnostic(); got != tt.diagnostic {
				t.Errorf("Diagnostic() = %q, want %q", got, tt.diagnostic)
			}
		})
	}
}

func TestStatus_UnknownString(t *testing.T) {
	if got := Status(42).String(); got != "UNKNOWN" {
		t.Errorf("String() = %q, want %q", got, "UNKNOWN")
	}
}
