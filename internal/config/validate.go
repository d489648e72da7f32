package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration with defaults applied. The schema covers
// field shapes; this covers relations between fields.
func Validate(cfg *Config) error {
	if err := validateCommand("build", cfg.Build); err != nil {
		return err
	}
	if err := validateCommand("install", cfg.Install); err != nil {
		return err
	}

	if cfg.InputExtension == cfg.OutputExtension {
		return &ValidationError{
			Field:   "output_extension",
			Message: fmt.Sprintf("must differ from input_extension (%q)", cfg.InputExtension),
		}
	}
	for _, field := range []struct{ name, value string }{
		{"input_extension", cfg.InputExtension},
		{"output_extension", cfg.OutputExtension},
	} {
		if !strings.HasPrefix(field.value, ".") || len(field.value) < 2 {
			return &ValidationError{Field: field.name, Message: "must start with '.' followed by at least one character"}
		}
	}

	if strings.ContainsAny(cfg.ArtifactDir, `/\`) {
		return &ValidationError{Field: "artifact_dir", Message: "must be a single directory name"}
	}
	if cfg.ArtifactDir == "." || cfg.ArtifactDir == ".." {
		return &ValidationError{Field: "artifact_dir", Message: "must name a sub-directory of the input's directory"}
	}

	for i, name := range cfg.Reserved {
		if name == "" {
			return &ValidationError{Field: fmt.Sprintf("reserved[%d]", i), Message: "must not be empty"}
		}
	}

	return nil
}

// validateCommand accepts an empty command (step disabled) or one whose
// program name is set.
func validateCommand(field string, argv []string) error {
	if len(argv) > 0 && strings.TrimSpace(argv[0]) == "" {
		return &ValidationError{Field: field + "[0]", Message: "program name must not be empty"}
	}
	return nil
}
