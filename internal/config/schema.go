// Package config provides loading and validation for .run-tests.yaml.
package config

// Config represents the complete .run-tests.yaml configuration.
//
// Paths are relative to the project root unless absolute.
type Config struct {
	Build           []string `yaml:"build,omitempty" json:"build,omitempty"`                       // Toolchain build command
	Install         []string `yaml:"install,omitempty" json:"install,omitempty"`                   // Command that installs Compiler
	Compiler        string   `yaml:"compiler,omitempty" json:"compiler,omitempty"`                 // Compiler executable
	Suites          string   `yaml:"suites,omitempty" json:"suites,omitempty"`                     // Root holding one directory per suite
	InputExtension  string   `yaml:"input_extension,omitempty" json:"input_extension,omitempty"`   // Fixture input extension, with dot
	OutputExtension string   `yaml:"output_extension,omitempty" json:"output_extension,omitempty"` // Expected-output extension, with dot
	ExclusionMarker string   `yaml:"exclusion_marker,omitempty" json:"exclusion_marker,omitempty"` // First-line prefix that skips a fixture
	ArtifactDir     string   `yaml:"artifact_dir,omitempty" json:"artifact_dir,omitempty"`         // Compiler output folder next to each input
	Reserved        []string `yaml:"reserved,omitempty" json:"reserved,omitempty"`                 // Suite entries ignored by discovery
}
