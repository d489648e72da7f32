package config

// Default configuration values. They reproduce the layout of the oxell
// repository: a cabal project with its fixtures under testsuite/.
const (
	DefaultCompiler        = "testsuite/bin/oxell"
	DefaultSuites          = "testsuite/tests/should-succeed"
	DefaultInputExtension  = ".hl"
	DefaultOutputExtension = ".out"
	DefaultExclusionMarker = "-- EXCLUDE"
	DefaultArtifactDir     = "dist"
)

// DefaultBuild and DefaultInstall return fresh slices so callers may modify them.
func DefaultBuild() []string {
	return []string{"cabal", "build"}
}

func DefaultInstall() []string {
	return []string{"cabal", "install", "--installdir=testsuite/bin"}
}

// DefaultReserved lists the compiler output folders skipped during discovery.
func DefaultReserved() []string {
	return []string{"dist", "build"}
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
// An explicitly empty list (build: []) is kept and disables the step.
func applyDefaults(cfg *Config) {
	if cfg.Build == nil {
		cfg.Build = DefaultBuild()
	}
	if cfg.Install == nil {
		cfg.Install = DefaultInstall()
	}
	if cfg.Compiler == "" {
		cfg.Compiler = DefaultCompiler
	}
	if cfg.Suites == "" {
		cfg.Suites = DefaultSuites
	}
	if cfg.InputExtension == "" {
		cfg.InputExtension = DefaultInputExtension
	}
	if cfg.OutputExtension == "" {
		cfg.OutputExtension = DefaultOutputExtension
	}
	if cfg.ExclusionMarker == "" {
		cfg.ExclusionMarker = DefaultExclusionMarker
	}
	if cfg.ArtifactDir == "" {
		cfg.ArtifactDir = DefaultArtifactDir
	}
	if cfg.Reserved == nil {
		cfg.Reserved = DefaultReserved()
	}
}
