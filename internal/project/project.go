package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/oxell/testsuite/internal/config"
)

// Project is a loaded harness configuration anchored at a root directory.
type Project struct {
	Root       string
	Config     *config.Config
	ConfigFile string // Empty when running on defaults
}

// Load finds the project containing startDir. Without a .run-tests.yaml
// anywhere above startDir, startDir itself becomes the root and the
// default configuration applies.
func Load(startDir string) (*Project, error) {
	root, err := FindRootFrom(startDir)
	if errors.Is(err, ErrNoProjectRoot) {
		abs, absErr := filepath.Abs(startDir)
		if absErr != nil {
			return nil, absErr
		}
		return &Project{Root: abs, Config: config.Default()}, nil
	}
	if err != nil {
		return nil, err
	}
	return LoadFrom(root)
}

// LoadFrom loads the configuration file in root.
func LoadFrom(root string) (*Project, error) {
	configPath := filepath.Join(root, ConfigFileName)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &Project{
		Root:       root,
		Config:     cfg,
		ConfigFile: configPath,
	}, nil
}

// Path resolves p against the project root unless it is already absolute.
func (p *Project) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(p.Root, rel)
}

// CompilerPath returns the absolute path of the compiler executable.
func (p *Project) CompilerPath() string {
	return p.Path(p.Config.Compiler)
}

// SuitesDir returns the absolute path of the suite root directory.
func (p *Project) SuitesDir() string {
	return p.Path(p.Config.Suites)
}
