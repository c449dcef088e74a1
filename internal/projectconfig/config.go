// Package projectconfig provides the loader for .wcr.yaml defaults
// files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the defaults file discovered near the working
// directory.
const ConfigFileName = ".wcr.yaml"

// DefaultsConfig holds settings applied when the command line leaves
// them unspecified.
type DefaultsConfig struct {
	// Counts lists the counts shown when no count flag is given.
	// Valid names: lines, words, bytes, chars, max-line-length.
	Counts []string `yaml:"counts,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .wcr.yaml.
type ProjectConfig struct {
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
}

// New returns an empty ProjectConfig, equivalent to having no defaults
// file at all.
func New() *ProjectConfig {
	return &ProjectConfig{}
}

// Load finds .wcr.yaml by walking up from startDir (max 10 levels) and
// unmarshals it. If no file is found, returns an empty config with a
// nil error. Real I/O errors (e.g. permission denied) are returned to
// the caller.
func Load(startDir string) (*ProjectConfig, error) {
	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil // no file found
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

// findConfigFile walks up from dir looking for the defaults file (max
// 10 levels). Returns os.ErrNotExist if none is found; propagates real
// I/O errors instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to an absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}
