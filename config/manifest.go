// Package config reads the ark.toml project manifest that supplies the
// compiler's constructor options: debug verbosity, plugin search
// directories, the output path, and a feature-flag bitmask handed to
// the compiler as its opaque options value.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents an ark.toml project configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Build   Build   `toml:"build"`

	// Dir is the directory containing the ark.toml file (set at load
	// time, not read from the file itself).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Entry   string `toml:"entry"`
}

// Build configures compilation behavior.
type Build struct {
	Output      string   `toml:"output"`
	Debug       uint     `toml:"debug"`
	PluginDirs  []string `toml:"plugin-dirs"`
	FeatureFlags uint16  `toml:"feature-flags"`
}

// Load parses an ark.toml file from dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "ark.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if m.Build.Output == "" {
		m.Build.Output = "out.arkc"
	}

	return &m, nil
}
