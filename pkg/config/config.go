// Package config loads rebuild-vendor settings from an optional YAML file
// and resolves the build environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/rebuild"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = ".rebuild-vendor.yaml"

// Config represents the rebuild-vendor configuration file.
type Config struct {
	Root         string   `yaml:"root"`                    // Vendor tree, default "vendor"
	Excludes     []string `yaml:"excludes,omitempty"`      // Default: example, test
	SourceSuffix string   `yaml:"source_suffix,omitempty"` // Default: .go
	Report       string   `yaml:"report,omitempty"`        // Run report path, empty disables
	Verbose      bool     `yaml:"verbose"`
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Root:         rebuild.DefaultRoot,
		SourceSuffix: rebuild.DefaultSourceSuffix,
	}
}

// Load reads the config at path. An empty path means DefaultFileName, which
// may be absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Keys present but empty fall back to defaults
	if cfg.Root == "" {
		cfg.Root = rebuild.DefaultRoot
	}
	if cfg.SourceSuffix == "" {
		cfg.SourceSuffix = rebuild.DefaultSourceSuffix
	}

	return cfg, nil
}

// Options builds rebuild options from the config and a resolved environment.
func (c *Config) Options(buildExecutable string, env rebuild.Env) rebuild.Options {
	return rebuild.Options{
		BuildExecutable: buildExecutable,
		Env:             env,
		Excludes:        c.Excludes,
		SourceSuffix:    c.SourceSuffix,
	}
}
