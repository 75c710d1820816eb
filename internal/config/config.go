package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up in the working
// directory.
const DefaultFile = ".openenum.yaml"

// Config holds the settings of a generator run.
type Config struct {
	// Version of the config format.
	Version string `yaml:"version"`
	// Packages are the package patterns scanned for definitions.
	Packages []string `yaml:"packages"`
	// Suffix is appended to the lowercased enum name to form the output
	// filename.
	Suffix string `yaml:"suffix"`
	// Tag is the build constraint guarding definition files.
	Tag string `yaml:"tag"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Version:  "1",
		Packages: []string{"./..."},
		Suffix:   "_openenum.go",
		Tag:      "openenumdef",
	}
}

// Load loads the config file from dir, falling back to defaults when no
// file exists.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, DefaultFile))
	if errors.Is(err, fs.ErrNotExist) {
		def := Default()

		return &def, nil
	}

	return cfg, err
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Version == "" {
		cfg.Version = def.Version
	}

	if len(cfg.Packages) == 0 {
		cfg.Packages = def.Packages
	}

	if cfg.Suffix == "" {
		cfg.Suffix = def.Suffix
	}

	if cfg.Tag == "" {
		cfg.Tag = def.Tag
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
