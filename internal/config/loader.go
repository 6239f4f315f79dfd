package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFileName is the standard configuration file name.
const DefaultConfigFileName = "households.toml"

// LoadError wraps an error encountered while loading configuration from a
// specific path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and validates a TOML configuration file at path. Missing
// fields keep the values already present in Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parsing TOML: %w", err)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("validating config: %w", err)}
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating its parent directory if
// needed.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("# households simulation configuration\n\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}
