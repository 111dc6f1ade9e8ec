package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds vcpkg-locate file configuration. Every field is optional;
// command-line flags take precedence over the file.
type Config struct {
	VcpkgRoot    string `yaml:"vcpkg_root,omitempty" toml:"vcpkg_root,omitempty"`
	InstalledDir string `yaml:"installed_dir,omitempty" toml:"installed_dir,omitempty"`
	Triplet      string `yaml:"triplet,omitempty" toml:"triplet,omitempty"`
	HostTriplet  string `yaml:"host_triplet,omitempty" toml:"host_triplet,omitempty"`
	Target       string `yaml:"target,omitempty" toml:"target,omitempty"`
	Host         string `yaml:"host,omitempty" toml:"host,omitempty"`
	StaticCRT    *bool  `yaml:"static_crt,omitempty" toml:"static_crt,omitempty"`
	Format       string `yaml:"format,omitempty" toml:"format,omitempty"`
	Debug        bool   `yaml:"debug" toml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Format: "cargo",
		Debug:  false,
	}
}

// DefaultPath returns $HOME/.config/vcpkg-locate/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vcpkg-locate", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults. Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
