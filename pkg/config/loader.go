package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	sharedconfig "github.com/ideamans/svgicons/pkg/shared/config"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Loader is an interface for loading configuration
type Loader interface {
	Load() (*Config, error)
}

// FileLoader loads configuration from a YAML or JSON file
type FileLoader struct {
	fs   afero.Fs
	path string
}

// NewFileLoader creates a FileLoader reading from the OS filesystem
func NewFileLoader(path string) *FileLoader {
	return NewFileLoaderFs(afero.NewOsFs(), path)
}

// NewFileLoaderFs creates a FileLoader reading from the given filesystem
func NewFileLoaderFs(fsys afero.Fs, path string) *FileLoader {
	return &FileLoader{fs: fsys, path: path}
}

// Path returns the file the loader reads
func (l *FileLoader) Path() string {
	return l.path
}

// Load reads and parses the configuration file
// Supports both YAML (.yaml, .yml) and JSON (.json) formats
// Format is automatically detected from file extension
// Environment variables in the format ${VAR} or ${VAR:-default} are expanded
func (l *FileLoader) Load() (*Config, error) {
	data, err := afero.ReadFile(l.fs, l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(sharedconfig.ExpandEnvBytes(data), filepath.Ext(l.path))
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Parse decodes config data in the format implied by ext and applies defaults.
// It does not validate.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .json)", ext)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults sets default values for optional fields
func applyDefaults(cfg *Config) {
	if cfg.Input == "" {
		cfg.Input = "svgs"
	}

	if cfg.Output == "" {
		cfg.Output = "src/icons"
	}

	if cfg.Extension == "" {
		cfg.Extension = "js"
	}
	cfg.Extension = strings.TrimPrefix(cfg.Extension, ".")

	if cfg.Index == "" {
		cfg.Index = "index." + cfg.Extension
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
