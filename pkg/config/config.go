package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ideamans/svgicons/pkg/logging"
)

// Config represents the generator configuration
type Config struct {
	// Input is the directory containing SVG files (default: "svgs")
	Input string `yaml:"input" json:"input" validate:"required"`
	// Output is the directory generated modules are written to (default: "src/icons")
	Output string `yaml:"output" json:"output" validate:"required"`
	// Upcase upper-cases the first letter of export names (default: true)
	Upcase *bool `yaml:"upcase" json:"upcase"`
	// Extension of generated modules, without the dot (default: "js")
	Extension string `yaml:"extension" json:"extension" validate:"required,alphanum"`
	// Index is the aggregate filename (default: "index.js")
	Index string `yaml:"index" json:"index" validate:"required,excludesall=/\\"`

	// Optional text/template files replacing the embedded templates
	ModuleTemplate string `yaml:"module_template,omitempty" json:"module_template,omitempty"`
	IndexTemplate  string `yaml:"index_template,omitempty" json:"index_template,omitempty"`

	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string             `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Color *bool              `yaml:"color" json:"color"`
	File  *FileLoggingConfig `yaml:"file,omitempty" json:"file,omitempty"` // Optional file logging configuration
}

// FileLoggingConfig contains file logging and rotation settings.
// Zero rotation values fall back to the logger defaults.
type FileLoggingConfig struct {
	Path       string `yaml:"path" json:"path" validate:"required"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" json:"max_size_mb,omitempty" validate:"min=0"`
	MaxBackups int    `yaml:"max_backups,omitempty" json:"max_backups,omitempty" validate:"min=0"`
	MaxAge     int    `yaml:"max_age,omitempty" json:"max_age,omitempty" validate:"min=0"`
	Compress   bool   `yaml:"compress,omitempty" json:"compress,omitempty"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// UpcaseEnabled reports whether export names get an upper-case first letter
func (c *Config) UpcaseEnabled() bool {
	return c.Upcase == nil || *c.Upcase
}

// ColorEnabled reports whether console output may use ANSI colors
func (l LoggingConfig) ColorEnabled() bool {
	return l.Color == nil || *l.Color
}

// FileRotation converts the file section into the logger's rotation settings.
// Returns nil when file logging is not configured.
func (l LoggingConfig) FileRotation() *logging.FileRotationConfig {
	if l.File == nil || l.File.Path == "" {
		return nil
	}
	return &logging.FileRotationConfig{
		Path:       l.File.Path,
		MaxSizeMB:  l.File.MaxSizeMB,
		MaxBackups: l.File.MaxBackups,
		MaxAge:     l.File.MaxAge,
		Compress:   l.File.Compress,
	}
}

var validate = validator.New()

// Validate checks if the configuration is valid
// Returns a ValidationError containing all validation errors found
func (c *Config) Validate() error {
	verr := NewValidationError()

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		for _, fe := range fieldErrs {
			verr.Add(fieldError(fe))
		}
	}

	if c.Input != "" && c.Output != "" && filepath.Clean(c.Input) == filepath.Clean(c.Output) {
		verr.Add(ErrSameInputOutput)
	}

	return verr.ErrorOrNil()
}

// fieldError maps a validator failure onto the package's sentinel errors
func fieldError(fe validator.FieldError) error {
	switch fe.StructNamespace() {
	case "Config.Input":
		return ErrInputRequired
	case "Config.Output":
		return ErrOutputRequired
	case "Config.Extension":
		return fmt.Errorf("%w: %q", ErrInvalidExtension, fe.Value())
	case "Config.Index":
		return fmt.Errorf("%w: %q", ErrInvalidIndexName, fe.Value())
	case "Config.Logging.Level":
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, fe.Value())
	}
	return fmt.Errorf("%s: failed %q validation", fe.Namespace(), fe.Tag())
}
