package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "svgs", cfg.Input)
	assert.Equal(t, "src/icons", cfg.Output)
	assert.Equal(t, "js", cfg.Extension)
	assert.Equal(t, "index.js", cfg.Index)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.UpcaseEnabled(), "upcase defaults to true")
	assert.True(t, cfg.Logging.ColorEnabled(), "color defaults to true")
	assert.Nil(t, cfg.Logging.FileRotation())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_UpcaseEnabled(t *testing.T) {
	cfg := Default()
	cfg.Upcase = boolPtr(false)
	assert.False(t, cfg.UpcaseEnabled())

	cfg.Upcase = boolPtr(true)
	assert.True(t, cfg.UpcaseEnabled())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing input",
			mutate:  func(c *Config) { c.Input = "" },
			wantErr: []error{ErrInputRequired},
		},
		{
			name:    "missing output",
			mutate:  func(c *Config) { c.Output = "" },
			wantErr: []error{ErrOutputRequired},
		},
		{
			name:    "same input and output",
			mutate:  func(c *Config) { c.Input = "icons/"; c.Output = "./icons" },
			wantErr: []error{ErrSameInputOutput},
		},
		{
			name:    "extension with dot",
			mutate:  func(c *Config) { c.Extension = ".js" },
			wantErr: []error{ErrInvalidExtension},
		},
		{
			name:    "index with separator",
			mutate:  func(c *Config) { c.Index = "lib/index.js" },
			wantErr: []error{ErrInvalidIndexName},
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: []error{ErrInvalidLogLevel},
		},
		{
			name: "multiple problems are all reported",
			mutate: func(c *Config) {
				c.Input = ""
				c.Logging.Level = "loud"
			},
			wantErr: []error{ErrInputRequired, ErrInvalidLogLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.True(t, errors.Is(err, want), "expected %v in %v", want, err)
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Len(t, verr.Errors, len(tt.wantErr))
		})
	}
}

func TestConfig_Validate_FileLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.File = &FileLoggingConfig{MaxSizeMB: -1}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Path")
	assert.Contains(t, err.Error(), "MaxSizeMB")
}

func TestLoggingConfig_FileRotation(t *testing.T) {
	l := LoggingConfig{File: &FileLoggingConfig{Path: "gen.log", MaxBackups: 5, Compress: true}}

	rot := l.FileRotation()
	require.NotNil(t, rot)
	assert.Equal(t, "gen.log", rot.Path)
	assert.Equal(t, 5, rot.MaxBackups)
	assert.True(t, rot.Compress)

	assert.Nil(t, LoggingConfig{File: &FileLoggingConfig{}}.FileRotation())
}

func TestValidationError_Error(t *testing.T) {
	verr := NewValidationError()
	assert.NoError(t, verr.ErrorOrNil())
	assert.Equal(t, "", verr.Error())

	verr.Add(nil)
	assert.False(t, verr.HasErrors())

	verr.Add(ErrInputRequired)
	assert.Equal(t, ErrInputRequired.Error(), verr.Error())

	verr.Add(ErrOutputRequired)
	msg := verr.Error()
	assert.True(t, strings.HasPrefix(msg, "found 2 validation errors:"))
	assert.Contains(t, msg, "1. "+ErrInputRequired.Error())
	assert.Contains(t, msg, "2. "+ErrOutputRequired.Error())
}
