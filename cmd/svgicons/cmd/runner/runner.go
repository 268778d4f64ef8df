package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ideamans/svgicons/pkg/config"
	"github.com/ideamans/svgicons/pkg/iconc"
	"github.com/ideamans/svgicons/pkg/logging"
	"github.com/spf13/afero"
)

// Config represents the configuration for one generator invocation
type Config struct {
	ConfigPath string
	Input      string // From command-line flag
	Output     string // From command-line flag
	Upcase     bool   // From command-line flag
	InputSet   bool   // Whether input was explicitly set via flag
	OutputSet  bool   // Whether output was explicitly set via flag
	UpcaseSet  bool   // Whether upcase was explicitly set via flag
	DryRun     bool

	Fs       afero.Fs       // nil uses the OS filesystem
	Stdout   io.Writer      // progress report; nil uses os.Stdout
	Logger   logging.Logger // nil creates a logger from the resolved settings
	Settings *config.Config // resolved settings; nil resolves them from the fields above
	Version  string
}

// Resolution is the outcome of Resolve
type Resolution struct {
	Settings    *config.Config
	UsedDefault bool // no config file was found
}

// Resolve loads the config file and applies command-line overrides.
// Priority: Command-line flags > Config file > Default values
func Resolve(cfg Config) (Resolution, error) {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	res := Resolution{}
	if cfg.ConfigPath == "" {
		res.Settings = config.Default()
		res.UsedDefault = true
	} else {
		settings, err := config.NewFileLoaderFs(fsys, cfg.ConfigPath).Load()
		switch {
		case errors.Is(err, config.ErrConfigFileNotFound):
			res.Settings = config.Default()
			res.UsedDefault = true
		case err != nil:
			return Resolution{}, err
		default:
			res.Settings = settings
		}
	}

	if cfg.InputSet {
		res.Settings.Input = cfg.Input
	}
	if cfg.OutputSet {
		res.Settings.Output = cfg.Output
	}
	if cfg.UpcaseSet {
		upcase := cfg.Upcase
		res.Settings.Upcase = &upcase
	}

	// Flags may have introduced new problems
	if err := res.Settings.Validate(); err != nil {
		return Resolution{}, err
	}
	return res, nil
}

// NewLogger creates the CLI logger described by the logging section
func NewLogger(settings *config.Config, console io.Writer) (logging.Logger, error) {
	level := logging.ParseLevel(settings.Logging.Level)
	logger, err := logging.NewLoggerWithFile("svgicons", level, settings.Logging.ColorEnabled(), console, settings.Logging.FileRotation())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// Run generates the icon modules with the given configuration.
// SIGINT and SIGTERM stop the run before the next icon is written.
func Run(ctx context.Context, cfg Config) error {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	cfg.Fs = fsys

	settings := cfg.Settings
	usedDefault := false
	if settings == nil {
		res, err := Resolve(cfg)
		if err != nil {
			return FormatConfigError(err)
		}
		settings, usedDefault = res.Settings, res.UsedDefault
	}

	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	logger := cfg.Logger
	if logger == nil {
		var err error
		logger, err = NewLogger(settings, os.Stderr)
		if err != nil {
			return err
		}
	}

	logger.Debug("Starting svgicons", "version", cfg.Version)
	if usedDefault {
		logger.Warn("Config file not found, using default configuration", "path", cfg.ConfigPath)
	}

	renderer, err := iconc.NewRendererFromFiles(fsys, settings.ModuleTemplate, settings.IndexTemplate)
	if err != nil {
		return err
	}

	opts := iconc.Options{
		Upcase:    settings.UpcaseEnabled(),
		Extension: settings.Extension,
		IndexName: settings.Index,
		Renderer:  renderer,
	}

	generator := iconc.NewGenerator(iconc.GeneratorConfig{
		Fs:       fsys,
		Input:    settings.Input,
		Output:   settings.Output,
		Options:  opts,
		Logger:   logger,
		Reporter: iconc.NewReporter(stdout, settings.Logging.ColorEnabled()),
		DryRun:   cfg.DryRun,
	})

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := generator.Run(sigCtx); err != nil {
		return err
	}
	return nil
}

// FormatConfigError formats configuration errors with helpful messages
func FormatConfigError(err error) error {
	// Check if it's a ValidationError (multiple errors)
	var validationErr *config.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Errors) > 1 {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Configuration validation failed with %d error(s):\n\n", len(validationErr.Errors)))
		for i, e := range validationErr.Errors {
			sb.WriteString(fmt.Sprintf("  %d. %v\n", i+1, e))
		}
		sb.WriteString("\nPlease fix the errors above in your configuration file or flags.")
		return errors.New(sb.String())
	}

	if errors.Is(err, config.ErrInputRequired) ||
		errors.Is(err, config.ErrOutputRequired) ||
		errors.Is(err, config.ErrSameInputOutput) ||
		errors.Is(err, config.ErrInvalidExtension) ||
		errors.Is(err, config.ErrInvalidIndexName) ||
		errors.Is(err, config.ErrInvalidLogLevel) {
		return fmt.Errorf("configuration validation error: %v - please check your configuration file and flags", err)
	}

	return fmt.Errorf("failed to load configuration: %v", err)
}
