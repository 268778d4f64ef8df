package iconc

import (
	"context"
	"fmt"
	"io"

	"github.com/ideamans/svgicons/pkg/logging"
	"github.com/spf13/afero"
)

// GeneratorConfig contains the settings of one generator run
type GeneratorConfig struct {
	Fs       afero.Fs // nil uses the OS filesystem
	Input    string   // directory containing SVG files
	Output   string   // directory generated files are written to
	Options  Options
	Logger   logging.Logger // nil discards log output
	Reporter *Reporter      // nil discards console output
	DryRun   bool           // compile and report without writing anything
}

// Generator reads an icon pack and writes one module per icon plus the index
type Generator struct {
	fs       afero.Fs
	input    string
	output   string
	opts     Options
	logger   logging.Logger
	reporter *Reporter
	dryRun   bool
}

// NewGenerator creates a Generator
func NewGenerator(cfg GeneratorConfig) *Generator {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewSimpleLoggerWithWriter("svgicons", logging.LevelFatal, false, io.Discard)
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = NewReporter(io.Discard, false)
	}

	return &Generator{
		fs:       fsys,
		input:    cfg.Input,
		output:   cfg.Output,
		opts:     cfg.Options,
		logger:   logger.WithModule("iconc"),
		reporter: reporter,
		dryRun:   cfg.DryRun,
	}
}

// Run processes every icon in enumeration order, writing each module as soon
// as it is compiled, then writes the index.
// The first error aborts the run; modules already written are left in place.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	compiler, err := NewCompiler(g.opts)
	if err != nil {
		return nil, err
	}

	if !g.dryRun {
		if err := EnsureOutputDir(g.fs, g.output); err != nil {
			return nil, err
		}
	}

	names, err := ListSVGFiles(g.fs, g.input)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Found icons", "input", g.input, "count", len(names))

	result := &Result{Modules: make([]GeneratedModule, 0, len(names))}
	g.reporter.BeginIcons(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation interrupted before %s: %w", name, err)
		}

		src, err := ReadSource(g.fs, g.input, name)
		if err != nil {
			return nil, err
		}

		module, err := compiler.Add(src)
		if err != nil {
			g.logger.Error("Icon generation failed", "file", name, "error", err)
			return nil, err
		}

		if err := g.write(module.GeneratedFile); err != nil {
			return nil, err
		}
		result.Modules = append(result.Modules, module)

		g.logger.Debug("Generated icon", "file", name, "name", module.Identifier, "module", module.Name)
		g.reporter.Icon(name, module.BaseName, module.Identifier)
	}

	g.reporter.IconsDone(len(result.Modules))

	result.Index, err = compiler.Index()
	if err != nil {
		return nil, err
	}

	g.reporter.BeginFiles()
	if err := g.write(result.Index); err != nil {
		return nil, err
	}
	g.reporter.File(result.Index.Name)

	total := len(result.Files())
	g.reporter.Done(total)

	if g.dryRun {
		g.logger.Info("Dry run complete, nothing written", "icons", len(result.Modules), "files", total)
	} else {
		g.logger.Info("Icons generated", "icons", len(result.Modules), "files", total, "output", g.output)
	}
	return result, nil
}

func (g *Generator) write(f GeneratedFile) error {
	if g.dryRun {
		return nil
	}
	return WriteFile(g.fs, g.output, f)
}
