package runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ideamans/svgicons/pkg/config"
	"github.com/ideamans/svgicons/pkg/iconc"
	"github.com/ideamans/svgicons/pkg/logging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plusSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"><path d="M8 2v12M2 8h12"/></svg>`

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		cfg         Config
		wantInput   string
		wantOutput  string
		wantUpcase  bool
		wantIndex   string
		wantDefault bool
	}{
		{
			name:        "missing config file uses defaults",
			cfg:         Config{ConfigPath: "svgicons.yaml"},
			wantInput:   "svgs",
			wantOutput:  "src/icons",
			wantUpcase:  true,
			wantIndex:   "index.js",
			wantDefault: true,
		},
		{
			name:        "empty config path uses defaults",
			cfg:         Config{},
			wantInput:   "svgs",
			wantOutput:  "src/icons",
			wantUpcase:  true,
			wantIndex:   "index.js",
			wantDefault: true,
		},
		{
			name: "config file values",
			files: map[string]string{
				"svgicons.yaml": "input: assets/icons\noutput: web/icons\nupcase: false\nextension: mjs\n",
			},
			cfg:        Config{ConfigPath: "svgicons.yaml"},
			wantInput:  "assets/icons",
			wantOutput: "web/icons",
			wantUpcase: false,
			wantIndex:  "index.mjs",
		},
		{
			name: "flags override config file",
			files: map[string]string{
				"svgicons.json": `{"input": "assets/icons", "output": "web/icons", "upcase": false}`,
			},
			cfg: Config{
				ConfigPath: "svgicons.json",
				Input:      "svgs",
				InputSet:   true,
				Output:     "ignored",
				Upcase:     true,
				UpcaseSet:  true,
			},
			wantInput:  "svgs",
			wantOutput: "web/icons",
			wantUpcase: true,
			wantIndex:  "index.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Fs = newFs(t, tt.files)

			res, err := Resolve(tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantInput, res.Settings.Input)
			assert.Equal(t, tt.wantOutput, res.Settings.Output)
			assert.Equal(t, tt.wantUpcase, res.Settings.UpcaseEnabled())
			assert.Equal(t, tt.wantIndex, res.Settings.Index)
			assert.Equal(t, tt.wantDefault, res.UsedDefault)
		})
	}
}

func TestResolve_InvalidOverride(t *testing.T) {
	_, err := Resolve(Config{
		Fs:        afero.NewMemMapFs(),
		Output:    "svgs",
		OutputSet: true,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrSameInputOutput))
}

func TestResolve_InvalidFile(t *testing.T) {
	fsys := newFs(t, map[string]string{"svgicons.yaml": "extension: \"j-s\"\nlogging:\n  level: loud\n"})

	_, err := Resolve(Config{Fs: fsys, ConfigPath: "svgicons.yaml"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidExtension))
	assert.True(t, errors.Is(err, config.ErrInvalidLogLevel))
}

func TestRun(t *testing.T) {
	fsys := newFs(t, map[string]string{
		"svgicons.yaml":    "input: icons\noutput: dist\n",
		"icons/plus.svg":   plusSVG,
		"icons/x-mark.svg": plusSVG,
	})

	var stdout bytes.Buffer
	err := Run(context.Background(), Config{
		ConfigPath: "svgicons.yaml",
		Fs:         fsys,
		Stdout:     &stdout,
		Logger:     logging.NewTestLoggerVerbose(t),
	})
	require.NoError(t, err)

	module, err := afero.ReadFile(fsys, "dist/x-mark.js")
	require.NoError(t, err)
	assert.Contains(t, string(module), "export const XMark = (attrs = {}) => m('svg', { ...attrs, viewBox: '0 0 16 16' }")

	index, err := afero.ReadFile(fsys, "dist/index.js")
	require.NoError(t, err)
	assert.Equal(t, "\n// ICONS -------------------------------\n\n"+
		"export { Plus } from './plus'\n"+
		"export { XMark } from './x-mark'\n", string(index))

	assert.Contains(t, stdout.String(), "Generated 2 vnode icons")
	assert.Contains(t, stdout.String(), "Generated 3 files in total")
}

func TestRun_DryRun(t *testing.T) {
	fsys := newFs(t, map[string]string{"svgs/plus.svg": plusSVG})

	var stdout bytes.Buffer
	err := Run(context.Background(), Config{
		Fs:     fsys,
		Stdout: &stdout,
		Logger: logging.NewTestLogger(),
		DryRun: true,
	})
	require.NoError(t, err)

	exists, err := afero.DirExists(fsys, "src/icons")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Contains(t, stdout.String(), " plus ")
}

func TestRun_TemplateOverride(t *testing.T) {
	fsys := newFs(t, map[string]string{
		"svgicons.yaml":       "module_template: tmpl/module.tmpl\n",
		"tmpl/module.tmpl":    "export default '{{ .Name }}:{{ .ViewBox }}'\n",
		"svgs/chevron-up.svg": plusSVG,
	})

	err := Run(context.Background(), Config{
		ConfigPath: "svgicons.yaml",
		Fs:         fsys,
		Stdout:     &bytes.Buffer{},
		Logger:     logging.NewTestLogger(),
	})
	require.NoError(t, err)

	module, err := afero.ReadFile(fsys, "src/icons/chevron-up.js")
	require.NoError(t, err)
	assert.Equal(t, "export default 'ChevronUp:0 0 16 16'\n", string(module))
}

func TestRun_MalformedIcon(t *testing.T) {
	fsys := newFs(t, map[string]string{"svgs/broken.svg": "<svg><path/></svg>"})

	err := Run(context.Background(), Config{
		Fs:     fsys,
		Stdout: &bytes.Buffer{},
		Logger: logging.NewTestLogger(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, iconc.ErrMissingViewBox))
	assert.Contains(t, err.Error(), "broken.svg")
}

func TestFormatConfigError(t *testing.T) {
	tests := []struct {
		name          string
		inputError    error
		checkContains []string
	}{
		{
			name: "ValidationError with multiple errors",
			inputError: &config.ValidationError{
				Errors: []error{config.ErrInputRequired, config.ErrOutputRequired},
			},
			checkContains: []string{
				"Configuration validation failed with 2 error(s)",
				"1. input directory is required",
				"2. output directory is required",
				"Please fix the errors above",
			},
		},
		{
			name:       "single sentinel",
			inputError: config.ErrSameInputOutput,
			checkContains: []string{
				"configuration validation error",
				"input and output must be different directories",
			},
		},
		{
			name:          "parse error",
			inputError:    errors.New("failed to parse YAML config file: boom"),
			checkContains: []string{"failed to load configuration", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FormatConfigError(tt.inputError)
			require.Error(t, err)
			for _, want := range tt.checkContains {
				assert.True(t, strings.Contains(err.Error(), want), "missing %q in %q", want, err.Error())
			}
		})
	}
}
