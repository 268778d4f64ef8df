package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flag values persist on the package-level command between runs
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "svgs")
	output := filepath.Join(dir, "src", "icons")
	writeFile(t, filepath.Join(input, "home.svg"), `<svg viewBox="0 0 24 24"><path d="M3 12l9-9 9 9"/></svg>`)

	out, err := execute(t, "generate",
		"--config", filepath.Join(dir, "missing.yaml"),
		"--input", input,
		"--output", output,
		"--upcase=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Creating Icons")

	module, err := os.ReadFile(filepath.Join(output, "home.js"))
	require.NoError(t, err)
	assert.Contains(t, string(module), "export const home = (attrs = {})")

	_, err = os.Stat(filepath.Join(output, "index.js"))
	assert.NoError(t, err)
}

func TestTestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "svgicons.yaml")
	writeFile(t, configPath, "input: ${SVGICONS_TEST_INPUT:-svgs}\noutput: ${SVGICONS_TEST_OUTPUT}\nextension: mjs\n")
	t.Setenv("SVGICONS_TEST_OUTPUT", "")

	out, err := execute(t, "test-config", "--config", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Configuration file loaded successfully")
	assert.Contains(t, out, "! Environment variable SVGICONS_TEST_OUTPUT is not set")
	assert.Contains(t, out, "  Output: src/icons")
	assert.Contains(t, out, "  Modules: *.mjs")
	assert.Contains(t, out, "  Index: index.mjs")
	assert.Contains(t, out, "✓ Configuration is valid and ready to use")
}

func TestTestConfigCommand_Invalid(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "svgicons.json")
	writeFile(t, configPath, `{"input": "same", "output": "same"}`)

	_, err := execute(t, "test-config", "--config", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input and output must be different directories")
}
