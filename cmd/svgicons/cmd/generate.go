package cmd

import (
	"os"

	"github.com/ideamans/svgicons/cmd/svgicons/cmd/runner"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate icon modules from SVG files",
	Long: `Generate Mithril icon modules with the specified configuration.

The generator will:
- Load the configuration file (defaults are used when it does not exist)
- Create the output directory
- Write one module per SVG file, aborting on the first malformed icon
- Write the index module re-exporting every icon
- Stop before the next icon on SIGTERM/SIGINT`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// runnerConfig collects the flags shared by every command
func runnerConfig(cmd *cobra.Command) runner.Config {
	return runner.Config{
		ConfigPath: cfgFile,
		Input:      input,
		Output:     output,
		Upcase:     upcase,
		InputSet:   cmd.Flags().Changed("input"),
		OutputSet:  cmd.Flags().Changed("output"),
		UpcaseSet:  cmd.Flags().Changed("upcase"),
		DryRun:     dryRun,
		Version:    version,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := runnerConfig(cmd)
	cfg.Stdout = cmd.OutOrStdout()

	res, err := runner.Resolve(cfg)
	if err != nil {
		return runner.FormatConfigError(err)
	}

	// Setup logger with file output if configured
	logger, err := runner.NewLogger(res.Settings, os.Stderr)
	if err != nil {
		return err
	}
	if res.UsedDefault {
		logger.Warn("Config file not found, using default configuration", "path", cfg.ConfigPath)
	}

	cfg.Settings = res.Settings
	cfg.Logger = logger
	return runner.Run(cmd.Context(), cfg)
}
