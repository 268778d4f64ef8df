package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	input   string
	output  string
	upcase  bool
	dryRun  bool
	version = "dev" // Set by build
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svgicons",
	Short: "svgicons - SVG to Mithril icon module generator",
	Long: `svgicons turns a directory of SVG files into Mithril icon components.

Every <name>.svg becomes a module exporting a camel-cased component that
renders the icon's markup, and an index module re-exports all of them.`,
	Version: version,
	// Default to generate command when no subcommand is specified
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateCmd.RunE(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "svgicons.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&input, "input", "i", "svgs", "Directory containing SVG files")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "src/icons", "Directory generated modules are written to")
	rootCmd.PersistentFlags().BoolVar(&upcase, "upcase", true, "Upper-case the first letter of export names")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Compile and report without writing any file")
}
