// Package cli provides the Cobra command structure for ftljsv.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/liuhaoxuan15/ftl-js-validator/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root ftljsv command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "ftljsv",
		Short: "Validate JavaScript embedded in FreeMarker templates",
		Long: `ftljsv validates the JavaScript inside <script> blocks of FreeMarker
templates (.ftl, .ftlh, .ftlx).

Each script block is extracted and parsed as JavaScript; syntax errors are
reported at their position in the template, not in the extracted snippet.
Run it as a one-shot checker in CI, in watch mode during development, or
as a language server for editor diagnostics.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
