package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple" // Register the simple backend

	"github.com/liuhaoxuan15/ftl-js-validator/internal/logging"
	"github.com/liuhaoxuan15/ftl-js-validator/internal/lsp"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/jsparse"
)

type serveFlags struct {
	logFile string
}

func newServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as a language server over stdio",
		Long: `Run ftljsv as an LSP server communicating over stdin/stdout.

The server validates the script blocks of open FreeMarker templates and
publishes syntax errors as diagnostics on open, change, and save.

Point your editor's LSP client at "ftljsv serve" for .ftl files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.logFile, "log-file", "",
		"write protocol logs to a file instead of stderr")

	return cmd
}

func runServe(_ *cobra.Command, flags *serveFlags) error {
	// stdout carries the protocol, so protocol logs go to a file or stderr.
	if flags.logFile != "" {
		commonlog.Configure(1, &flags.logFile)
	} else {
		commonlog.Configure(1, nil)
	}

	logger := logging.Default()
	logger.Info("starting language server")

	server := lsp.NewServer(jsparse.NewGojaParser(), logger)
	if err := server.RunStdio(); err != nil {
		return fmt.Errorf("language server: %w", err)
	}
	return nil
}
