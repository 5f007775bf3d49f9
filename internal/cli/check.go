package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/liuhaoxuan15/ftl-js-validator/internal/configloader"
	"github.com/liuhaoxuan15/ftl-js-validator/internal/logging"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/config"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/jsparse"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/reporter"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/runner"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"
)

// ErrSyntaxErrorsFound is returned when validation finds syntax errors.
var ErrSyntaxErrorsFound = errors.New("syntax errors found")

// stdinPath is the pseudo-path that selects stdin input.
const stdinPath = "-"

type checkFlags struct {
	format     string
	ignore     []string
	extensions []string
	jobs       int
	trace      bool
	noContext  bool
	compact    bool
	watch      bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate embedded JavaScript in template files",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"template extensions to check (default .ftl, .ftlh, .ftlx)")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "print the validation trace to stderr")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "revalidate on file changes")

	return cmd
}

const checkLongDescription = `Validate the JavaScript embedded in FreeMarker template files.

By default, checks all .ftl, .ftlh, and .ftlx files in the current
directory and subdirectories. Specify paths to check specific files or
directories, or pass "-" to read a single template from stdin.

Examples:
  ftljsv check                    # Check current directory
  ftljsv check src/views/         # Check a directory
  ftljsv check page.ftl           # Check a single file
  ftljsv check --watch src/       # Revalidate as files change
  ftljsv check --format json      # Output as JSON for CI
  ftljsv check --trace            # Show per-block validation trace
  cat page.ftl | ftljsv check -   # Read template from stdin`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliCfg := &config.Config{
		Format:     config.OutputFormat(flags.format),
		Jobs:       flags.jobs,
		Ignore:     flags.ignore,
		Extensions: flags.extensions,
		Trace:      flags.trace,
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	parser := jsparse.NewGojaParser()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	reporterOpts := reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: format == reporter.FormatText,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	}

	// Stdin mode validates a single unnamed document and skips discovery.
	if len(args) == 1 && args[0] == stdinPath {
		return runCheckStdin(ctx, cmd, parser, cfg, reporterOpts)
	}

	run := runner.New(parser)
	if cfg.Trace {
		run.Trace = &validate.WriterSink{W: cmd.ErrOrStderr()}
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}

	if flags.watch {
		return runCheckWatch(ctx, cmd, run, runOpts, reporterOpts)
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := run.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	rep, err := reporter.New(reporterOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrSyntaxErrorsFound
	}
	return nil
}

// runCheckStdin validates a single template read from stdin.
func runCheckStdin(
	ctx context.Context,
	cmd *cobra.Command,
	parser jsparse.Parser,
	cfg *config.Config,
	reporterOpts reporter.Options,
) error {
	stdin := cmd.InOrStdin()

	// Refuse to sit waiting on an interactive terminal.
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.New("stdin is a terminal; pipe a template or pass file paths")
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	validator := validate.New(parser)
	if cfg.Trace {
		validator.Trace = &validate.WriterSink{W: cmd.ErrOrStderr()}
	}

	doc := textdoc.New("<stdin>", content)
	findings := validator.Validate(doc)

	// Wrap the single document in a result so every reporter works.
	result := &runner.Result{
		Files: []runner.FileOutcome{{
			Path:     "<stdin>",
			Length:   doc.Len(),
			Findings: findings,
		}},
	}
	result.Stats.FilesDiscovered = 1
	result.Stats.FilesProcessed = 1
	result.Stats.FindingsTotal = len(findings)
	if len(findings) > 0 {
		result.Stats.FilesWithFindings = 1
	}

	// Stdin content is not on disk, so line context cannot be re-read.
	reporterOpts.ShowContext = false
	reporterOpts.WorkingDir = ""

	rep, err := reporter.New(reporterOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if len(findings) > 0 {
		return ErrSyntaxErrorsFound
	}
	return nil
}
