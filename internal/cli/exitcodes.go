package cli

import "github.com/liuhaoxuan15/ftl-js-validator/pkg/runner"

// Exit codes for ftljsv.
const (
	// ExitSuccess indicates successful execution with no syntax errors.
	ExitSuccess = 0

	// ExitSyntaxErrors indicates validation completed but found syntax errors.
	ExitSyntaxErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on the run result.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.Stats.FindingsTotal > 0 {
		return ExitSyntaxErrors
	}
	if result.Stats.FilesErrored > 0 {
		return ExitIOError
	}
	return ExitSuccess
}
