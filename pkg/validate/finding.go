// Package validate orchestrates script-block extraction, parsing, and
// offset-to-position mapping, producing findings ready for display as
// editor diagnostics.
package validate

import (
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/config"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
)

// SourceTag identifies this tool in findings and editor diagnostics.
const SourceTag = "FTL JS Validator"

// CodeSyntaxError is the fixed diagnostic code for script syntax errors.
const CodeSyntaxError = "js-syntax-error"

// Range is a half-open span between two zero-based positions.
type Range struct {
	Start textdoc.Position
	End   textdoc.Position
}

// Finding describes one detected syntax problem in a document.
type Finding struct {
	// Path is the document the finding belongs to.
	Path string

	// Range spans the full width of the offending line, trading column
	// precision for visibility.
	Range Range

	// Severity is always SeverityError for syntax failures.
	Severity config.Severity

	// Message is "JavaScript syntax error: <parser message>".
	Message string

	// Source is the fixed SourceTag.
	Source string

	// Code is the fixed CodeSyntaxError.
	Code string
}
