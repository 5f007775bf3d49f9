package pretty

import (
	"fmt"
	"strings"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/config"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"
)

// FormatFinding formats a single finding for terminal output. Findings
// carry zero-based positions; terminal output is 1-based.
func (s *Styles) FormatFinding(finding *validate.Finding, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(finding.Path),
		finding.Range.Start.Line+1,
		finding.Range.Start.Column+1,
	)

	severity := s.FormatSeverity(finding.Severity)
	codeDisplay := s.Code.Render("(" + finding.Code + ")")

	// Main line: location  severity  message  (code)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(finding.Message),
		codeDisplay,
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, finding.Range.Start.Column+1))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
// Column is 1-based here.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with finding output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		word := "errors"
		if findingCount == 1 {
			word = "error"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", findingCount, word))
	}
	return header
}
