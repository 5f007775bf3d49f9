package pretty

import (
	"fmt"
	"strings"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 syntax errors in 2 files (12 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FindingsTotal == 0 {
		msg := s.Success.Render("No syntax errors found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		if stats.FilesErrored > 0 {
			msg += ", " + s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored))
		}
		return msg + "\n"
	}

	errorWord := "syntax errors"
	if stats.FindingsTotal == 1 {
		errorWord = "syntax error"
	}

	fileWord := wordFiles
	if stats.FilesWithFindings == 1 {
		fileWord = wordFile
	}

	parts := []string{
		s.Error.Render(fmt.Sprintf("%d %s", stats.FindingsTotal, errorWord)),
		fmt.Sprintf("in %d %s", stats.FilesWithFindings, fileWord),
		s.Dim.Render(fmt.Sprintf("(%d files checked)", stats.FilesProcessed)),
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored)))
	}

	return strings.Join(parts, " ") + "\n"
}
