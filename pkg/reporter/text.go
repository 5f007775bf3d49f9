package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/liuhaoxuan15/ftl-js-validator/internal/ui/pretty"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/runner"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath(file.Path, r.opts.WorkingDir)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if len(file.Findings) == 0 {
			continue
		}

		path := displayPath(file.Path, r.opts.WorkingDir)
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Findings)))

		var doc *textdoc.Document
		if r.opts.ShowContext {
			doc = loadDocument(file.Path)
		}

		for _, finding := range file.Findings {
			finding.Path = path

			var sourceLine string
			if doc != nil {
				sourceLine = doc.LineText(finding.Range.Start.Line)
			}

			fmt.Fprint(r.bw, r.styles.FormatFinding(&finding, r.opts.ShowContext, sourceLine))
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// loadDocument re-reads a file for source context. Context display is
// best effort; a read failure just drops the source lines.
func loadDocument(path string) *textdoc.Document {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return textdoc.New(path, content)
}
