package validate

import (
	"fmt"
	"strings"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/config"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/extract"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/jsparse"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
)

// traceBanner separates documents in the validation trace.
const traceBanner = "================================================================"

// Validator composes block extraction, parsing, and position mapping.
type Validator struct {
	// Parser is the pluggable script parser capability.
	Parser jsparse.Parser

	// Trace receives the line-oriented validation trace. Nil disables
	// tracing.
	Trace TraceSink
}

// New creates a Validator backed by the given parser.
func New(parser jsparse.Parser) *Validator {
	return &Validator{Parser: parser}
}

// Validate extracts every non-empty script block from doc, parses each
// once, and returns one finding per failed block in extraction order.
// Valid and whitespace-only blocks produce no finding. A block failure
// never aborts the remaining blocks.
func (v *Validator) Validate(doc *textdoc.Document) []Finding {
	v.trace(traceBanner)
	v.tracef("%s: %s (%d chars)", SourceTag, doc.Path, doc.Len())

	blocks := extract.ScriptBlocks(string(doc.Content))

	var findings []Finding
	for i, block := range blocks {
		failure := v.Parser.Parse(block.Content)
		if failure == nil {
			v.tracef("block %d: passed", i+1)
			continue
		}

		finding := v.buildFinding(doc, block, failure)
		findings = append(findings, finding)

		pos := doc.PositionAt(block.Offset + clampOffset(failure.Offset, len(block.Content)))
		v.tracef("block %d: failed", i+1)
		v.tracef("  %s:%d:%d", doc.Path, pos.Line+1, pos.Column+1)
		v.tracef("  %s", finding.Message)
		v.tracef("  %s", strings.TrimSpace(doc.LineText(pos.Line)))
	}

	return findings
}

// buildFinding maps a parser failure back into document coordinates.
// The flagged range spans the full width of the offending line.
func (v *Validator) buildFinding(doc *textdoc.Document, block extract.Block, failure *jsparse.Failure) Finding {
	absolute := block.Offset + clampOffset(failure.Offset, len(block.Content))
	pos := doc.PositionAt(absolute)
	lineWidth := len(doc.LineText(pos.Line))

	return Finding{
		Path: doc.Path,
		Range: Range{
			Start: textdoc.Position{Line: pos.Line, Column: 0},
			End:   textdoc.Position{Line: pos.Line, Column: lineWidth},
		},
		Severity: config.SeverityError,
		Message:  "JavaScript syntax error: " + failure.Message,
		Source:   SourceTag,
		Code:     CodeSyntaxError,
	}
}

// clampOffset keeps a parser-reported offset inside the block it refers
// to, defaulting to the block start when degenerate. One bad position
// from the parser must not prevent reporting.
func clampOffset(offset, blockLen int) int {
	if offset < 0 || offset > blockLen {
		return 0
	}
	return offset
}

func (v *Validator) trace(line string) {
	if v.Trace != nil {
		v.Trace.AppendLine(line)
	}
}

func (v *Validator) tracef(format string, args ...any) {
	if v.Trace != nil {
		v.Trace.AppendLine(fmt.Sprintf(format, args...))
	}
}
