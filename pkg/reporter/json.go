package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Length   int           `json:"length"`
	Blocks   int           `json:"blocks"`
	Findings []JSONFinding `json:"findings"`
	Error    string        `json:"error,omitempty"`
}

// JSONFinding represents a single finding. Positions are zero-based,
// matching the editor diagnostic model.
type JSONFinding struct {
	Code        string `json:"code"`
	Source      string `json:"source"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int `json:"filesChecked"`
	FilesWithFindings int `json:"filesWithFindings"`
	FilesErrored      int `json:"filesErrored"`
	TotalFindings     int `json:"totalFindings"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     displayPath(file.Path, r.opts.WorkingDir),
			Length:   file.Length,
			Blocks:   file.Blocks,
			Findings: make([]JSONFinding, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		for _, finding := range file.Findings {
			fileResult.Findings = append(fileResult.Findings, JSONFinding{
				Code:        finding.Code,
				Source:      finding.Source,
				Severity:    string(finding.Severity),
				Message:     finding.Message,
				StartLine:   finding.Range.Start.Line,
				StartColumn: finding.Range.Start.Column,
				EndLine:     finding.Range.End.Line,
				EndColumn:   finding.Range.End.Column,
			})
			output.Summary.TotalFindings++
		}

		if len(fileResult.Findings) > 0 {
			output.Summary.FilesWithFindings++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
