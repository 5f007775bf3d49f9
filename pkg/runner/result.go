package runner

import "github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"

// FileOutcome holds the validation outcome for a single file.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Document length in bytes (0 if the file could not be read).
	Length int

	// Blocks is the number of non-empty script blocks found.
	Blocks int

	// Findings contains the syntax errors located in this file.
	Findings []validate.Finding

	// TraceLines holds the per-file validation trace, collected so the
	// runner can emit a deterministic combined trace.
	TraceLines []string

	// Error is set if the file could not be read or validated.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully validated.
	FilesProcessed int

	// FilesErrored is the number of files that could not be processed.
	FilesErrored int

	// FilesWithFindings is the number of files with at least one finding.
	FilesWithFindings int

	// FindingsTotal is the total number of findings across all files.
	FindingsTotal int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFindings reports whether any syntax errors were found.
func (r *Result) HasFindings() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.FindingsTotal += len(outcome.Findings)
	if len(outcome.Findings) > 0 {
		r.Stats.FilesWithFindings++
	}
}
