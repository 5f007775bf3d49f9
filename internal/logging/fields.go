// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig     = "config"
	FieldFormat     = "format"
	FieldExtensions = "extensions"
	FieldJobs       = "jobs"
	FieldTrace      = "trace"

	// Document fields.
	FieldURI      = "uri"
	FieldLanguage = "language"
	FieldLength   = "length"
	FieldBlocks   = "blocks"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesProcessed    = "files_processed"
	FieldFilesWithFindings = "files_with_findings"
	FieldFindingsTotal     = "findings_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
