// Package config defines core configuration types for ftljsv.
// These are pure data structures with no dependency on how configuration
// files are discovered or loaded.
package config

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatSARIF OutputFormat = "sarif"
)

// Config is the root configuration structure for ftljsv.
type Config struct {
	// Extensions is the set of file extensions (lowercase, with leading
	// dot) treated as FreeMarker templates.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// Trace enables the line-oriented validation trace on stderr.
	Trace bool `yaml:"trace"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`
}

// DefaultExtensions returns the template extensions recognized by default.
func DefaultExtensions() []string {
	return []string{".ftl", ".ftlh", ".ftlx"}
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: DefaultExtensions(),
		Format:     FormatText,
	}
}
