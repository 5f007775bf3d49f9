package configloader

import (
	"fmt"
	"strings"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/config"
)

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// ValidationResult holds errors and warnings from configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid returns true if no errors were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for invalid values.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	switch cfg.Format {
	case "", config.FormatText, config.FormatJSON, config.FormatSARIF:
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unknown format %q (valid: text, json, sarif)", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Message: fmt.Sprintf("must be >= 0, got %d", cfg.Jobs),
		})
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "extensions",
				Message: fmt.Sprintf("extension %q has no leading dot and will never match", ext),
			})
		}
	}

	return result
}
