package lsp

import (
	"net/url"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/config"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"
)

// toDiagnostics converts findings into LSP diagnostics. Both sides use
// zero-based positions, so coordinates pass through unchanged.
func toDiagnostics(findings []validate.Finding) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(findings))

	for _, finding := range findings {
		severity := toSeverity(finding.Severity)
		source := finding.Source
		code := protocol.IntegerOrString{Value: finding.Code}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      protocol.UInteger(finding.Range.Start.Line),
					Character: protocol.UInteger(finding.Range.Start.Column),
				},
				End: protocol.Position{
					Line:      protocol.UInteger(finding.Range.End.Line),
					Character: protocol.UInteger(finding.Range.End.Column),
				},
			},
			Severity: &severity,
			Code:     &code,
			Source:   &source,
			Message:  finding.Message,
		})
	}

	return diagnostics
}

// toSeverity maps a finding severity to an LSP diagnostic severity.
func toSeverity(severity config.Severity) protocol.DiagnosticSeverity {
	switch severity {
	case config.SeverityError:
		return protocol.DiagnosticSeverityError
	case config.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case config.SeverityInfo:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityError
	}
}

// uriToPath converts a file URI to a filesystem path. Non-file URIs are
// returned as-is so the validator still has a name to report.
func uriToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uri
	}
	return parsed.Path
}
