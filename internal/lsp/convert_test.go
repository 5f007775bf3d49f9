package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/liuhaoxuan15/ftl-js-validator/pkg/config"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"
)

func TestToDiagnostics(t *testing.T) {
	t.Parallel()

	findings := []validate.Finding{{
		Path: "/tmp/page.ftl",
		Range: validate.Range{
			Start: textdoc.Position{Line: 4, Column: 0},
			End:   textdoc.Position{Line: 4, Column: 17},
		},
		Severity: config.SeverityError,
		Message:  "JavaScript syntax error: Unexpected token ;",
		Source:   validate.SourceTag,
		Code:     validate.CodeSyntaxError,
	}}

	diagnostics := toDiagnostics(findings)
	require.Len(t, diagnostics, 1)

	diag := diagnostics[0]
	assert.Equal(t, protocol.UInteger(4), diag.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(0), diag.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(4), diag.Range.End.Line)
	assert.Equal(t, protocol.UInteger(17), diag.Range.End.Character)

	require.NotNil(t, diag.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diag.Severity)

	require.NotNil(t, diag.Source)
	assert.Equal(t, "FTL JS Validator", *diag.Source)

	require.NotNil(t, diag.Code)
	assert.Equal(t, "js-syntax-error", diag.Code.Value)

	assert.Equal(t, "JavaScript syntax error: Unexpected token ;", diag.Message)
}

func TestToDiagnostics_Empty(t *testing.T) {
	t.Parallel()

	diagnostics := toDiagnostics(nil)
	assert.NotNil(t, diagnostics)
	assert.Empty(t, diagnostics)
}

func TestURIToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/dev/views/page.ftl", "/home/dev/views/page.ftl"},
		{"file:///tmp/a%20b.ftl", "/tmp/a b.ftl"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
		{"/already/a/path.ftl", "/already/a/path.ftl"},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, uriToPath(testCase.uri), testCase.uri)
	}
}
