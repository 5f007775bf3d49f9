package lsp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/liuhaoxuan15/ftl-js-validator/internal/logging"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/jsparse"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"
)

// markerParser fails any snippet containing "BAD" at the marker offset.
type markerParser struct{}

func (markerParser) Parse(src string) *jsparse.Failure {
	if idx := strings.Index(src, "BAD"); idx >= 0 {
		return &jsparse.Failure{Offset: idx, Message: "Unexpected token BAD"}
	}
	return nil
}

func newTestServer() *Server {
	return &Server{
		validator: validate.New(markerParser{}),
		store:     validate.NewStore(),
		logger:    logging.New("error"),
		docs:      make(map[string]*openDocument),
	}
}

func TestDidOpen_PublishesFindings(t *testing.T) {
	t.Parallel()

	ls := newTestServer()
	uri := "file:///tmp/page.ftl"

	err := ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "ftl",
			Version:    1,
			Text:       "<script>BAD</script>",
		},
	})
	require.NoError(t, err)

	findings := ls.store.Get(uri)
	require.Len(t, findings, 1)
	assert.Equal(t, validate.CodeSyntaxError, findings[0].Code)
	assert.Equal(t, "/tmp/page.ftl", findings[0].Path)
}

func TestDidChange_ReplacesFindings(t *testing.T) {
	t.Parallel()

	ls := newTestServer()
	uri := "file:///tmp/page.ftl"

	require.NoError(t, ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "ftl",
			Version:    1,
			Text:       "<script>BAD</script>",
		},
	}))
	require.Len(t, ls.store.Get(uri), 1)

	// A fixed document must clear the earlier findings.
	require.NoError(t, ls.textDocumentDidChange(nil, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "<script>let a = 1;</script>"},
		},
	}))

	assert.Empty(t, ls.store.Get(uri))
}

func TestDidChange_UnopenedDocument(t *testing.T) {
	t.Parallel()

	ls := newTestServer()

	err := ls.textDocumentDidChange(nil, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///nope.ftl"},
		},
	})
	assert.Error(t, err)
}

func TestDidClose_ClearsStore(t *testing.T) {
	t.Parallel()

	ls := newTestServer()
	uri := "file:///tmp/page.ftl"

	require.NoError(t, ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "ftl",
			Version:    1,
			Text:       "<script>BAD</script>",
		},
	}))
	require.Len(t, ls.store.Get(uri), 1)

	require.NoError(t, ls.textDocumentDidClose(nil, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))

	assert.Empty(t, ls.store.Get(uri))
	assert.Equal(t, 0, ls.store.Len())
}

func TestDidOpen_NonTemplateSkipped(t *testing.T) {
	t.Parallel()

	ls := newTestServer()
	uri := "file:///tmp/readme.md"

	require.NoError(t, ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "markdown",
			Version:    1,
			Text:       "<script>BAD</script>",
		},
	}))

	assert.Empty(t, ls.store.Get(uri))
}

func TestExecuteCommand_RevalidatesOpenDocuments(t *testing.T) {
	t.Parallel()

	ls := newTestServer()
	uri := "file:///tmp/page.ftl"

	require.NoError(t, ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "ftl",
			Version:    1,
			Text:       "<script>BAD</script>",
		},
	}))
	ls.store.Clear()

	_, err := ls.workspaceExecuteCommand(nil, &protocol.ExecuteCommandParams{
		Command: validateCommand,
	})
	require.NoError(t, err)

	assert.Len(t, ls.store.Get(uri), 1)
}
