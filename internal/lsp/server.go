// Package lsp implements the language server over stdio. It validates
// embedded script blocks in FreeMarker templates the editor has open and
// publishes the results as diagnostics.
package lsp

import (
	"sync"

	"github.com/charmbracelet/log"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/liuhaoxuan15/ftl-js-validator/internal/logging"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/jsparse"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/validate"
)

// serverName identifies the server to LSP clients.
const serverName = "ftljsv"

// validateCommand is the workspace command that revalidates a document on demand.
const validateCommand = "ftljsv.validate"

// Server holds the language server state. Open documents are tracked by
// URI; the findings store mirrors the diagnostics last published.
type Server struct {
	handler   *protocol.Handler
	validator *validate.Validator
	store     *validate.Store
	logger    *log.Logger

	mu   sync.Mutex
	docs map[string]*openDocument
}

// openDocument is the server's view of an editor buffer.
type openDocument struct {
	languageID string
	content    string
	version    protocol.Integer
}

// NewServer creates the glsp server wired to the given parser.
func NewServer(parser jsparse.Parser, logger *log.Logger) *server.Server {
	if logger == nil {
		logger = logging.Default()
	}

	ls := &Server{
		validator: validate.New(parser),
		store:     validate.NewStore(),
		logger:    logger,
		docs:      make(map[string]*openDocument),
	}

	ls.handler = &protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		SetTrace:                ls.setTrace,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidSave:     ls.textDocumentDidSave,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		WorkspaceExecuteCommand: ls.workspaceExecuteCommand,
		Shutdown:                ls.shutdown,
	}

	return server.NewServer(ls.handler, serverName, false)
}

// Store exposes the findings store, mainly for tests.
func (s *Server) Store() *validate.Store {
	return s.store
}
