package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/liuhaoxuan15/ftl-js-validator/internal/logging"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/langdetect"
	"github.com/liuhaoxuan15/ftl-js-validator/pkg/textdoc"
)

// serverVersion is reported to clients during initialize.
//
//nolint:gochecknoglobals // Overridden at build time.
var serverVersion = "0.1.0"

func (s *Server) initialize(
	_ *glsp.Context,
	_ *protocol.InitializeParams,
) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	// Full sync: every change carries the whole document, which keeps
	// block offsets trivially consistent with what the parser sees.
	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: &protocol.True},
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{validateCommand},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &serverVersion,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	s.logger.Info("server initialized", logging.FieldVersion, serverVersion)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	s.logger.Info("server shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) textDocumentDidOpen(
	ctx *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI

	s.mu.Lock()
	s.docs[uri] = &openDocument{
		languageID: params.TextDocument.LanguageID,
		content:    params.TextDocument.Text,
		version:    params.TextDocument.Version,
	}
	s.mu.Unlock()

	s.logger.Debug("document opened",
		logging.FieldURI, uri,
		logging.FieldLanguage, params.TextDocument.LanguageID,
	)

	return s.validateAndPublish(ctx, uri)
}

func (s *Server) textDocumentDidChange(
	ctx *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI

	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("change for unopened document %s", uri)
	}
	for _, change := range params.ContentChanges {
		switch contentChange := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			doc.content = contentChange.Text
		case protocol.TextDocumentContentChangeEvent:
			// Full sync is negotiated, but tolerate a whole-document
			// event arriving in range form.
			if contentChange.Range == nil {
				doc.content = contentChange.Text
			}
		}
	}
	doc.version = params.TextDocument.Version
	s.mu.Unlock()

	return s.validateAndPublish(ctx, uri)
}

func (s *Server) textDocumentDidSave(
	ctx *glsp.Context,
	params *protocol.DidSaveTextDocumentParams,
) error {
	uri := params.TextDocument.URI

	if params.Text != nil {
		s.mu.Lock()
		if doc, ok := s.docs[uri]; ok {
			doc.content = *params.Text
		}
		s.mu.Unlock()
	}

	return s.validateAndPublish(ctx, uri)
}

func (s *Server) textDocumentDidClose(
	ctx *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI

	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()

	s.store.Delete(uri)
	publishDiagnostics(ctx, uri, nil)
	return nil
}

func (s *Server) workspaceExecuteCommand(
	ctx *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	if params.Command != validateCommand {
		return nil, nil
	}

	// Without arguments the command revalidates every open document.
	uris := make([]string, 0, len(params.Arguments))
	for _, arg := range params.Arguments {
		if uri, ok := arg.(string); ok {
			uris = append(uris, uri)
		}
	}
	if len(uris) == 0 {
		s.mu.Lock()
		for uri := range s.docs {
			uris = append(uris, uri)
		}
		s.mu.Unlock()
	}

	for _, uri := range uris {
		if err := s.validateAndPublish(ctx, uri); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// validateAndPublish runs validation for an open document and publishes
// the resulting diagnostics. Revalidation replaces earlier findings for
// the document, never appends to them.
func (s *Server) validateAndPublish(ctx *glsp.Context, uri string) error {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	languageID := doc.languageID
	content := doc.content
	s.mu.Unlock()

	path := uriToPath(uri)
	if !langdetect.IsTemplateLanguageID(languageID) && !langdetect.IsTemplateExtension(path) {
		showMessage(ctx, protocol.MessageTypeWarning,
			fmt.Sprintf("%s is not a FreeMarker template; skipping script validation", path))
		return nil
	}

	textDoc := textdoc.New(path, []byte(content))
	findings := s.validator.Validate(textDoc)
	s.store.Set(uri, findings)

	s.logger.Debug("validated document",
		logging.FieldURI, uri,
		logging.FieldLength, textDoc.Len(),
		logging.FieldFindingsTotal, len(findings),
	)

	publishDiagnostics(ctx, uri, toDiagnostics(findings))
	return nil
}

// publishDiagnostics sends diagnostics for a document. An empty set
// clears previously published findings on the client.
func publishDiagnostics(ctx *glsp.Context, uri string, diagnostics []protocol.Diagnostic) {
	if ctx == nil {
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// showMessage sends a window/showMessage notification to the client.
func showMessage(ctx *glsp.Context, messageType protocol.MessageType, message string) {
	if ctx == nil {
		return
	}
	ctx.Notify(protocol.ServerWindowShowMessage, protocol.ShowMessageParams{
		Type:    messageType,
		Message: message,
	})
}
