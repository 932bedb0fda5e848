// Package lsp is a language server for glox. It parses every open document
// and publishes the syntax errors as diagnostics.
package lsp

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/ltungv/lox/glox/internal/lox"
	"github.com/ltungv/lox/glox/internal/report"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "glox"

var log = commonlog.GetLogger("glox.lsp")

// Server publishes parse diagnostics for the documents opened by the client.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	opts    lox.Options

	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

// NewServer creates a language server parsing documents with opts.
func NewServer(version string, opts lox.Options) *Server {
	ls := &Server{
		version: version,
		opts:    opts,
		docs:    make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

// RunStdio serves the protocol over standard input and output.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized, max depth %d", ls.opts.MaxDepth)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.update(ctx, params.TextDocument.URI, whole.Text)
	} else {
		log.Warningf("ignoring incremental change of %s", params.TextDocument.URI)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI

	ls.mu.Lock()
	delete(ls.docs, uri)
	ls.mu.Unlock()

	log.Debugf("closed %s", uri)
	publish(ctx, uri, []protocol.Diagnostic{})
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	if params.Text != nil {
		ls.update(ctx, uri, *params.Text)
		return nil
	}

	ls.mu.Lock()
	text, ok := ls.docs[uri]
	ls.mu.Unlock()
	if ok {
		ls.update(ctx, uri, text)
	}
	return nil
}

// update stores the new text of a document and publishes its diagnostics
func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	ls.mu.Unlock()

	diagnostics := Diagnostics(text, ls.opts)
	log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	publish(ctx, uri, diagnostics)
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnostics parses text and converts every reported error into a
// diagnostic covering the line it was reported on.
func Diagnostics(text string, opts lox.Options) []protocol.Diagnostic {
	_, errs := lox.Parse(text, opts)

	lines := strings.Split(text, "\n")
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))
	for _, err := range errs {
		line, message := 0, err.Error()
		if d, ok := err.(report.Diagnostic); ok {
			line = d.Line() - 1
			message = strings.TrimPrefix(message, fmt.Sprintf("[line %d] ", d.Line()))
		}
		if line >= len(lines) {
			line = len(lines) - 1
		}
		if line < 0 {
			line = 0
		}

		content := strings.TrimSuffix(lines[line], "\r")
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(line), Character: 0},
				End: protocol.Position{
					Line:      protocol.UInteger(line),
					Character: protocol.UInteger(len(utf16.Encode([]rune(content)))),
				},
			},
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   stringPtr(lsName),
			Message:  message,
		})
	}
	return diagnostics
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
