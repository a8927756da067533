package codebase

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/PrakharDoneria/ChiX/c"
)

const lsName = "chix"

// LSPServer exposes the completion engine over the Language Server
// Protocol. Open documents are tracked with full-content sync; the
// project index is built once the client reports initialized.
type LSPServer struct {
	index   *Index
	engine  *c.Engine
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.RWMutex
	documents map[string]string
}

// NewLSPServer creates a server reporting the given version string.
func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version:   version,
		documents: make(map[string]string),
	}

	ls.handler = protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentCompletion: ls.textDocumentCompletion,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

// RunStdio serves LSP over stdin/stdout.
func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.index = New(rootDir)
	ls.engine = c.NewEngine(ls.index)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	triggerChars := []string{".", ">", "#", "<"}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: triggerChars,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	// Cached symbols serve completions while the full scan runs.
	ls.index.LoadCache(CachePath(ls.index.RootDir()))
	go func() {
		if err := ls.index.Scan(); err == nil {
			ls.index.SaveCache(CachePath(ls.index.RootDir()))
		}
	}()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) setDocument(path, content string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.documents[path] = content
}

func (ls *LSPServer) getDocument(path string) (string, bool) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	content, ok := ls.documents[path]
	return content, ok
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.setDocument(path, params.TextDocument.Text)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.setDocument(path, textChange.Text)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.documents, path)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.setDocument(path, *params.Text)
	}
	ls.index.ScanFile(path)
	return nil
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	content, ok := ls.getDocument(path)
	if !ok {
		return nil, nil
	}

	offset := offsetFor(content, int(params.Position.Line), int(params.Position.Character))
	if offset < 0 {
		return nil, nil
	}

	candidates, err := ls.engine.Completions(content, offset)
	if err != nil || len(candidates) == 0 {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(candidates))
	for _, cand := range candidates {
		kind := toProtocolKind(cand.Kind)
		detail := string(cand.Kind)
		insertText, format := insertTextFor(cand)

		items = append(items, protocol.CompletionItem{
			Label:            cand.Text,
			Kind:             &kind,
			Detail:           &detail,
			InsertText:       &insertText,
			InsertTextFormat: &format,
		})
	}

	return items, nil
}

// offsetFor converts a zero-based LSP line/character position into a
// flat byte offset into content. Returns -1 when the position lies
// outside the document.
func offsetFor(content string, line, character int) int {
	lines := strings.Split(content, "\n")
	if line < 0 || line >= len(lines) {
		return -1
	}
	if character < 0 || character > len(lines[line]) {
		return -1
	}

	offset := 0
	for i := 0; i < line; i++ {
		offset += len(lines[i]) + 1
	}
	return offset + character
}

func insertTextFor(cand c.Candidate) (string, protocol.InsertTextFormat) {
	switch cand.Kind {
	case c.KindFunction:
		return cand.Text + "($1)", protocol.InsertTextFormatSnippet
	case c.KindSnippet:
		if body, ok := c.Snippets[cand.Text]; ok {
			return body, protocol.InsertTextFormatPlainText
		}
		return cand.Text, protocol.InsertTextFormatPlainText
	default:
		return cand.Text, protocol.InsertTextFormatPlainText
	}
}

func toProtocolKind(kind c.SymbolKind) protocol.CompletionItemKind {
	switch kind {
	case c.KindKeyword:
		return protocol.CompletionItemKindKeyword
	case c.KindType:
		return protocol.CompletionItemKindClass
	case c.KindFunction:
		return protocol.CompletionItemKindFunction
	case c.KindVariable:
		return protocol.CompletionItemKindVariable
	case c.KindHeader:
		return protocol.CompletionItemKindFile
	case c.KindPreprocessor:
		return protocol.CompletionItemKindKeyword
	case c.KindSnippet:
		return protocol.CompletionItemKindSnippet
	case c.KindMember:
		return protocol.CompletionItemKindField
	default:
		return protocol.CompletionItemKindText
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
