package main

import (
	"context"
	"strings"
	"sync"

	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/parse"
	"github.com/signadot/neon-format/go-neon/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document. Token offsets and parse errors refer
// to text, the content without carriage returns, which has the same lines.
type document struct {
	uri     string
	content string
	text    string
	version int32
	// ts is nil when the content does not tokenize, node when it does not
	// parse.
	ts   *token.Stream
	node ir.Node
	err  error
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		text:    strings.ReplaceAll(content, "\r", ""),
		version: version,
	}
	ts, err := token.Tokenize(content)
	if err != nil {
		doc.err = err
		return doc
	}
	doc.ts = ts
	doc.node, doc.err = parse.ParseStream(ts)
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChanges applies edits in order. The server asks for full sync, so a
// change normally has no range and replaces the whole content.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r == (protocol.Range{}) && change.RangeLength == 0 {
			content = change.Text
			continue
		}
		start, end := offsetAt(content, r.Start), offsetAt(content, r.End)
		if end < start {
			start, end = end, start
		}
		content = content[:start] + change.Text + content[end:]
	}
	return content
}
