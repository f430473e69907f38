package main

import (
	"context"
	"strings"

	"github.com/signadot/neon-format/go-neon/encode"
	"github.com/signadot/neon-format/go-neon/token"
	"go.lsp.dev/protocol"
)

// Formatting rewrites the document in canonical block form. Documents with
// comments are left alone, as encoding drops them.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	formatted, ok := formatDocument(doc, params.Options)
	if !ok || formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				End: positionAt(doc.text, len(doc.text)),
			},
			NewText: formatted,
		},
	}, nil
}

func formatDocument(doc *document, opts protocol.FormattingOptions) (string, bool) {
	if strings.TrimSpace(doc.text) == "" {
		return "", false
	}
	for _, t := range doc.ts.Tokens() {
		if t.Kind == token.TComment {
			return "", false
		}
	}
	indent := "\t"
	if opts.InsertSpaces && opts.TabSize > 0 {
		indent = strings.Repeat(" ", int(opts.TabSize))
	}
	out, err := encode.String(doc.node.ToValue(), encode.EncodeBlock(true), encode.EncodeIndent(indent))
	if err != nil {
		theLog.Error("format", "uri", doc.uri, "error", err)
		return "", false
	}
	return strings.TrimRight(out, "\n") + "\n", true
}
