package main

import (
	"context"
	"errors"

	"github.com/signadot/neon-format/go-neon/token"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: diagnostics(doc),
	})
	if err != nil {
		theLog.Error("publish diagnostics", "uri", doc.uri, "error", err)
	}
}

// diagnostics reports the error the document failed to tokenize or parse
// with, if any.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   "neon",
		Message:  doc.err.Error(),
	}
	var se *token.SyntaxErr
	if errors.As(doc.err, &se) {
		d.Message = se.Msg
		off := lineColOffset(doc.text, se.Line, se.Col)
		d.Range.Start = positionAt(doc.text, off)
		d.Range.End = d.Range.Start
		if doc.ts != nil && se.Pos < len(doc.ts.Tokens()) {
			d.Range.End = positionAt(doc.text, doc.ts.Tokens()[se.Pos].End())
		}
		if d.Range.End == d.Range.Start {
			d.Range.End.Character++
		}
	}
	return append(res, d)
}
