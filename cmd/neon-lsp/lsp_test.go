package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const testURI = "file:///test.neon"

func TestDiagnostics(t *testing.T) {
	doc := newDocument(testURI, "a: 1\na: 2\n", 1)
	ds := diagnostics(doc)
	want := []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 0},
			End:   protocol.Position{Line: 1, Character: 1},
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "neon",
		Message:  "Duplicated key 'a'",
	}}
	if diff := cmp.Diff(want, ds); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}

	if ds := diagnostics(newDocument(testURI, "a: 1\n", 1)); len(ds) != 0 {
		t.Errorf("valid document: got %v", ds)
	}
	ds = diagnostics(newDocument(testURI, "a: [1\n", 1))
	if len(ds) != 1 || ds[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("unclosed bracket: got %v", ds)
	}
}

func TestSemanticTokens(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []uint32
	}{
		{
			name: "key value comment",
			in:   "a: 1 # c\n",
			want: []uint32{
				0, 0, 1, 5, 1,
				0, 1, 1, 4, 0,
				0, 2, 1, 3, 0,
				0, 2, 3, 0, 0,
			},
		},
		{
			name: "multi-line string",
			in:   "s: '''\n\tx\n\t'''\n",
			want: []uint32{
				0, 0, 1, 5, 1,
				0, 1, 1, 4, 0,
				0, 2, 3, 2, 0,
				1, 0, 2, 2, 0,
				1, 0, 4, 2, 0,
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := encodeSemanticTokens(semanticTokens(newDocument(testURI, c.in, 1)))
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("semantic tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func hoverAt(t *testing.T, s *Server, line, char uint32) *protocol.Hover {
	t.Helper()
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: line, Character: char},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestHover(t *testing.T) {
	s := newServer()
	s.docs.put(testURI, "db:\n\tport: 5432\n", 1)
	want := "**Type:** integer\n\n**Path:** `$.db.port`\n\n**Value:** `5432`"

	h := hoverAt(t, s, 1, 8)
	if h == nil {
		t.Fatal("no hover on value")
	}
	if h.Contents.Value != want {
		t.Errorf("value hover: got %q want %q", h.Contents.Value, want)
	}
	wantRange := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 7},
		End:   protocol.Position{Line: 1, Character: 11},
	}
	if diff := cmp.Diff(&wantRange, h.Range); diff != "" {
		t.Errorf("value hover range (-want +got):\n%s", diff)
	}

	h = hoverAt(t, s, 1, 2)
	if h == nil || h.Contents.Value != want {
		t.Errorf("key hover: got %v", h)
	}
	if h := hoverAt(t, s, 1, 6); h != nil {
		t.Errorf("hover on blank: got %v", h)
	}
}

func TestPositions(t *testing.T) {
	text := "é🙂x\nab"
	if got := positionAt(text, len("é🙂")); got != (protocol.Position{Line: 0, Character: 3}) {
		t.Errorf("positionAt: got %v", got)
	}
	if got := offsetAt(text, protocol.Position{Line: 0, Character: 3}); got != len("é🙂") {
		t.Errorf("offsetAt: got %d", got)
	}
	if got := offsetAt(text, protocol.Position{Line: 0, Character: 9}); got != strings.IndexByte(text, '\n') {
		t.Errorf("offsetAt past end of line: got %d", got)
	}
	if got := offsetAt(text, protocol.Position{Line: 4}); got != len(text) {
		t.Errorf("offsetAt past last line: got %d", got)
	}
	if got := positionAt(text, len(text)); got != (protocol.Position{Line: 1, Character: 2}) {
		t.Errorf("positionAt end: got %v", got)
	}
	if got := lineColOffset(text, 2, 2); got != len(text)-1 {
		t.Errorf("lineColOffset: got %d", got)
	}
}

func TestApplyChanges(t *testing.T) {
	got := applyChanges("a: 1\n", []protocol.TextDocumentContentChangeEvent{
		{Text: "a: 2\nb: 3\n"},
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 3},
				End:   protocol.Position{Line: 1, Character: 4},
			},
			Text: "30",
		},
	})
	if got != "a: 2\nb: 30\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatDocument(t *testing.T) {
	opts := protocol.FormattingOptions{InsertSpaces: true, TabSize: 2}
	got, ok := formatDocument(newDocument(testURI, "a: {b: 1}\n", 1), opts)
	if !ok || got != "a:\n  b: 1\n" {
		t.Errorf("got %q, %v", got, ok)
	}
	if _, ok := formatDocument(newDocument(testURI, "a: {b: 1} # keep\n", 1), opts); ok {
		t.Error("formatted a document with comments")
	}
}

func TestCompletions(t *testing.T) {
	got := completions("a:", protocol.Position{Character: 2})
	if len(got) != len(valueCompletions) || got[0].InsertText != " null" {
		t.Errorf("after colon: got %v", got)
	}
	got = completions("- ", protocol.Position{Character: 2})
	if len(got) != len(valueCompletions) || got[0].InsertText != "null" {
		t.Errorf("after dash: got %v", got)
	}
	if got := completions("ab", protocol.Position{Character: 2}); len(got) != 0 {
		t.Errorf("inside a literal: got %v", got)
	}
}
