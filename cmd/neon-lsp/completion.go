package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
)

var valueCompletions = []protocol.CompletionItem{
	{Label: "null", Kind: protocol.CompletionItemKindKeyword, InsertText: "null"},
	{Label: "true", Kind: protocol.CompletionItemKindKeyword, InsertText: "true"},
	{Label: "false", Kind: protocol.CompletionItemKindKeyword, InsertText: "false"},
	{
		Label:      "empty list",
		Kind:       protocol.CompletionItemKindSnippet,
		InsertText: "[]",
	},
	{
		Label:      "empty map",
		Kind:       protocol.CompletionItemKindSnippet,
		InsertText: "{}",
	},
	{
		Label:      "multi-line string",
		Kind:       protocol.CompletionItemKindSnippet,
		InsertText: "'''\n\t\n'''",
		Documentation: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: "String on the lines between `'''` delimiters",
		},
	},
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{
		Items: completions(doc.text, params.Position),
	}, nil
}

// completions offers values after a key or dash and nothing elsewhere.
func completions(text string, pos protocol.Position) []protocol.CompletionItem {
	off := offsetAt(text, pos)
	start := strings.LastIndexByte(text[:off], '\n') + 1
	before := strings.TrimRight(text[start:off], " \t")
	switch {
	case strings.HasSuffix(before, ":"), strings.HasSuffix(before, "="):
	case strings.TrimLeft(before, " \t") == "-":
	default:
		return []protocol.CompletionItem{}
	}
	lead := ""
	if off == start+len(before) {
		lead = " "
	}
	res := make([]protocol.CompletionItem, len(valueCompletions))
	for i, c := range valueCompletions {
		c.InsertText = lead + c.InsertText
		res[i] = c
	}
	return res
}
