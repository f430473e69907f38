package main

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/signadot/neon-format/go-neon/encode"
	"github.com/signadot/neon-format/go-neon/ir"
	"go.lsp.dev/protocol"
)

// the legend sent in Initialize; semantic token data indexes into these
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenClass,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}
)

func tokenTypeIndex(t protocol.SemanticTokenTypes) uint32 {
	for i, tt := range tokenTypes {
		if tt == t {
			return uint32(i)
		}
	}
	return 2
}

// semanticType maps the colouring of a token to its semantic token type.
func semanticType(c encode.Colorable) protocol.SemanticTokenTypes {
	switch c.Attr {
	case encode.CommentColor:
		return protocol.SemanticTokenComment
	case encode.FieldColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	case encode.NullColor, encode.BoolColor:
		return protocol.SemanticTokenKeyword
	case encode.NumberColor, encode.DateColor:
		return protocol.SemanticTokenNumber
	case encode.ValueColor:
		if c.Type == ir.EntityType {
			return protocol.SemanticTokenClass
		}
	}
	return protocol.SemanticTokenString
}

type semToken struct {
	line, char, length uint32
	typ                uint32
	mods               uint32
}

// semanticTokens classifies every token of doc. Tokens spanning several
// lines are split, one entry per non-empty line.
func semanticTokens(doc *document) []semToken {
	if doc.ts == nil {
		return nil
	}
	toks := doc.ts.Tokens()
	var res []semToken
	var line, char uint32
	for i := range toks {
		c, ok := encode.Classify(toks, i)
		typ := tokenTypeIndex(semanticType(c))
		var mods uint32
		if c.Attr == encode.FieldColor {
			mods = 1
		}
		for j, part := range strings.Split(toks[i].Value, "\n") {
			if j > 0 {
				line++
				char = 0
			}
			n := utf16Count(part)
			if ok && n != 0 {
				res = append(res, semToken{line: line, char: char, length: n, typ: typ, mods: mods})
			}
			char += n
		}
	}
	return res
}

func utf16Count(s string) uint32 {
	var n uint32
	for len(s) > 0 {
		r, sz := utf8.DecodeRuneInString(s)
		n += utf16Len(r)
		s = s[sz:]
	}
	return n
}

// encodeSemanticTokens produces the relative encoding of the protocol:
// five integers per token, positions relative to the previous token.
func encodeSemanticTokens(toks []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, t := range toks {
		deltaLine := t.line - prevLine
		deltaChar := t.char
		if deltaLine == 0 {
			deltaChar = t.char - prevChar
		}
		data = append(data, deltaLine, deltaChar, t.length, t.typ, t.mods)
		prevLine, prevChar = t.line, t.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(semanticTokens(doc)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	var toks []semToken
	for _, t := range semanticTokens(doc) {
		if t.line < r.Start.Line || t.line > r.End.Line {
			continue
		}
		toks = append(toks, t)
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(toks),
	}, nil
}
