package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/signadot/neon-format/go-neon/encode"
	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/token"
	"github.com/signadot/neon-format/go-neon/value"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	chain := nodeAt(doc, offsetAt(doc.text, params.Position))
	if len(chain) == 0 {
		return nil, nil
	}
	text, err := buildHoverText(chain)
	if err != nil || text == "" {
		return nil, err
	}
	n := chain[len(chain)-1]
	toks := doc.ts.Tokens()
	rng := protocol.Range{
		Start: positionAt(doc.text, toks[n.Pos().StartPos].Offset),
		End:   positionAt(doc.text, toks[n.Pos().EndPos].End()),
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
		Range: &rng,
	}, nil
}

// nodeAt returns the nodes enclosing the token at byte offset off, outermost
// first. A key stands for its item. Blanks and comments have no node.
func nodeAt(doc *document, off int) []ir.Node {
	toks := doc.ts.Tokens()
	i := sort.Search(len(toks), func(i int) bool {
		return toks[i].End() > off
	})
	if i == len(toks) {
		return nil
	}
	switch toks[i].Kind {
	case token.TWhitespace, token.TNewline, token.TComment:
		return nil
	}
	chain := ir.Enclosing(doc.node, i)
	if k := len(chain); k >= 2 {
		if it, ok := chain[k-2].(*ir.Item); ok && it.Key == chain[k-1] {
			chain = chain[:k-1]
		}
	}
	return chain
}

func buildHoverText(chain []ir.Node) (string, error) {
	n := chain[len(chain)-1]
	if it, ok := n.(*ir.Item); ok {
		n = it.Value
	}
	v := n.ToValue()
	canon, err := encode.String(v)
	if err != nil {
		return "", err
	}
	if r := []rune(canon); len(r) > 50 {
		canon = string(r[:50]) + "..."
	}
	parts := []string{
		fmt.Sprintf("**Type:** %s", typeName(v)),
		fmt.Sprintf("**Path:** `%s`", ir.Path(chain)),
		fmt.Sprintf("**Value:** `%s`", canon),
	}
	return strings.Join(parts, "\n\n"), nil
}

func typeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "float"
	case string:
		return "string"
	case time.Time:
		return "date"
	case []any:
		return fmt.Sprintf("list of %d", len(x))
	case *value.Map:
		return fmt.Sprintf("map of %d", x.Len())
	case *value.Entity:
		return "entity"
	}
	return fmt.Sprintf("%T", v)
}
