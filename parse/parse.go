package parse

import (
	"github.com/signadot/neon-format/go-neon/debug"
	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/token"
	"github.com/signadot/neon-format/go-neon/value"
)

// Parse tokenizes and parses a NEON document. The returned stream holds
// the tokens the positions of the tree refer to.
func Parse(d []byte) (ir.Node, *token.Stream, error) {
	ts, err := token.Tokenize(string(d))
	if err != nil {
		return nil, nil, err
	}
	n, err := ParseStream(ts)
	if err != nil {
		return nil, nil, err
	}
	return n, ts, nil
}

// ParseString is Parse for a string.
func ParseString(s string) (ir.Node, *token.Stream, error) {
	return Parse([]byte(s))
}

// ParseStream parses the tokens of ts from its cursor to the end.
func ParseStream(ts *token.Stream) (ir.Node, error) {
	p := &parser{ts: ts}
	p.skipNewlines()
	n, err := p.parseBlock(ts.Indentation(), false)
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if ts.IsNext() {
		return nil, ts.Error(token.CurrentPos)
	}
	if debug.Parse() {
		debug.Logf("parsed %d tokens\n", len(ts.Tokens()))
		ir.Walk(n, func(n ir.Node) bool {
			debug.Logf("%s [%d..%d]\n", ir.TypeOf(n), n.Pos().StartPos, n.Pos().EndPos)
			return true
		})
	}
	return n, nil
}

type parser struct {
	ts *token.Stream
}

func (p *parser) skipNewlines() {
	for {
		if _, ok := p.ts.Consume(token.TNewline); !ok {
			return
		}
	}
}

func setPos(n ir.Node, start, end int) ir.Node {
	pos := n.Pos()
	pos.StartPos, pos.EndPos = start, end
	return n
}

// impliedNull is the value of an item without one. Its range is empty and
// sits at start.
func impliedNull(start int) *ir.Literal {
	n := ir.NewLiteral(nil)
	n.StartPos, n.EndPos = start, start-1
	return n
}

// mixedIndent reports whether neither of a, b is a prefix of the other.
func mixedIndent(a, b string) bool {
	n := min(len(a), len(b))
	return a[:n] != b[:n]
}

func (p *parser) parseBlock(indent string, onlyBullets bool) (ir.Node, error) {
	ts := p.ts
	res := ir.NewBlock(indent)
	keys := map[string]bool{}

	for {
		// an empty block sits right after the dash or key introducing it
		empty := ts.Pos()
		more := ts.IsNext()
		item := ir.NewItem(nil, nil)
		item.StartPos = ts.Pos()
		if len(res.Items) == 0 {
			res.StartPos = item.StartPos
		}
		if _, ok := ts.Consume(token.TDash); !ok {
			if !more || onlyBullets {
				if len(res.Items) != 0 {
					return res, nil
				}
				return impliedNull(empty), nil
			}
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			if _, ok := ts.Consume(token.TColon, token.TEquals); !ok {
				if len(res.Items) != 0 {
					return nil, ts.Error(token.CurrentPos)
				}
				return v, nil
			}
			if err := p.checkKey(v, keys); err != nil {
				return nil, err
			}
			item.Key = v
		}
		res.Items = append(res.Items, item)

		val, done, err := p.parseItemValue(item, indent)
		if err != nil {
			return nil, err
		}
		if a, ok := val.(*ir.Array); ok && a.Block {
			a.Indentation = a.Indentation[min(len(indent), len(a.Indentation)):]
		}
		item.Value = val
		item.EndPos = val.Pos().EndPos
		res.EndPos = item.EndPos
		if done {
			return res, nil
		}

		p.skipNewlines()
		if !ts.IsNext() {
			return res, nil
		}
		next := ts.Indentation()
		switch {
		case mixedIndent(next, indent):
			return nil, ts.Errorf(token.CurrentPos, "Invalid combination of tabs and spaces")
		case len(next) > len(indent):
			return nil, ts.Errorf(token.CurrentPos, "Bad indentation")
		case len(next) < len(indent):
			return res, nil
		}
	}
}

// parseItemValue parses what follows the key or dash of a block item. done
// is set when the block ends with the item.
func (p *parser) parseItemValue(item *ir.Item, indent string) (ir.Node, bool, error) {
	ts := p.ts
	null := impliedNull(ts.Pos())
	if _, ok := ts.Consume(token.TNewline); ok {
		p.skipNewlines()
		next := ts.Indentation()
		switch {
		case mixedIndent(next, indent):
			return nil, false, ts.Errorf(token.CurrentPos, "Invalid combination of tabs and spaces")
		case len(next) > len(indent):
			v, err := p.parseBlock(next, false)
			return v, false, err
		case len(next) < len(indent):
			return null, true, nil
		case item.Key != nil && ts.IsNext(token.TDash):
			v, err := p.parseBlock(indent, true)
			return v, false, err
		}
		return null, false, nil
	}
	if item.Key == nil {
		v, err := p.parseBlock(indent+"  ", false)
		return v, false, err
	}
	if !ts.IsNext() {
		return null, false, nil
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, false, err
	}
	if ts.IsNext() && !ts.IsNext(token.TNewline) {
		return nil, false, ts.Error(token.CurrentPos)
	}
	return v, false, nil
}

func (p *parser) checkKey(key ir.Node, keys map[string]bool) error {
	var k any
	switch x := key.(type) {
	case *ir.Literal:
		k = x.Value
	case *ir.Quoted:
		k = x.Value
	}
	switch k.(type) {
	case string, int64, float64, bool:
	default:
		return p.ts.Errorf(key.Pos().StartPos, "Unacceptable key")
	}
	ks := value.KeyString(value.NormKey(k))
	if keys[ks] {
		return p.ts.Errorf(key.Pos().StartPos, "Duplicated key '%s'", ks)
	}
	keys[ks] = true
	return nil
}

func (p *parser) parseValue() (ir.Node, error) {
	ts := p.ts
	var n ir.Node
	if tok, ok := ts.Consume(token.TString); ok {
		pos := ts.Pos() - 1
		s, err := ir.ParseQuoted(tok.Value)
		if err != nil {
			return nil, ts.Errorf(pos, "%s", err.Error())
		}
		n = setPos(ir.NewQuoted(s), pos, pos)
	} else if tok, ok := ts.Consume(token.TLiteral); ok {
		pos := ts.Pos() - 1
		isKey := ts.IsNext(token.TColon, token.TEquals)
		n = setPos(ir.NewLiteral(ir.ParseLiteral(tok.Value, isKey)), pos, pos)
	} else if ts.IsNext(token.TLSquare, token.TLParen, token.TLCurl) {
		a, err := p.parseBraces()
		if err != nil {
			return nil, err
		}
		n = a
	} else {
		return nil, ts.Error(token.CurrentPos)
	}
	return p.parseEntity(n)
}

func (p *parser) parseEntity(n ir.Node) (ir.Node, error) {
	ts := p.ts
	if !ts.IsNext(token.TLParen) {
		return n, nil
	}
	attrs, err := p.parseBraces()
	if err != nil {
		return nil, err
	}
	chain := []*ir.Entity{entity(n, attrs)}
	for {
		tok, ok := ts.Consume(token.TLiteral)
		if !ok {
			break
		}
		pos := ts.Pos() - 1
		v := setPos(ir.NewLiteral(ir.ParseLiteral(tok.Value, false)), pos, pos)
		if !ts.IsNext(token.TLParen) {
			e := ir.NewEntity(v)
			e.StartPos, e.EndPos = pos, pos
			chain = append(chain, e)
			break
		}
		attrs, err := p.parseBraces()
		if err != nil {
			return nil, err
		}
		chain = append(chain, entity(v, attrs))
	}
	if len(chain) == 1 {
		return chain[0], nil
	}
	return setPos(ir.NewEntityChain(chain...), n.Pos().StartPos, chain[len(chain)-1].EndPos), nil
}

func entity(v ir.Node, attrs *ir.Array) *ir.Entity {
	e := ir.NewEntity(v, attrs.Items...)
	e.StartPos, e.EndPos = v.Pos().StartPos, attrs.EndPos
	return e
}

var closing = map[token.Kind]token.Kind{
	token.TLSquare: token.TRSquare,
	token.TLCurl:   token.TRCurl,
	token.TLParen:  token.TRParen,
}

func (p *parser) parseBraces() (*ir.Array, error) {
	ts := p.ts
	open, _ := ts.Consume()
	end := closing[open.Kind]
	res := ir.NewInline(open.Kind.Char())
	res.StartPos = ts.Pos() - 1
	keys := map[string]bool{}

	for {
		p.skipNewlines()
		if _, ok := ts.Consume(end); ok {
			res.EndPos = ts.Pos() - 1
			return res, nil
		}
		item := ir.NewItem(nil, nil)
		item.StartPos = ts.Pos()
		res.Items = append(res.Items, item)
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, ok := ts.Consume(token.TColon, token.TEquals); ok {
			if err := p.checkKey(v, keys); err != nil {
				return nil, err
			}
			item.Key = v
			null := impliedNull(ts.Pos())
			if ts.IsNext(token.TNewline, token.TComma, end) {
				item.Value = null
			} else {
				val, err := p.parseValue()
				if err != nil {
					return nil, err
				}
				item.Value = val
			}
		} else {
			item.Value = v
		}
		item.EndPos = item.Value.Pos().EndPos

		if _, ok := ts.Consume(token.TComma, token.TNewline); ok {
			continue
		}
		p.skipNewlines()
		if !ts.IsNext(end) {
			return nil, ts.Error(token.CurrentPos)
		}
	}
}
