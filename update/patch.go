package update

import (
	"strings"

	"github.com/signadot/neon-format/go-neon/debug"
	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/libdiff"
	"github.com/signadot/neon-format/go-neon/token"
	"github.com/signadot/neon-format/go-neon/value"
)

// Patch returns the document rewritten to match newTree. Items of block
// arrays in newTree are matched to those of the document through their
// Origin; unmatched items are added and document items nothing refers to
// are removed. Other nodes are compared by value and rewritten as a whole
// when they differ.
//
// Nodes of newTree are not modified.
func (u *Updater) Patch(newTree ir.Node) (string, error) {
	p := &patcher{
		ts:   u.ts,
		toks: u.ts.Tokens(),
		unit: u.unit,
		plan: newPlan(u.ts.Tokens()),
	}
	if err := p.replaceNode(u.node, newTree, "", true); err != nil {
		return "", err
	}
	if debug.Patch() && p.plan.empty() {
		debug.Logf("patch: no changes\n")
	}
	return p.plan.render(), nil
}

type patcher struct {
	ts   *token.Stream
	toks []token.Token
	unit string
	plan *plan
}

func (p *patcher) kindAt(i int) token.Kind {
	if i < 0 || i >= len(p.toks) {
		return token.TInvalid
	}
	return p.toks[i].Kind
}

// replaceNode rewrites the tokens of old so they denote new. indent is the
// absolute indentation of the block holding old.
func (p *patcher) replaceNode(old, new ir.Node, indent string, root bool) error {
	if value.Equal(old.ToValue(), new.ToValue()) {
		return nil
	}
	oa, ok := old.(*ir.Array)
	na, nok := new.(*ir.Array)
	if ok && nok {
		c := ir.Copy(na).(*ir.Array)
		c.Block, c.Indentation = oa.Block, oa.Indentation
		if !c.Block {
			c.Bracket = oa.Bracket
		}
		if c.Block && len(c.Items) != 0 {
			return p.replaceItems(oa.Items, c.Items, indent+oa.Indentation)
		}
		new = c
	}
	return p.replaceWhole(old, new, indent, root)
}

func (p *patcher) replaceWhole(old, new ir.Node, indent string, root bool) error {
	new = p.prepare(new, false)
	s, err := new.Text()
	if err != nil {
		return err
	}
	block := isBlock(new)
	if block && !root {
		s = "\n" + s
	}
	s = strings.TrimRight(s, " \t\r\n")
	if root {
		if a, ok := old.(*ir.Array); ok && a.Block {
			s = strings.ReplaceAll(s, "\n", "\n"+a.Indentation)
		}
	} else {
		s = strings.ReplaceAll(s, "\n", "\n"+indent+p.unit)
	}

	pos := old.Pos()
	start, end := pos.StartPos, pos.EndPos
	switch {
	case end < start:
		// an implied null right after its key or dash
		switch {
		case root && block:
			s += "\n"
		case !root && !block:
			s = " " + s
		}
		if debug.Patch() {
			debug.Logf("patch: insert %q before %d\n", s, start)
		}
		p.plan.insertBefore(s, start)
		return nil
	case root:
	case isBlock(old):
		// take the value back up to its key or dash
		start = p.ts.SkipLeft(start, token.TWhitespace, token.TNewline, token.TComment)
		s = " " + s
	case block:
		start = p.ts.SkipLeft(start, token.TWhitespace)
	}
	if debug.Patch() {
		debug.Logf("patch: replace %s [%d..%d] with %q\n", ir.TypeOf(old), start, end, s)
	}
	p.plan.replaceWith(s, start, end)
	return nil
}

// replaceItems aligns the items of a block array at absolute indentation
// indent with their new versions.
func (p *patcher) replaceItems(old, new []*ir.Item, indent string) error {
	steps := libdiff.Align(old, new, func(a, b *ir.Item) bool {
		return b.Origin == ir.Node(a)
	})
	first := old[0].StartPos
	newPos := p.ts.SkipLeft(first, token.TWhitespace)
	// the first item may share its line with a dash
	midLine := newPos != 0 && p.kindAt(newPos-1) != token.TNewline
	if midLine {
		newPos = first
	}
	needNewline := false
	for _, s := range steps {
		switch s.Op {
		case libdiff.Remove:
			start := p.ts.SkipLeft(s.Old.StartPos, token.TWhitespace)
			end := p.ts.SkipRight(s.Old.EndPos, token.TWhitespace, token.TComment)
			end = p.ts.SkipRight(end, token.TNewline)
			if debug.Patch() {
				debug.Logf("patch: remove [%d..%d]\n", start, end)
			}
			p.plan.replaceWith("", start, end)

		case libdiff.Keep:
			if err := p.replaceNode(s.Old.Value, s.New.Value, indent, false); err != nil {
				return err
			}
			end := p.ts.SkipRight(s.Old.Value.Pos().EndPos, token.TWhitespace, token.TComment)
			newPos = p.ts.SkipRight(end, token.TNewline) + 1
			midLine = false
			// only the last line of a document may lack a newline
			needNewline = p.kindAt(newPos-1) != token.TNewline

		case libdiff.Add:
			it := p.prepare(s.New, false).(*ir.Item)
			str, err := ir.ItemsToBlock([]*ir.Item{it})
			if err != nil {
				return err
			}
			str = ir.IndentLines(str, indent)
			switch {
			case midLine:
				str = strings.TrimPrefix(str, indent) + indent
			case needNewline:
				str = "\n" + str
				needNewline = false
			}
			if debug.Patch() {
				debug.Logf("patch: add %q before %d\n", str, newPos)
			}
			p.plan.insertBefore(str, newPos)
		}
	}
	return nil
}

// prepare returns a copy of n ready to be rendered into the document. New
// block arrays are indented like the document and arrays in inline
// contexts are made inline. The top level of the result is not indented.
func (p *patcher) prepare(n ir.Node, inline bool) ir.Node {
	res := p.prepareNode(n, inline)
	if a, ok := res.(*ir.Array); ok && a.Block {
		a.Indentation = ""
	}
	return res
}

func (p *patcher) prepareNode(n ir.Node, inline bool) ir.Node {
	if n == nil {
		return nil
	}
	c := ir.Copy(n)
	switch x := c.(type) {
	case *ir.Array:
		if inline && x.Block {
			x.Block, x.Bracket = false, bracketFor(x.Items)
		}
		if x.Block && !x.HasRange() {
			x.Indentation = p.unit
		}
		if !x.Block && x.Bracket == 0 {
			x.Bracket = bracketFor(x.Items)
		}
		for i, it := range x.Items {
			x.Items[i] = p.prepareNode(it, !x.Block).(*ir.Item)
		}
	case *ir.Item:
		x.Key = p.prepareNode(x.Key, true)
		x.Value = p.prepareNode(x.Value, inline)
	case *ir.Entity:
		x.Value = p.prepareNode(x.Value, true)
		for i, it := range x.Attributes {
			x.Attributes[i] = p.prepareNode(it, true).(*ir.Item)
		}
	case *ir.EntityChain:
		for i, e := range x.Chain {
			x.Chain[i] = p.prepareNode(e, true).(*ir.Entity)
		}
	}
	return c
}

func bracketFor(items []*ir.Item) byte {
	for _, it := range items {
		if it.Key != nil {
			return '{'
		}
	}
	return '['
}

// isBlock reports whether n renders on lines of its own.
func isBlock(n ir.Node) bool {
	a, ok := n.(*ir.Array)
	return ok && a.Block && len(a.Items) != 0
}
