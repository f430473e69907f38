package update

import (
	"github.com/signadot/neon-format/go-neon/debug"
	"github.com/signadot/neon-format/go-neon/encode"
	"github.com/signadot/neon-format/go-neon/ir"
	"github.com/signadot/neon-format/go-neon/parse"
	"github.com/signadot/neon-format/go-neon/token"
)

// Updater patches one document. It is not modified by patching, so the
// same Updater may produce any number of patched versions.
type Updater struct {
	ts   *token.Stream
	node ir.Node
	unit string
}

// New tokenizes and parses input.
func New(input string) (*Updater, error) {
	n, ts, err := parse.ParseString(input)
	if err != nil {
		return nil, err
	}
	return &Updater{ts: ts, node: n, unit: indentUnit(n)}, nil
}

// Node returns the parsed tree. It must not be modified.
func (u *Updater) Node() ir.Node {
	return u.node
}

func (u *Updater) Tokens() []token.Token {
	return u.ts.Tokens()
}

// CloneWithOrigins returns a deep copy of the parsed tree in which every
// node has its Origin set to the node it was copied from. The copy may be
// edited freely and handed to Patch.
func (u *Updater) CloneWithOrigins() ir.Node {
	return ir.Traverse(u.node, func(n ir.Node) ir.Node {
		c := ir.Copy(n)
		c.Pos().Origin = n
		return c
	})
}

// Reconcile returns the document rewritten to decode to v.
func (u *Updater) Reconcile(v any) (string, error) {
	n, err := encode.Node(v, encode.EncodeBlock(true), encode.EncodeIndent(u.unit))
	if err != nil {
		return "", err
	}
	if debug.Patch() {
		debug.Logf("reconcile to:\n%s\n", n)
	}
	GuessOrigins(u.node, n)
	return u.Patch(n)
}

// indentUnit returns the indentation of the first nested block of n
// relative to its parent, or a tab.
func indentUnit(n ir.Node) string {
	unit := ""
	ir.Walk(n, func(c ir.Node) bool {
		if unit != "" {
			return false
		}
		if a, ok := c.(*ir.Array); ok && a.Block && c != n && a.Indentation != "" {
			unit = a.Indentation
			return false
		}
		return true
	})
	if unit == "" {
		return "\t"
	}
	return unit
}
