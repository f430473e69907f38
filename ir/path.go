package ir

import (
	"strconv"
	"strings"

	"github.com/signadot/neon-format/go-neon/value"
)

// Enclosing returns the chain of nodes from root down to the innermost node
// whose token range contains the token index pos, or nil if none does.
func Enclosing(root Node, pos int) []Node {
	var res []Node
	Walk(root, func(n Node) bool {
		p := n.Pos()
		if p.StartPos == NoPos || pos < p.StartPos || pos > p.EndPos {
			return false
		}
		res = append(res, n)
		return true
	})
	return res
}

// Path renders the location of the last node of chain, as returned by
// Enclosing, in the form `$.database.hosts[0]`.
func Path(chain []Node) string {
	buf := &strings.Builder{}
	buf.WriteString("$")
	index := 0
	for i, n := range chain {
		it, ok := n.(*Item)
		if !ok {
			index = 0
			if i+1 < len(chain) {
				index = itemIndex(n, chain[i+1])
			}
			continue
		}
		if i+1 < len(chain) && chain[i+1] == it.Key {
			break
		}
		if it.Key == nil {
			buf.WriteString("[" + strconv.Itoa(index) + "]")
			continue
		}
		f := value.KeyString(value.NormKey(it.Key.ToValue()))
		buf.WriteByte('.')
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			buf.WriteString(f)
			continue
		}
		buf.WriteString("'" + strings.ReplaceAll(f, "'", "\\'") + "'")
	}
	return buf.String()
}

func itemIndex(parent, child Node) int {
	var items []*Item
	switch x := parent.(type) {
	case *Array:
		items = x.Items
	case *Entity:
		items = x.Attributes
	}
	for i, it := range items {
		if Node(it) == child {
			return i
		}
	}
	return 0
}
