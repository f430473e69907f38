package ir

import "slices"

// NoPos marks a node which does not come from a token stream.
const NoPos = -1

// Position is the token range a node was parsed from. StartPos and EndPos
// are indices into the token stream, both inclusive.
//
// Origin links a node of a new or cloned tree to the node of the parsed
// tree it stands for. Parsed trees never set it.
type Position struct {
	StartPos int
	EndPos   int
	Origin   Node
}

func (p *Position) Pos() *Position { return p }

// HasRange reports whether the position refers to tokens of a stream.
func (p *Position) HasRange() bool {
	return p.StartPos != NoPos
}

func noPos() Position {
	return Position{StartPos: NoPos, EndPos: NoPos}
}

// Node is a node of a NEON syntax tree: one of *Literal, *Quoted, *Array,
// *Item, *Entity or *EntityChain.
type Node interface {
	// ToValue returns the value the node denotes, see package value.
	ToValue() any
	// Text renders the node as NEON.
	Text() (string, error)
	Children() []Node
	Pos() *Position

	node()
}

func (*Literal) node()     {}
func (*Quoted) node()      {}
func (*Array) node()       {}
func (*Item) node()        {}
func (*Entity) node()      {}
func (*EntityChain) node() {}

// Copy returns a shallow copy of n. Child slices are copied so that
// replacing the children of the result leaves n untouched.
func Copy(n Node) Node {
	switch x := n.(type) {
	case *Literal:
		c := *x
		return &c
	case *Quoted:
		c := *x
		return &c
	case *Array:
		c := *x
		c.Items = slices.Clone(x.Items)
		return &c
	case *Item:
		c := *x
		return &c
	case *Entity:
		c := *x
		c.Attributes = slices.Clone(x.Attributes)
		return &c
	case *EntityChain:
		c := *x
		c.Chain = slices.Clone(x.Chain)
		return &c
	}
	return n
}

// Text renders n, returning the empty string for a nil node.
func Text(n Node) (string, error) {
	if n == nil {
		return "", nil
	}
	return n.Text()
}
