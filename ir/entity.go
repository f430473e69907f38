package ir

import "github.com/signadot/neon-format/go-neon/value"

// Entity is a value followed by attributes in parentheses, as in
// `Column(type: int, nullable)`.
type Entity struct {
	Position
	Value      Node
	Attributes []*Item
}

func NewEntity(v Node, attrs ...*Item) *Entity {
	return &Entity{Position: noPos(), Value: v, Attributes: attrs}
}

func (n *Entity) ToValue() any {
	attrs := itemsValue(n.Attributes, true).(*value.Map)
	return value.NewEntity(n.Value.ToValue(), attrs)
}

func (n *Entity) Children() []Node {
	res := []Node{n.Value}
	for _, a := range n.Attributes {
		res = append(res, a)
	}
	return res
}

func (n *Entity) Text() (string, error) {
	v, err := n.Value.Text()
	if err != nil {
		return "", err
	}
	attrs, err := ItemsToInline(n.Attributes)
	if err != nil {
		return "", err
	}
	return v + "(" + attrs + ")", nil
}

// EntityChain is a sequence of entities written one after another, as in
// `Foo(1)Bar(2)`.
type EntityChain struct {
	Position
	Chain []*Entity
}

func NewEntityChain(chain ...*Entity) *EntityChain {
	return &EntityChain{Position: noPos(), Chain: chain}
}

func (n *EntityChain) ToValue() any {
	attrs := value.NewMap()
	for _, e := range n.Chain {
		attrs.Append(e.ToValue())
	}
	return value.NewEntity(value.Chain, attrs)
}

func (n *EntityChain) Children() []Node {
	res := make([]Node, len(n.Chain))
	for i, e := range n.Chain {
		res[i] = e
	}
	return res
}

func (n *EntityChain) Text() (string, error) {
	res := ""
	for _, e := range n.Chain {
		s, err := e.Text()
		if err != nil {
			return "", err
		}
		res += s
	}
	return res, nil
}
