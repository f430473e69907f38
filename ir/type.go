package ir

import "fmt"

type Type int

const (
	LiteralType Type = iota
	QuotedType
	ArrayType
	ItemType
	EntityType
	ChainType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LiteralType: "Literal",
		QuotedType:  "Quoted",
		ArrayType:   "Array",
		ItemType:    "Item",
		EntityType:  "Entity",
		ChainType:   "Chain",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Literal": LiteralType,
		"Quoted":  QuotedType,
		"Array":   ArrayType,
		"Item":    ItemType,
		"Entity":  EntityType,
		"Chain":   ChainType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		LiteralType,
		QuotedType,
		ArrayType,
		ItemType,
		EntityType,
		ChainType,
	}
}

// TypeOf returns the type of n.
func TypeOf(n Node) Type {
	switch n.(type) {
	case *Literal:
		return LiteralType
	case *Quoted:
		return QuotedType
	case *Array:
		return ArrayType
	case *Item:
		return ItemType
	case *Entity:
		return EntityType
	case *EntityChain:
		return ChainType
	}
	panic(fmt.Sprintf("ir: unknown node %T", n))
}
