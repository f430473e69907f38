package ir

import (
	"strings"

	"github.com/signadot/neon-format/go-neon/value"
)

// Array is a sequence of items, written either in block form
//
//	key: value
//	- value
//
// or inline between brackets, braces or parentheses.
type Array struct {
	Position
	Items []*Item

	// Block is set for arrays written in block form.
	Block bool
	// Indentation of a block array relative to the enclosing block.
	Indentation string
	// Bracket is the opening character of an inline array.
	Bracket byte
}

// NewBlock returns a block array indented by indent relative to its parent.
func NewBlock(indent string, items ...*Item) *Array {
	return &Array{Position: noPos(), Items: items, Block: true, Indentation: indent}
}

// NewInline returns an inline array opened by bracket.
func NewInline(bracket byte, items ...*Item) *Array {
	return &Array{Position: noPos(), Items: items, Bracket: bracket}
}

// Item is an entry of an Array or of the attributes of an Entity. Key is
// nil for entries written without a key.
type Item struct {
	Position
	Key   Node
	Value Node
}

func NewItem(key, val Node) *Item {
	return &Item{Position: noPos(), Key: key, Value: val}
}

func (n *Item) ToValue() any { return n.Value.ToValue() }

func (n *Item) Children() []Node {
	if n.Key == nil {
		return []Node{n.Value}
	}
	return []Node{n.Key, n.Value}
}

func (n *Item) Text() (string, error) {
	return ItemsToInline([]*Item{n})
}

func (n *Array) Children() []Node {
	res := make([]Node, len(n.Items))
	for i, it := range n.Items {
		res[i] = it
	}
	return res
}

// ToValue returns []any when no item has a key and a *value.Map otherwise.
func (n *Array) ToValue() any {
	return itemsValue(n.Items, false)
}

func itemsValue(items []*Item, asMap bool) any {
	keyed := asMap
	for _, it := range items {
		if it.Key != nil {
			keyed = true
			break
		}
	}
	if !keyed {
		res := make([]any, len(items))
		for i, it := range items {
			res[i] = it.Value.ToValue()
		}
		return res
	}
	m := value.NewMap()
	for _, it := range items {
		v := it.Value.ToValue()
		if it.Key == nil {
			m.Append(v)
			continue
		}
		m.Set(it.Key.ToValue(), v)
	}
	return m
}

var closing = map[byte]string{'[': "]", '{': "}", '(': ")"}

func (n *Array) Text() (string, error) {
	if !n.Block {
		s, err := ItemsToInline(n.Items)
		if err != nil {
			return "", err
		}
		return string(n.Bracket) + s + closing[n.Bracket], nil
	}
	if len(n.Items) == 0 {
		return "[]", nil
	}
	s, err := ItemsToBlock(n.Items)
	if err != nil {
		return "", err
	}
	return IndentLines(s, n.Indentation), nil
}

// ItemsToInline renders items separated by ", ".
func ItemsToInline(items []*Item) (string, error) {
	buf := &strings.Builder{}
	for i, it := range items {
		if i > 0 {
			buf.WriteString(", ")
		}
		if it.Key != nil {
			k, err := it.Key.Text()
			if err != nil {
				return "", err
			}
			buf.WriteString(k)
			buf.WriteString(": ")
		}
		v, err := it.Value.Text()
		if err != nil {
			return "", err
		}
		buf.WriteString(v)
	}
	return buf.String(), nil
}

// ItemsToBlock renders items one per line, each line ending with a newline.
// Non-empty block arrays start on the line following their key.
func ItemsToBlock(items []*Item) (string, error) {
	buf := &strings.Builder{}
	for _, it := range items {
		if it.Key != nil {
			k, err := it.Key.Text()
			if err != nil {
				return "", err
			}
			buf.WriteString(k)
			buf.WriteByte(':')
		} else {
			buf.WriteByte('-')
		}
		v, err := it.Value.Text()
		if err != nil {
			return "", err
		}
		if a, ok := it.Value.(*Array); ok && a.Block && len(a.Items) != 0 {
			buf.WriteByte('\n')
			buf.WriteString(v)
			if !strings.HasSuffix(v, "\n") {
				buf.WriteByte('\n')
			}
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(v)
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}
