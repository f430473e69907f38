package ir

import (
	"testing"

	"github.com/signadot/neon-format/go-neon/value"
)

func lit(v any) *Literal { return NewLiteral(v) }

func TestArrayText(t *testing.T) {
	nested := NewBlock("\t",
		NewItem(nil, lit("x")),
		NewItem(nil, lit(int64(2))),
	)
	tests := []struct {
		name string
		n    Node
		want string
	}{
		{"inline-list", NewInline('[', NewItem(nil, lit(int64(1))), NewItem(nil, NewQuoted("a b"))), "[1, 'a b']"},
		{"inline-map", NewInline('{', NewItem(lit("a"), lit(true))), "{a: true}"},
		{"empty-block", NewBlock(""), "[]"},
		{"block", NewBlock("",
			NewItem(lit("a"), lit(int64(1))),
			NewItem(lit("b"), nested),
			NewItem(lit("c"), NewBlock("\t")),
		), "a: 1\nb:\n\t- x\n\t- 2\nc: []\n"},
		{"indented", NewBlock("  ", NewItem(nil, lit("x"))), "  - x\n"},
		{"entity", NewEntity(lit("Col"), NewItem(lit("type"), lit("int")), NewItem(nil, lit(nil))), "Col(type: int, null)"},
		{"chain", NewEntityChain(NewEntity(lit("A"), NewItem(nil, lit(int64(1)))), NewEntity(lit("B"))), "A(1)B()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.n.Text()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		name string
		n    Node
		want any
	}{
		{"list", NewInline('[', NewItem(nil, lit("a")), NewItem(nil, lit(int64(1)))), []any{"a", int64(1)}},
		{"map", NewBlock("", NewItem(lit("a"), lit(int64(1))), NewItem(nil, lit("x"))),
			value.MapOf("a", int64(1), 0, "x")},
		{"int-keys", NewInline('{', NewItem(lit(int64(3)), lit("x")), NewItem(nil, lit("y"))),
			value.MapOf(3, "x", 4, "y")},
		{"entity", NewEntity(lit("E"), NewItem(nil, lit(int64(1)))),
			value.NewEntity("E", value.MapOf(0, int64(1)))},
		{"chain", NewEntityChain(NewEntity(lit("A")), NewEntity(lit("B"))),
			value.NewEntity(value.Chain, value.MapOf(0, value.NewEntity("A", nil), 1, value.NewEntity("B", nil)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.ToValue(); !value.Equal(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTraverseCopy(t *testing.T) {
	a := lit("a")
	item := NewItem(lit("k"), a)
	root := NewBlock("", item)
	clone := Traverse(root, func(n Node) Node {
		c := Copy(n)
		c.Pos().Origin = n
		return c
	})
	ca := clone.(*Array)
	if ca == root || ca.Items[0] == item || ca.Items[0].Value == Node(a) {
		t.Fatal("clone shares nodes with the original")
	}
	if ca.Items[0].Value.Pos().Origin != Node(a) {
		t.Errorf("missing origin")
	}
	if root.Items[0] != item || item.Value != Node(a) || a.Origin != nil {
		t.Errorf("original tree modified")
	}
}

func TestEnclosingPath(t *testing.T) {
	// a:
	//   - x
	//   - y
	x := &Literal{Position: Position{StartPos: 5, EndPos: 5}, Value: "x"}
	y := &Literal{Position: Position{StartPos: 9, EndPos: 9}, Value: "y"}
	inner := &Array{Position: Position{StartPos: 3, EndPos: 9}, Block: true, Indentation: "  ",
		Items: []*Item{
			{Position: Position{StartPos: 3, EndPos: 5}, Value: x},
			{Position: Position{StartPos: 7, EndPos: 9}, Value: y},
		}}
	key := &Literal{Position: Position{StartPos: 0, EndPos: 0}, Value: "a"}
	root := &Array{Position: Position{StartPos: 0, EndPos: 9}, Block: true,
		Items: []*Item{{Position: Position{StartPos: 0, EndPos: 9}, Key: key, Value: inner}}}

	chain := Enclosing(root, 9)
	if len(chain) == 0 || chain[len(chain)-1] != Node(y) {
		t.Fatalf("got %v", chain)
	}
	if p := Path(chain); p != "$.a[1]" {
		t.Errorf("path %q", p)
	}
	if p := Path(Enclosing(root, 0)); p != "$" {
		t.Errorf("key path %q", p)
	}
	if n := Enclosing(root, 20); n != nil {
		t.Errorf("expected nothing, got %v", n)
	}
}
