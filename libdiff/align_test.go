package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func eqString(a, b string) bool { return a == b }

func script(steps []Step[string]) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		switch s.Op {
		case Keep:
			parts[i] = "=" + s.Old
		case Add:
			parts[i] = "+" + s.New
		case Remove:
			parts[i] = "-" + s.Old
		}
	}
	return strings.Join(parts, " ")
}

func checkValid(t *testing.T, old, new []string, steps []Step[string]) {
	t.Helper()
	var gotOld, gotNew []string
	for _, s := range steps {
		switch s.Op {
		case Keep:
			if s.Old != s.New {
				t.Errorf("keep of unequal %q %q", s.Old, s.New)
			}
			gotOld = append(gotOld, s.Old)
			gotNew = append(gotNew, s.New)
		case Remove:
			gotOld = append(gotOld, s.Old)
		case Add:
			gotNew = append(gotNew, s.New)
		}
	}
	if diff := cmp.Diff(old, gotOld, cmpEmpty); diff != "" {
		t.Errorf("old sequence (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(new, gotNew, cmpEmpty); diff != "" {
		t.Errorf("new sequence (-want +got):\n%s", diff)
	}
}

var cmpEmpty = cmp.Comparer(func(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
})

func TestAlign(t *testing.T) {
	cases := []struct {
		old, new string
		want     string
	}{
		{"a b c", "a b c", "=a =b =c"},
		{"a b", "a b c", "=a =b +c"},
		{"a b c", "a c", "=a -b =c"},
		{"", "a", "+a"},
		{"a", "", "-a"},
		{"", "", ""},
		{"x a", "a", "-x =a"},
	}
	for _, c := range cases {
		old, new := strings.Fields(c.old), strings.Fields(c.new)
		steps := Align(old, new, eqString)
		checkValid(t, old, new, steps)
		if got := script(steps); got != c.want {
			t.Errorf("%q -> %q: got %q want %q", c.old, c.new, got, c.want)
		}
	}
}

func TestAlignValid(t *testing.T) {
	cases := [][2]string{
		{"a b c d e", "e d c b a"},
		{"a a a b", "b a a"},
		{"k1 k2 k3", "k4 k5"},
		{"a b a b a b", "b a b a"},
	}
	for _, c := range cases {
		old, new := strings.Fields(c[0]), strings.Fields(c[1])
		checkValid(t, old, new, Align(old, new, eqString))
	}
}

func TestAlignPredicateOrder(t *testing.T) {
	type item struct {
		name   string
		origin *item
	}
	a, b := &item{name: "a"}, &item{name: "b"}
	na := &item{name: "a2", origin: a}
	nc := &item{name: "c"}
	steps := Align([]*item{a, b}, []*item{na, nc}, func(x, y *item) bool {
		return y.origin == x
	})
	var ops []Op
	for _, s := range steps {
		ops = append(ops, s.Op)
	}
	want := []Op{Keep, Remove, Add}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("ops (-want +got):\n%s", diff)
	}
}
