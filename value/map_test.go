package value

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapOrder(t *testing.T) {
	m := NewMap()
	m.Set("b", int64(1))
	m.Set("a", int64(2))
	m.Append("x")
	m.Set(10, "y")
	m.Append("z")
	m.Set("b", int64(3))

	want := []any{"b", "a", int64(0), int64(10), int64(11)}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("b"); v != int64(3) {
		t.Errorf("b = %v", v)
	}
	if !m.Has(10.7) {
		t.Errorf("float key not truncated")
	}
}

func TestMapDelete(t *testing.T) {
	m := MapOf("a", 1, "b", 2, "c", 3)
	m.Delete("b")
	m.Delete("nope")
	if diff := cmp.Diff([]any{"a", "c"}, m.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if v, ok := m.Get("c"); !ok || v != 3 {
		t.Errorf("c = %v, %v", v, ok)
	}
}

func TestMapIsList(t *testing.T) {
	tests := []struct {
		name string
		m    *Map
		want bool
	}{
		{"nil", nil, true},
		{"empty", NewMap(), true},
		{"seq", MapOf(0, "a", 1, "b"), true},
		{"gap", MapOf(0, "a", 2, "b"), false},
		{"order", MapOf(1, "a", 0, "b"), false},
		{"string", MapOf("0", "a"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsList(); got != tt.want {
				t.Errorf("IsList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapJSON(t *testing.T) {
	m := MapOf("z", int64(1), 3, []any{true, nil}, "a", MapOf())
	d, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"3":[true,null],"a":{}}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
}
