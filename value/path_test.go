package value

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGet(t *testing.T) {
	doc := MapOf(
		"db", MapOf("hosts", []any{"a", "b"}),
		int64(5), "five",
		"col", NewEntity("Column", MapOf("type", "int")),
	)
	tests := []struct {
		path string
		want any
		err  bool
	}{
		{"db.hosts.1", "b", false},
		{"5", "five", false},
		{"col.type", "int", false},
		{"db.nope", nil, true},
		{"db.hosts.2", nil, true},
		{"db.hosts.1.x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Get(doc, ParsePath(tt.path))
			if tt.err {
				if !errors.Is(err, ErrPath) {
					t.Fatalf("expected ErrPath, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSet(t *testing.T) {
	doc := MapOf("a", int64(1))
	res, err := Set(doc, ParsePath("b.c"), "x")
	if err != nil {
		t.Fatal(err)
	}
	want := MapOf("a", int64(1), "b", MapOf("c", "x"))
	if !Equal(res, want) {
		t.Errorf("got %v", res)
	}
	if _, err := Set(MapOf("l", []any{}), ParsePath("l.0"), "x"); !errors.Is(err, ErrPath) {
		t.Errorf("expected ErrPath growing a list, got %v", err)
	}
	if _, err := Set("s", ParsePath("a"), "x"); !errors.Is(err, ErrPath) {
		t.Errorf("expected ErrPath indexing a string, got %v", err)
	}
}

func TestKeepOrder(t *testing.T) {
	when := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	ref := MapOf("z", int64(1), "a", when, 0, "zero")
	v, err := FromJSON([]byte(`{"0":"zero","a":"2020-01-02T00:00:00Z","new":true,"z":2}`))
	if err != nil {
		t.Fatal(err)
	}
	got := KeepOrder(v, ref)
	want := MapOf("z", int64(2), "a", when, 0, "zero", "new", true)
	if !Equal(got, want) {
		t.Errorf("got %s", cmp.Diff(want, got, cmp.Comparer(Equal)))
	}
}
