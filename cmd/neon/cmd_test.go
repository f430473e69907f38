package main

import (
	"bytes"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/neon-format/go-neon/update"
	"github.com/signadot/neon-format/go-neon/value"
)

func TestSetArg(t *testing.T) {
	u, err := update.New("db:\n\thost: x # host\n\tport: 1\n")
	if err != nil {
		t.Fatal(err)
	}
	doc := u.Node().ToValue()
	for _, a := range []string{"db.port=5432", "db.tags=[a, b]"} {
		doc, err = setArg(doc, a)
		if err != nil {
			t.Fatal(err)
		}
	}
	got, err := u.Reconcile(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := "db:\n\thost: x # host\n\tport: 5432\n\ttags:\n\t\t- a\n\t\t- b\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if _, err := setArg(doc, "novalue"); err == nil {
		t.Error("expected an error")
	}
}

func TestApplyJSONPatch(t *testing.T) {
	u, err := update.New("# app\nname: x\nwhen: 2020-01-02\nports: [1, 2]\n")
	if err != nil {
		t.Fatal(err)
	}
	ops, err := jsonpatch.DecodePatch([]byte(`[{"op": "replace", "path": "/name", "value": "y"}]`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := applyJSONPatch(u, ops)
	if err != nil {
		t.Fatal(err)
	}
	if want := "# app\nname: y\nwhen: 2020-01-02\nports: [1, 2]\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEvalExpr(t *testing.T) {
	doc := value.MapOf("db", value.MapOf("port", int64(5432)), "tags", []any{"a", "b"})
	for src, want := range map[string]any{
		"db.port":      int64(5432),
		"len(tags)":    int64(2),
		"doc.tags[1]":  "b",
		"db.port > 10": true,
	} {
		got, err := evalExpr(src, doc)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if !value.Equal(got, want) {
			t.Errorf("%s: got %#v want %#v", src, got, want)
		}
	}
}

func TestPrintLineDiff(t *testing.T) {
	buf := &bytes.Buffer{}
	printLineDiff(buf, "a: 1\nb: 2\n", "a: 1\nb: 3\n", false)
	if want := " a: 1\n-b: 2\n+b: 3\n"; buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}
