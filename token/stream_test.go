package token

import (
	"errors"
	"testing"
)

func mustTokenize(t *testing.T, in string) *Stream {
	t.Helper()
	ts, err := Tokenize(in)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestStreamNavigation(t *testing.T) {
	ts := mustTokenize(t, "a: # c\n  b\n")
	if !ts.IsNext(TLiteral) {
		t.Fatal("expected literal")
	}
	if tk, ok := ts.Consume(TLiteral); !ok || tk.Value != "a" {
		t.Fatalf("consume a: %v %v", tk, ok)
	}
	if _, ok := ts.Consume(TComma); ok {
		t.Fatal("consumed a comma")
	}
	if _, ok := ts.Consume(TColon, TEquals); !ok {
		t.Fatal("expected colon")
	}
	// whitespace and comment are skipped, newline is not
	if ts.IsNext(TLiteral) || !ts.IsNext(TNewline) {
		t.Fatal("expected newline")
	}
	if ts.Pos() != 4 {
		t.Errorf("pos %d", ts.Pos())
	}
	ts.Consume(TNewline)
	if ts.Indentation() != "" {
		t.Errorf("indentation before skipping whitespace: %q", ts.Indentation())
	}
	ts.IsNext()
	if ts.Indentation() != "  " {
		t.Errorf("indentation %q", ts.Indentation())
	}
	ts.Consume(TLiteral)
	ts.Consume(TNewline)
	if ts.IsNext() {
		t.Error("tokens left")
	}
}

func TestStreamIndentationAtStart(t *testing.T) {
	ts := mustTokenize(t, "\tx")
	ts.IsNext()
	if got := ts.Indentation(); got != "\t" {
		t.Errorf("got %q", got)
	}
}

func TestStreamSkip(t *testing.T) {
	// 0:a 1:: 2:ws 3:b 4:ws 5:# c 6:\n 7:ws 8:d
	ts := mustTokenize(t, "a: b # c\n  d")
	if got := ts.SkipRight(3, TWhitespace, TComment); got != 5 {
		t.Errorf("SkipRight = %d", got)
	}
	if got := ts.SkipRight(5, TNewline); got != 6 {
		t.Errorf("SkipRight newline = %d", got)
	}
	if got := ts.SkipLeft(8, TWhitespace); got != 7 {
		t.Errorf("SkipLeft = %d", got)
	}
	if got := ts.SkipLeft(3, TNewline); got != 3 {
		t.Errorf("SkipLeft no move = %d", got)
	}
	if got := ts.SkipRight(8, TWhitespace); got != 8 {
		t.Errorf("SkipRight at end = %d", got)
	}
}

func TestStreamErrors(t *testing.T) {
	ts := mustTokenize(t, "a:\n  [b\n")
	tests := []struct {
		pos  int
		want string
	}{
		{0, "Unexpected 'a' on line 1, column 1."},
		{2, `Unexpected '\n' on line 1, column 3.`},
		{5, "Unexpected 'b' on line 2, column 4."},
		{7, "Unexpected end on line 3, column 1."},
	}
	for _, tt := range tests {
		err := ts.Error(tt.pos)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%d: not a syntax error: %v", tt.pos, err)
		}
		if err.Error() != tt.want {
			t.Errorf("%d: got %q, want %q", tt.pos, err.Error(), tt.want)
		}
	}
	err := ts.Errorf(5, "Bad %s", "thing")
	var se *SyntaxErr
	if !errors.As(err, &se) || se.Line != 2 || se.Col != 4 || se.Msg != "Bad thing" {
		t.Errorf("got %#v", err)
	}
	ts.Consume(TLiteral)
	if got := ts.Error(CurrentPos).Error(); got != "Unexpected ':' on line 1, column 2." {
		t.Errorf("current: %q", got)
	}
}

func TestStreamErrorClip(t *testing.T) {
	long := "'0123456789012345678901234567890123456789xyz'"
	ts := mustTokenize(t, long)
	want := "Unexpected '" + long[:40] + "' on line 1, column 1."
	if got := ts.Error(0).Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
