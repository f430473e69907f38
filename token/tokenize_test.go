package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tok struct {
	Kind  string
	Value string
}

func kinds(ts *Stream) []tok {
	var res []tok
	for _, t := range ts.Tokens() {
		res = append(res, tok{t.Kind.String(), t.Value})
	}
	return res
}

func TestTokenizeSimple(t *testing.T) {
	ts, err := Tokenize("a: 1\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Value: "a", Offset: 0, Kind: TLiteral},
		{Value: ":", Offset: 1, Kind: TColon},
		{Value: " ", Offset: 2, Kind: TWhitespace},
		{Value: "1", Offset: 3, Kind: TLiteral},
		{Value: "\n", Offset: 4, Kind: TNewline},
	}
	if diff := cmp.Diff(want, ts.Tokens()); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []tok
	}{
		{"", nil},
		{"a b: c:d", []tok{{"LITERAL", "a b"}, {"':'", ":"}, {"WHITESPACE", " "}, {"LITERAL", "c:d"}}},
		{"- -1", []tok{{"'-'", "-"}, {"WHITESPACE", " "}, {"LITERAL", "-1"}}},
		{"[a, 'b''c']", []tok{
			{"'['", "["}, {"LITERAL", "a"}, {"','", ","}, {"WHITESPACE", " "},
			{"STRING", "'b''c'"}, {"']'", "]"},
		}},
		{"x # note\n\n\ty", []tok{
			{"LITERAL", "x"}, {"WHITESPACE", " "}, {"COMMENT", "# note"},
			{"NEWLINE", "\n\n"}, {"WHITESPACE", "\t"}, {"LITERAL", "y"},
		}},
		{"a#b", []tok{{"LITERAL", "a#b"}}},
		{"a #b", []tok{{"LITERAL", "a"}, {"WHITESPACE", " "}, {"COMMENT", "#b"}}},
		{`"q\"x"=1`, []tok{{"STRING", `"q\"x"`}, {"'='", "="}, {"LITERAL", "1"}}},
		{"Foo(x)", []tok{{"LITERAL", "Foo"}, {"'('", "("}, {"LITERAL", "x"}, {"')'", ")"}}},
		{"'''\n  a\n  '''", []tok{{"STRING", "'''\n  a\n  '''"}}},
		{"a\r\nb", []tok{{"LITERAL", "a"}, {"NEWLINE", "\n"}, {"LITERAL", "b"}}},
		{"http://x.y", []tok{{"LITERAL", "http://x.y"}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ts, err := Tokenize(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, kinds(ts)); diff != "" {
				t.Errorf("tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		err  error
		want string
	}{
		{"a: 'open\n", ErrLex, "Unexpected ''open\\n' on line 1, column 4."},
		{"a\nb: `x", ErrLex, "Unexpected '`x' on line 2, column 4."},
		{"a: \xff", ErrBadUTF8, "Invalid UTF-8 sequence on line 1, column 4."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Tokenize(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if err.Error() != tt.want {
				t.Errorf("got %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func concat(ts *Stream) string {
	var b strings.Builder
	for _, t := range ts.Tokens() {
		b.WriteString(t.Value)
	}
	return b.String()
}

func TestTokenizeCoverage(t *testing.T) {
	ins := []string{
		"a: 1\nb:\n\t- x\n\t- [1, 2, {c: d}]\n",
		"# only a comment",
		"e: Column(type: int)Next()\n",
		"s: \"\"\"\n\tline\n\t\"\"\"\nt: 2",
		"  weird   spacing  :  yes  \n\n\n",
	}
	for _, in := range ins {
		ts, err := Tokenize(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got := concat(ts); got != in {
			t.Errorf("got %q, want %q", got, in)
		}
		off := 0
		for _, tk := range ts.Tokens() {
			if tk.Offset != off {
				t.Errorf("%q: token %s at %d, want %d", in, tk.Info(), tk.Offset, off)
			}
			off = tk.End()
		}
	}
}

func FuzzTokenizeCoverage(f *testing.F) {
	for _, s := range []string{"a: 1\n", "- [x, y]", "'a''b'", "k: v # c", "x\r\ny"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		ts, err := Tokenize(in)
		if err != nil {
			return
		}
		if got, want := concat(ts), strings.ReplaceAll(in, "\r", ""); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestRequiresDelimiters(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"abc", false},
		{"a b", false},
		{"true", true},
		{"NULL", true},
		{"Yes", true},
		{"yess", false},
		{"12", true},
		{"-1", true},
		{".5", true},
		{"+x", false},
		{"1a", true},
		{"a\tb", true},
		{"a: b", true},
		{"a:b", false},
		{"[x]", true},
		{"#x", true},
		{"x#", false},
		{"x ", true},
		{"- x", true},
		{"-x", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RequiresDelimiters(tt.in); got != tt.want {
				t.Errorf("RequiresDelimiters(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
