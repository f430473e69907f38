package ir

import (
	"strings"
	"testing"
)

func TestParseQuoted(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		err  bool
	}{
		{`'abc'`, "abc", false},
		{`'it''s'`, "it's", false},
		{`'a\nb'`, `a\nb`, false},
		{`""`, "", false},
		{`"a\tb\\c\"d\/"`, "a\tb\\c\"d/", false},
		{`"é\u{1F600}\x41\_"`, "é😀A\u00a0", false},
		{`"😀"`, "😀", false},
		{`"\q"`, "", true},
		{`"\u{110000}"`, "", true},
		{"'''\n\tline1\n\t  line2\n\t'''", "line1\n  line2", false},
		{"'''\n  a\n\n  b\n  '''", "a\n\nb", false},
		{"\"\"\"\n\ta\\tb\n\t\"\"\"", "a\tb", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseQuoted(tt.raw)
			if tt.err {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuotedText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"it's", "'it''s'"},
		{"", "''"},
		{"a\rb", `"a\rb"`},
		{"a\nb", "'''\n\ta\n\tb\n'''"},
		{"a\n'''", "\"\"\"\n\ta\n\t'''\n\"\"\""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewQuoted(tt.in).Text()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuotedRoundTrip(t *testing.T) {
	ins := []string{
		"plain",
		"with 'quotes'",
		"two\nlines",
		"\nleading newline",
		"trailing newline\n",
		"  indented first\nsecond",
		"\tindented first\nsecond",
		"x\n  '''\ny",
		"x\n\"\"\"\ny",
		"back\\slash\nand \"quote\"",
		"cr\r\nlf",
	}
	for _, in := range ins {
		t.Run(strings.ReplaceAll(in, "\n", "|"), func(t *testing.T) {
			s, err := NewQuoted(in).Text()
			if err != nil {
				t.Fatal(err)
			}
			back, err := ParseQuoted(s)
			if err != nil {
				t.Fatalf("%q: %v", s, err)
			}
			if back != in {
				t.Errorf("%q -> %q -> %q", in, s, back)
			}
		})
	}
}
