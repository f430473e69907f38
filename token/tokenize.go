package token

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/signadot/neon-format/go-neon/debug"
)

// Tokenize splits input into tokens covering it exactly once. Carriage
// returns are dropped first and all offsets refer to the normalized text.
//
// Input that is not valid UTF-8 fails with an error wrapping ErrBadUTF8;
// input that cannot be classified fails with an error wrapping ErrLex. Both
// are *SyntaxErr values.
func Tokenize(input string) (*Stream, error) {
	input = strings.ReplaceAll(input, "\r", "")
	if !utf8.ValidString(input) {
		off := firstInvalid(input)
		line, col := LineCol(input, off)
		return nil, &SyntaxErr{Err: ErrBadUTF8, Msg: "Invalid UTF-8 sequence", Line: line, Col: col}
	}
	var toks []Token
	i := 0
	for i < len(input) {
		end, kind := next(input, i)
		if end == i {
			break
		}
		toks = append(toks, Token{Value: input[i:end], Offset: i, Kind: kind})
		i = end
	}
	ts := NewStream(toks)
	if i != len(input) {
		rest := strings.ReplaceAll(clip(input[i:], 40), "\n", `\n`)
		err := ts.errorAt(len(toks), "Unexpected '"+rest+"'")
		err.Err = ErrLex
		return nil, err
	}
	if debug.Tokens() {
		PrintTokens(os.Stderr, toks, "tokenize")
	}
	return ts, nil
}

// next matches one token at s[i] trying each kind in precedence order.
func next(s string, i int) (int, Kind) {
	if end := scanString(s, i); end > i {
		return end, TString
	}
	if end := scanLiteral(s, i); end > i {
		return end, TLiteral
	}
	c := s[i]
	switch {
	case isPunct(c):
		return i + 1, Punct(c)
	case c == '#':
		end := strings.IndexByte(s[i:], '\n')
		if end < 0 {
			return len(s), TComment
		}
		return i + end, TComment
	case c == '\n':
		return runOf(s, i, "\n"), TNewline
	case c == ' ' || c == '\t':
		return runOf(s, i, " \t"), TWhitespace
	}
	return i, TInvalid
}

func runOf(s string, i int, set string) int {
	for i < len(s) && in(s[i], set) {
		i++
	}
	return i
}

func firstInvalid(s string) int {
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i
		}
		i += sz
	}
	return len(s)
}
