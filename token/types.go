package token

import (
	"fmt"
	"strconv"
)

// Kind classifies a token. It is either one of the named kinds below or a
// punctuation kind built with [Punct], which carries the character itself.
type Kind uint16

const (
	TInvalid Kind = iota
	TString
	TLiteral
	TNewline
	TWhitespace
	TComment
)

const punctBit Kind = 0x100

const (
	TComma   = punctBit | ','
	TColon   = punctBit | ':'
	TEquals  = punctBit | '='
	TLSquare = punctBit | '['
	TRSquare = punctBit | ']'
	TLCurl   = punctBit | '{'
	TRCurl   = punctBit | '}'
	TLParen  = punctBit | '('
	TRParen  = punctBit | ')'
	TDash    = punctBit | '-'
)

const punctChars = ",:=[]{}()-"

// Punct returns the kind of the punctuation token c, or TInvalid if c is
// not a punctuation character.
func Punct(c byte) Kind {
	if !isPunct(c) {
		return TInvalid
	}
	return punctBit | Kind(c)
}

func isPunct(c byte) bool {
	for i := 0; i < len(punctChars); i++ {
		if punctChars[i] == c {
			return true
		}
	}
	return false
}

// IsPunct reports whether k is a punctuation kind.
func (k Kind) IsPunct() bool {
	return k&punctBit != 0
}

// Char returns the punctuation character of k, or 0 for named kinds.
func (k Kind) Char() byte {
	if !k.IsPunct() {
		return 0
	}
	return byte(k &^ punctBit)
}

func (k Kind) String() string {
	switch k {
	case TString:
		return "STRING"
	case TLiteral:
		return "LITERAL"
	case TNewline:
		return "NEWLINE"
	case TWhitespace:
		return "WHITESPACE"
	case TComment:
		return "COMMENT"
	}
	if k.IsPunct() {
		return strconv.QuoteRune(rune(k.Char()))
	}
	return "INVALID"
}

// Token is a slice of the source text together with its byte offset and
// kind. Tokens produced by [Tokenize] are contiguous and cover the input.
type Token struct {
	Value  string
	Offset int
	Kind   Kind
}

// End returns the offset just past the token.
func (t *Token) End() int {
	return t.Offset + len(t.Value)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s @%d %q", t.Kind, t.Offset, t.Value)
}

func (t *Token) String() string {
	return t.Value
}
