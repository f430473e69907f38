package token

import (
	"fmt"
	"slices"
	"strings"
)

// CurrentPos selects the stream cursor in [Stream.Error] and [Stream.Errorf].
const CurrentPos = -1

// Stream is a cursor over a token sequence. Lookahead skips comments and
// inline whitespace, but never newlines, which are significant.
//
// The cursor only moves forward.
type Stream struct {
	toks []Token
	pos  int
}

func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

func (s *Stream) Tokens() []Token {
	return s.toks
}

func (s *Stream) Pos() int {
	return s.pos
}

func (s *Stream) kindAt(i int) Kind {
	if i < 0 || i >= len(s.toks) {
		return TInvalid
	}
	return s.toks[i].Kind
}

// IsNext skips any comment and whitespace tokens at the cursor and reports
// whether the next token has one of the given kinds. With no kinds it
// reports whether any token remains. The skipped tokens are not revisited.
func (s *Stream) IsNext(kinds ...Kind) bool {
	for k := s.kindAt(s.pos); k == TComment || k == TWhitespace; k = s.kindAt(s.pos) {
		s.pos++
	}
	if s.pos >= len(s.toks) {
		return false
	}
	if len(kinds) == 0 {
		return true
	}
	return slices.Contains(kinds, s.toks[s.pos].Kind)
}

// Consume returns the next token and advances past it if it has one of the
// given kinds.
func (s *Stream) Consume(kinds ...Kind) (Token, bool) {
	if !s.IsNext(kinds...) {
		return Token{}, false
	}
	t := s.toks[s.pos]
	s.pos++
	return t, true
}

// Indentation returns the leading whitespace of the current line if the
// cursor sits right after it, and "" otherwise.
func (s *Stream) Indentation() string {
	if s.pos == 0 || s.kindAt(s.pos-1) != TWhitespace {
		return ""
	}
	if s.pos >= 2 && s.kindAt(s.pos-2) != TNewline {
		return ""
	}
	return s.toks[s.pos-1].Value
}

// SkipLeft moves pos left while the preceding token has one of kinds.
func (s *Stream) SkipLeft(pos int, kinds ...Kind) int {
	for pos > 0 && slices.Contains(kinds, s.kindAt(pos-1)) {
		pos--
	}
	return pos
}

// SkipRight moves pos right while the following token has one of kinds.
func (s *Stream) SkipRight(pos int, kinds ...Kind) int {
	for pos+1 < len(s.toks) && slices.Contains(kinds, s.kindAt(pos+1)) {
		pos++
	}
	return pos
}

// Error returns a *SyntaxErr naming the token at pos.
func (s *Stream) Error(pos int) error {
	if pos == CurrentPos {
		pos = s.pos
	}
	msg := "Unexpected end"
	if pos < len(s.toks) {
		v := strings.ReplaceAll(clip(s.toks[pos].Value, 40), "\n", `\n`)
		msg = "Unexpected '" + v + "'"
	}
	return s.errorAt(pos, msg)
}

// Errorf returns a *SyntaxErr with a formatted message located at the
// token at pos.
func (s *Stream) Errorf(pos int, format string, args ...any) error {
	if pos == CurrentPos {
		pos = s.pos
	}
	return s.errorAt(pos, fmt.Sprintf(format, args...))
}

func (s *Stream) errorAt(pos int, msg string) *SyntaxErr {
	var b strings.Builder
	for i := 0; i < pos && i < len(s.toks); i++ {
		b.WriteString(s.toks[i].Value)
	}
	d := b.String()
	line, col := LineCol(d, len(d))
	return &SyntaxErr{Err: ErrSyntax, Msg: msg, Line: line, Col: col, Pos: pos}
}
