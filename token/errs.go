package token

import (
	"errors"
	"fmt"
)

var (
	ErrLex     = errors.New("lex error")
	ErrSyntax  = errors.New("syntax error")
	ErrBadUTF8 = errors.New("bad utf8")
)

// SyntaxErr is the error produced by the tokenizer and by [Stream.Error].
// Err is one of ErrLex, ErrBadUTF8 or ErrSyntax.
type SyntaxErr struct {
	Err  error
	Msg  string
	Line int
	Col  int
	// Pos is the index of the offending token.
	Pos int
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s on line %d, column %d.", e.Msg, e.Line, e.Col)
}
