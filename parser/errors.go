package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/kisym/ast"
	"github.com/xiam/kisym/lexer"
)

var (
	ErrUnexpectedEOF      = errors.New("unexpected EOF")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrTooDeep            = errors.New("nesting too deep")
	ErrUnterminatedString = lexer.ErrUnterminatedString
)

// SyntaxError records an error and the position it occurred on.
type SyntaxError struct {
	Filename string
	Offset   int
	Pos      ast.Pos
	Err      error
}

func (e *SyntaxError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%v: %v", e.Filename, e.Pos, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Pos, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
