package symlib

import (
	"errors"
	"fmt"

	"github.com/xiam/kisym/ast"
)

// ErrSchema is wrapped by every *SchemaError.
var ErrSchema = errors.New("schema mismatch")

// SchemaError reports where a document stops following the expected
// library layout.
type SchemaError struct {
	Filename string
	Offset   int
	Pos      ast.Pos

	// What names the element being checked, such as "document tag" or
	// "version field".
	What     string
	Expected string
	Found    string
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("%v: %v: expected %s", e.Pos, ErrSchema, e.What)
	if e.Filename != "" {
		msg = e.Filename + ":" + msg
	}
	if e.Expected != "" {
		msg += fmt.Sprintf(" %q", e.Expected)
	}
	return msg + ", found " + e.Found
}

func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// describe summarises a node for error messages.
func describe(n *ast.Node) string {
	switch {
	case n == nil:
		return "nothing"
	case n.IsAtom():
		return fmt.Sprintf("%v %q", n.Type(), n.Text())
	}
	if tag, ok := n.Tag(); ok {
		return fmt.Sprintf("list (%s ...)", tag)
	}
	return "list"
}
