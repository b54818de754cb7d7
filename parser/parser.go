package parser

import (
	"errors"

	"github.com/xiam/kisym/ast"
	"github.com/xiam/kisym/lexer"
)

// DefaultMaxDepth is the deepest list nesting accepted unless MaxDepth says
// otherwise.
const DefaultMaxDepth = 512

type config struct {
	maxDepth int
	arena    *ast.Arena
	lexOpts  []lexer.Option
}

// Option configures Parse.
type Option func(*config)

// MaxDepth limits how deeply lists may nest. Values below 1 are ignored.
func MaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithArena allocates every node from a.
func WithArena(a *ast.Arena) Option {
	return func(c *config) {
		c.arena = a
	}
}

// QuotedStrings lets atoms that start with a double quote contain
// whitespace and parentheses. See lexer.QuotedStrings.
func QuotedStrings(enabled bool) Option {
	return func(c *config) {
		c.lexOpts = append(c.lexOpts, lexer.QuotedStrings(enabled))
	}
}

type parser struct {
	src   *ast.Buffer
	toks  []lexer.Token
	pos   int
	arena *ast.Arena

	maxDepth int
}

// Parse reads every top-level node of src. If an error occurs the returned
// error is of type *SyntaxError.
func Parse(src *ast.Buffer, opts ...Option) (*ast.File, error) {
	cfg := &config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}

	p := &parser{
		src:      src,
		arena:    cfg.arena,
		maxDepth: cfg.maxDepth,
	}

	lx := lexer.New(src.Bytes(ast.Span{Begin: 0, End: src.Len()}), cfg.lexOpts...)
	if err := lx.Scan(); err != nil {
		var se *lexer.ScanError
		if errors.As(err, &se) {
			return nil, p.errorAtOffset(se.Offset, se.Err)
		}
		return nil, err
	}
	p.toks = lx.Tokens()

	nodes, err := p.parseSeq(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); !tok.Is(lexer.TokenEOF) {
		return nil, p.errorAt(tok, ErrUnexpectedToken)
	}

	return &ast.File{Src: src, Nodes: ast.Chain(nodes)}, nil
}

// ParseBytes is like Parse for a buffer created from data.
func ParseBytes(data []byte, opts ...Option) (*ast.File, error) {
	return Parse(ast.NewBuffer("", data), opts...)
}

func (p *parser) peek() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) next() lexer.Token {
	tok := p.toks[p.pos]
	if !tok.Is(lexer.TokenEOF) {
		p.pos++
	}
	return tok
}

// parseSeq reads the sibling sequence of one nesting level. It stops at the
// end of the input or at a closing parenthesis, which is left unconsumed
// for the caller.
func (p *parser) parseSeq(depth int) ([]*ast.Node, error) {
	var nodes []*ast.Node
	for {
		tok := p.peek()

		switch tok.Type() {
		case lexer.TokenEOF, lexer.TokenCloseList:
			return nodes, nil

		case lexer.TokenWhitespace, lexer.TokenNewLine:
			p.next()

		case lexer.TokenOpenList:
			node, err := p.parseList(depth + 1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		case lexer.TokenAtom:
			p.next()
			begin, end := tok.Offsets()
			node := p.arena.NewAtom(ast.ClassifyAtom(tok.Text()), tok.Text(), ast.Span{Begin: begin, End: end})
			nodes = append(nodes, node)

		default:
			return nil, p.errorAt(tok, ErrUnexpectedToken)
		}
	}
}

func (p *parser) parseList(depth int) (*ast.Node, error) {
	open := p.next()
	if depth > p.maxDepth {
		return nil, p.errorAt(open, ErrTooDeep)
	}

	list, err := p.parseSeq(depth)
	if err != nil {
		return nil, err
	}

	closing := p.next()
	if !closing.Is(lexer.TokenCloseList) {
		return nil, p.errorAt(open, ErrUnexpectedEOF)
	}

	begin, _ := open.Offsets()
	_, end := closing.Offsets()
	return p.arena.NewList(ast.Span{Begin: begin, End: end}, list), nil
}

func (p *parser) errorAt(tok lexer.Token, err error) error {
	begin, _ := tok.Offsets()
	return p.errorAtOffset(begin, err)
}

func (p *parser) errorAtOffset(offset int, err error) error {
	return &SyntaxError{
		Filename: p.src.Name(),
		Offset:   offset,
		Pos:      p.src.Position(offset),
		Err:      err,
	}
}
