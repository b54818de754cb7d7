package lexer

import (
	"errors"
	"fmt"
)

// ErrUnterminatedString is returned when a quoted atom reaches the end of
// the input before its closing quote. It only happens with QuotedStrings.
var ErrUnterminatedString = errors.New("unterminated string")

// ScanError records an error and the position it occurred on.
type ScanError struct {
	Offset       int
	Line, Column int
	Err          error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

type lexState func(*Lexer) lexState

// Option configures a Lexer.
type Option func(*Lexer)

// QuotedStrings makes an atom that starts with a double quote extend to the
// matching closing quote, so it may contain whitespace and parentheses. A
// backslash skips the byte that follows it. No escape sequence is decoded.
func QuotedStrings(enabled bool) Option {
	return func(lx *Lexer) {
		lx.quoted = enabled
	}
}

// Lexer represents a lexical analyzer working on an in-memory byte slice.
type Lexer struct {
	src    []byte
	quoted bool

	tokens  []Token
	lastErr error

	start  int
	offset int

	lines     int
	lineStart int
}

// New initializes a Lexer object
func New(src []byte, opts ...Option) *Lexer {
	lx := &Lexer{src: src}
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// Tokens returns the tokens found by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan runs the lexer over the whole input. On success the last token is
// always of type TokenEOF.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, NewToken(
		tt,
		string(lx.src[lx.start:lx.offset]),
		lx.start, lx.offset,
		lx.lines+1, lx.start-lx.lineStart+1,
	))

	for i := lx.start; i < lx.offset; i++ {
		if isNewLine(lx.src[i]) {
			lx.lines++
			lx.lineStart = i + 1
		}
	}
	lx.start = lx.offset
}

func (lx *Lexer) peek() (byte, bool) {
	if lx.offset >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.offset], true
}

func (lx *Lexer) next() {
	lx.offset++
}

func lexDefaultState(lx *Lexer) lexState {
	c, ok := lx.peek()
	if !ok {
		return nil
	}
	lx.next()

	switch {
	case isOpenList(c):
		return lexEmit(TokenOpenList)
	case isCloseList(c):
		return lexEmit(TokenCloseList)
	case isNewLine(c):
		return lexEmit(TokenNewLine)
	case isWhitespace(c):
		return lexCollectStream(TokenWhitespace)
	case c == '"' && lx.quoted:
		return lexQuoted
	default:
		return lexAtom
	}
}

func lexAtom(lx *Lexer) lexState {
	for {
		c, ok := lx.peek()
		if !ok || isBreak(c) {
			break
		}
		lx.next()
	}
	lx.emit(TokenAtom)
	return lexDefaultState
}

func lexQuoted(lx *Lexer) lexState {
	for {
		c, ok := lx.peek()
		if !ok {
			return lexStateError(lx.scanError(ErrUnterminatedString))
		}
		lx.next()
		switch c {
		case '\\':
			if _, ok := lx.peek(); ok {
				lx.next()
			}
		case '"':
			return lexAtom
		}
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	match := isTokenType(tt)
	return func(lx *Lexer) lexState {
		for {
			c, ok := lx.peek()
			if !ok || !match(c) {
				break
			}
			lx.next()
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// scanError builds a ScanError located at the start of the current token.
func (lx *Lexer) scanError(err error) *ScanError {
	return &ScanError{
		Offset: lx.start,
		Line:   lx.lines + 1,
		Column: lx.start - lx.lineStart + 1,
		Err:    err,
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it.
func Tokenize(in []byte, opts ...Option) ([]Token, error) {
	lx := New(in, opts...)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
