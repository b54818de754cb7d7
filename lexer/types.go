package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenNewLine             // Newline: "\n"
	TokenWhitespace          // Space, tab, form feed or carriage return
	TokenAtom                // Anything else up to the next break
	TokenEOF                 // End of file
)

var tokenValues = map[TokenType][]byte{
	TokenOpenList:   []byte{'('},
	TokenCloseList:  []byte{')'},
	TokenNewLine:    []byte{'\n'},
	TokenWhitespace: []byte(" \f\t\r"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenList:   "open_list",
	TokenCloseList:  "close_list",
	TokenNewLine:    "newline",
	TokenWhitespace: "whitespace",
	TokenAtom:       "atom",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(c byte) bool {
	return func(c byte) bool {
		for _, v := range tokenValues[tt] {
			if v == c {
				return true
			}
		}
		return false
	}
}

var (
	isOpenList   = isTokenType(TokenOpenList)
	isCloseList  = isTokenType(TokenCloseList)
	isNewLine    = isTokenType(TokenNewLine)
	isWhitespace = isTokenType(TokenWhitespace)
)

func isBreak(c byte) bool {
	return isWhitespace(c) || isNewLine(c) || isOpenList(c) || isCloseList(c)
}
