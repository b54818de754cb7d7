package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeAtom   NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInt    = nodeTypeAtom | 1
	NodeTypeFloat  = nodeTypeAtom | 2
	NodeTypeSymbol = nodeTypeAtom | 4
	NodeTypeString = nodeTypeAtom | 16

	NodeTypeList = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return "invalid"
}

// IsAtom returns true for every atom subtype.
func (nt NodeType) IsAtom() bool {
	return nt&nodeTypeAtom > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeInt:    "int",
	NodeTypeFloat:  "float",
	NodeTypeSymbol: "symbol",
	NodeTypeString: "string",
	NodeTypeList:   "list",
}

// ClassifyAtom returns the atom subtype of a raw token. A leading double
// quote makes a string. A token made only of digits, '-' and '.' is numeric:
// a float if it contains a '.', an integer otherwise. Anything else is a
// symbol. No validation is done on numeric tokens, so "1.2.3" is a float and
// "-" is an integer.
func ClassifyAtom(text string) NodeType {
	if text == "" {
		return NodeTypeSymbol
	}
	if text[0] == '"' {
		return NodeTypeString
	}
	dot := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '.':
			dot = true
		case c == '-', c >= '0' && c <= '9':
		default:
			return NodeTypeSymbol
		}
	}
	if dot {
		return NodeTypeFloat
	}
	return NodeTypeInt
}
