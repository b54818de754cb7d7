package ast

import (
	"fmt"
)

// Node represents an atom or a list of the AST. Atoms carry a copy of their
// literal text; lists carry their contents as an ordered sequence of sibling
// nodes. Both know the span of source text they were parsed from.
type Node struct {
	nt   NodeType
	text string
	span Span

	list []*Node
	next *Node
}

// NewAtom creates and returns an orphaned atom of the given subtype.
func NewAtom(nt NodeType, text string, span Span) *Node {
	n := &Node{}
	n.setAtom(nt, text, span)
	return n
}

// NewList creates and returns a list holding the given nodes, linking them
// as siblings in order.
func NewList(span Span, list []*Node) *Node {
	n := &Node{}
	n.setList(span, list)
	return n
}

func (n *Node) setAtom(nt NodeType, text string, span Span) {
	if !nt.IsAtom() {
		panic(fmt.Sprintf("ast: %v is not an atom type", nt))
	}
	n.nt, n.text, n.span = nt, text, span
}

func (n *Node) setList(span Span, list []*Node) {
	n.nt, n.span, n.list = NodeTypeList, span, Chain(list)
}

// Chain links nodes as siblings in slice order and returns the slice.
func Chain(nodes []*Node) []*Node {
	for i := range nodes {
		nodes[i].next = nil
		if i > 0 {
			nodes[i-1].next = nodes[i]
		}
	}
	return nodes
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// IsAtom returns true if the node is an atom
func (n *Node) IsAtom() bool {
	return n.nt.IsAtom()
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt == NodeTypeList
}

// Text returns the literal text of an atom, or "" for a list.
func (n *Node) Text() string {
	return n.text
}

// Span returns the source range of the node.
func (n *Node) Span() Span {
	return n.span
}

// Next returns the following sibling, or nil for the last node of a
// sequence.
func (n *Node) Next() *Node {
	return n.next
}

// List returns the contents of a list in source order. It returns nil for
// atoms.
func (n *Node) List() []*Node {
	return n.list
}

// Len returns the number of nodes in a list.
func (n *Node) Len() int {
	return len(n.list)
}

// Head returns the first node of a list, which starts its sibling chain, or
// nil if the list is empty or n is an atom.
func (n *Node) Head() *Node {
	if len(n.list) == 0 {
		return nil
	}
	return n.list[0]
}

// At returns the i-th node of a list, or nil when out of range.
func (n *Node) At(i int) *Node {
	if i < 0 || i >= len(n.list) {
		return nil
	}
	return n.list[i]
}

// Tag returns the literal text of the head of a list when that head is an
// atom. ok is false for atoms, empty lists and lists headed by a list.
func (n *Node) Tag() (tag string, ok bool) {
	head := n.Head()
	if head == nil || !head.IsAtom() {
		return "", false
	}
	return head.text, true
}

func (n *Node) String() string {
	if n.IsList() {
		return fmt.Sprintf("(%v)[%d]%v", n.nt, len(n.list), n.span)
	}
	return fmt.Sprintf("(%v): %s%v", n.nt, n.text, n.span)
}

// File is the result of parsing one buffer: the buffer itself and the
// top-level sibling sequence found in it.
type File struct {
	Src   *Buffer
	Nodes []*Node
}

// Root returns the only top-level node of the file, or nil if the file does
// not contain exactly one.
func (f *File) Root() *Node {
	if len(f.Nodes) != 1 {
		return nil
	}
	return f.Nodes[0]
}

// Bytes returns the original text of n.
func (f *File) Bytes(n *Node) []byte {
	return f.Src.Bytes(n.span)
}
