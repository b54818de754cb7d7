package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Printer writes a human-readable, indented representation of nodes.
type Printer struct {
	// Src, when set, is used to print line:column positions instead of
	// byte spans.
	Src *Buffer
	// Color enables terminal colors regardless of whether the output is a
	// terminal.
	Color bool

	typ, atom, pos *color.Color
}

func (p *Printer) init() {
	if p.typ != nil {
		return
	}
	p.typ = color.New(color.FgCyan)
	p.atom = color.New(color.FgYellow)
	p.pos = color.New(color.Faint)
	for _, c := range []*color.Color{p.typ, p.atom, p.pos} {
		if p.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Fprint writes n and all its descendants to w.
func (p *Printer) Fprint(w io.Writer, n *Node) error {
	p.init()
	return p.printLevel(w, n, 0)
}

func (p *Printer) where(n *Node) string {
	if p.Src != nil && p.Src.Valid(n.span) {
		return p.Src.Position(n.span.Begin).String()
	}
	return n.span.String()
}

func (p *Printer) printLevel(w io.Writer, n *Node, level int) error {
	indent := strings.Repeat("    ", level)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}
	switch {
	case n.IsList():
		if _, err := fmt.Fprintf(w, "%s(%s)[%d] %s\n", indent, p.typ.Sprint(n.nt), len(n.list), p.pos.Sprint(p.where(n))); err != nil {
			return err
		}
		for _, c := range n.list {
			if err := p.printLevel(w, c, level+1); err != nil {
				return err
			}
		}
		return nil
	case n.IsAtom():
		_, err := fmt.Fprintf(w, "%s(%s): %s %s\n", indent, p.typ.Sprint(n.nt), p.atom.Sprint(n.text), p.pos.Sprint(p.where(n)))
		return err
	default:
		panic("unknown node type")
	}
}

// Print displays a human-readable representation of a node without colors.
func Print(w io.Writer, n *Node) error {
	return (&Printer{}).Fprint(w, n)
}

// Encode renders n compactly from the tree, separating nodes by a single
// space. Unlike copying spans from the buffer it does not preserve the
// original layout.
func Encode(n *Node) []byte {
	var b strings.Builder
	encodeNode(&b, n)
	return []byte(b.String())
}

func encodeNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.IsAtom() {
		b.WriteString(n.text)
		return
	}
	b.WriteByte('(')
	for i, c := range n.list {
		if i > 0 {
			b.WriteByte(' ')
		}
		encodeNode(b, c)
	}
	b.WriteByte(')')
}
