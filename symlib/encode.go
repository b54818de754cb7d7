package symlib

import (
	"bufio"
	"bytes"
	"io"

	"github.com/xiam/kisym/ast"
)

// Encode writes lib to w. The first and last lines, "(<tag>" and ")", are
// synthesized. In between, every top-level item that follows the document
// tag is copied verbatim from the source followed by a newline, in source
// order, except entries that have been removed from lib.
func Encode(w io.Writer, lib *Library) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("(")
	bw.WriteString(lib.tag)
	bw.WriteString("\n")

	current := make(map[*ast.Node]bool, len(lib.entries))
	for _, e := range lib.entries {
		current[e.Node] = true
	}

	for _, n := range lib.root.List()[1:] {
		if lib.isEntry(n) && !current[n] {
			continue
		}
		bw.Write(lib.file.Bytes(n))
		bw.WriteString("\n")
	}

	bw.WriteString(")\n")
	return bw.Flush()
}

// Bytes returns the encoded library.
func (l *Library) Bytes() []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, l)
	return buf.Bytes()
}

// WriteTo writes the encoded library to w.
func (l *Library) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(l.Bytes())
	return int64(n), err
}
