// Package textdiff renders line diffs between two versions of a file.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff line.
type Op int8

const (
	Equal Op = iota
	Delete
	Insert
)

var opPrefix = map[Op]string{
	Equal:  " ",
	Delete: "-",
	Insert: "+",
}

func (op Op) String() string {
	return opPrefix[op]
}

// Line is one line of a diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var res []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		default:
			op = Equal
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Printer writes diffs in a unified-like layout. Runs of unchanged lines
// longer than twice Context are elided.
type Printer struct {
	Context int
	Color   bool
}

// Fprint writes the diff between from and to, labelled with the two names.
func (p *Printer) Fprint(w io.Writer, fromName, toName, from, to string) error {
	lines := Lines(from, to)
	if !Changed(lines) {
		return nil
	}

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	hdr := color.New(color.Bold)
	for _, c := range []*color.Color{del, ins, hdr} {
		if p.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if _, err := hdr.Fprintf(w, "--- %s\n+++ %s\n", fromName, toName); err != nil {
		return err
	}

	keep := p.visible(lines)
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := hdr.Fprintln(w, "@@"); err != nil {
				return err
			}
			skipped = false
		}

		var err error
		switch l.Op {
		case Delete:
			_, err = del.Fprintf(w, "%s%s\n", l.Op, l.Text)
		case Insert:
			_, err = ins.Fprintf(w, "%s%s\n", l.Op, l.Text)
		default:
			_, err = fmt.Fprintf(w, "%s%s\n", l.Op, l.Text)
		}
		if err != nil {
			return err
		}
	}
	if skipped {
		_, err := hdr.Fprintln(w, "@@")
		return err
	}
	return nil
}

func (p *Printer) visible(lines []Line) []bool {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == Equal {
			continue
		}
		lo, hi := max(i-p.Context, 0), min(i+p.Context, len(lines)-1)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}
	return keep
}
