package ast

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
)

// Span is a half-open [Begin, End) byte range into a Buffer.
type Span struct {
	Begin, End int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return s.Begin <= o.Begin && o.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Begin, s.End)
}

// Pos is a 1-based line and column.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Buffer holds the original content of a document. It is never modified
// after creation and every span produced by the parser points into it.
type Buffer struct {
	name string
	data []byte

	linesOnce sync.Once
	lines     []int // offsets where each line starts
}

// NewBuffer takes ownership of data. The caller must not modify data
// afterwards.
func NewBuffer(name string, data []byte) *Buffer {
	return &Buffer{name: name, data: data}
}

// Name returns the name the buffer was created with, usually a file path.
func (b *Buffer) Name() string {
	return b.name
}

// Len returns the size of the buffer in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the bytes covered by span. The result shares memory with
// the buffer and has its capacity clipped, so appending to it never
// overwrites buffer content. It panics if span is out of range.
func (b *Buffer) Bytes(span Span) []byte {
	if span.Begin < 0 || span.End > len(b.data) || span.Begin > span.End {
		panic(fmt.Sprintf("ast: span %v out of range for buffer of %d bytes", span, len(b.data)))
	}
	return b.data[span.Begin:span.End:span.End]
}

// Text returns a copy of the bytes covered by span.
func (b *Buffer) Text(span Span) string {
	return string(b.Bytes(span))
}

// Valid reports whether span lies inside the buffer.
func (b *Buffer) Valid(span Span) bool {
	return span.Begin >= 0 && span.Begin <= span.End && span.End <= len(b.data)
}

// Position converts a byte offset into a line and column. Columns count
// bytes, not runes. Offsets outside the buffer are clamped.
func (b *Buffer) Position(offset int) Pos {
	offset = min(max(offset, 0), len(b.data))
	b.linesOnce.Do(b.indexLines)
	// index of the last line starting at or before offset
	i := sort.Search(len(b.lines), func(i int) bool { return b.lines[i] > offset }) - 1
	return Pos{Line: i + 1, Column: offset - b.lines[i] + 1}
}

func (b *Buffer) indexLines() {
	b.lines = make([]int, 1, bytes.Count(b.data, []byte{'\n'})+1)
	for i, c := range b.data {
		if c == '\n' {
			b.lines = append(b.lines, i+1)
		}
	}
}
