package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAtom(t *testing.T) {
	testCases := []struct {
		In  string
		Out NodeType
	}{
		{`42`, NodeTypeInt},
		{`3.14`, NodeTypeFloat},
		{`"abc"`, NodeTypeString},
		{`"`, NodeTypeString},
		{`R1`, NodeTypeSymbol},
		{`-5`, NodeTypeInt},
		{`1.2.3`, NodeTypeFloat},
		{`-`, NodeTypeInt},
		{`.`, NodeTypeFloat},
		{`-foo`, NodeTypeSymbol},
		{`1e5`, NodeTypeSymbol},
		{`kicad_symbol_lib`, NodeTypeSymbol},
		{``, NodeTypeSymbol},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, ClassifyAtom(testCases[i].In), "input %q", testCases[i].In)
	}
}

func TestNodeList(t *testing.T) {
	atom := NewAtom(NodeTypeSymbol, "a", Span{0, 1})

	a := NewAtom(NodeTypeSymbol, "a", Span{1, 2})
	b := NewAtom(NodeTypeInt, "1", Span{3, 4})
	list := NewList(Span{0, 7}, []*Node{a, b})

	assert.Equal(t, 2, list.Len())
	assert.Equal(t, a, list.Head())
	assert.Equal(t, b, a.Next())
	assert.Nil(t, b.Next())

	tag, ok := list.Tag()
	assert.True(t, ok)
	assert.Equal(t, "a", tag)

	_, ok = atom.Tag()
	assert.False(t, ok)
	assert.Nil(t, list.At(2))
	assert.Nil(t, atom.Head())
}

func TestNewListChainsSiblings(t *testing.T) {
	nodes := []*Node{
		NewAtom(NodeTypeSymbol, "x", Span{1, 2}),
		NewAtom(NodeTypeInt, "1", Span{3, 4}),
		NewAtom(NodeTypeFloat, "2.5", Span{5, 8}),
	}
	list := NewList(Span{0, 9}, nodes)

	var got []string
	for n := list.Head(); n != nil; n = n.Next() {
		got = append(got, n.Text())
	}
	assert.Equal(t, []string{"x", "1", "2.5"}, got)
}

func TestNewAtomRejectsListType(t *testing.T) {
	assert.Panics(t, func() {
		NewAtom(NodeTypeList, "x", Span{})
	})
}

func TestBufferPosition(t *testing.T) {
	// countPosition scans from the start of the buffer on every call.
	countPosition := func(data []byte, offset int) Pos {
		offset = min(max(offset, 0), len(data))
		head := data[:offset]
		line := bytes.Count(head, []byte{'\n'}) + 1
		col := offset - (bytes.LastIndexByte(head, '\n') + 1) + 1
		return Pos{Line: line, Column: col}
	}

	inputs := []string{
		"",
		"\n",
		"\n\n\n",
		"(a)",
		"(a\n  (b 1))\n",
		"(kicad_symbol_lib\r\n  (version 1)\r\n  (generator x)\r\n)\r\n",
		"\r\n(symbol \"A\")\r\n\r\n  (symbol \"B\")",
		"(a\n\tb\n\n c)",
	}

	for _, in := range inputs {
		buf := NewBuffer("", []byte(in))
		for offset := -2; offset <= len(in)+2; offset++ {
			assert.Equal(t, countPosition([]byte(in), offset), buf.Position(offset), "%q at %d", in, offset)
		}
	}

	crlf := NewBuffer("", []byte("(a\r\n (b))"))
	assert.Equal(t, Pos{1, 3}, crlf.Position(2))
	assert.Equal(t, Pos{2, 2}, crlf.Position(6))
}

func TestBufferPositionManyLines(t *testing.T) {
	var src bytes.Buffer
	for range 20000 {
		src.WriteString("  (symbol \"R\" (pin_numbers hide))\n")
	}
	buf := NewBuffer("", src.Bytes())
	lineLen := len("  (symbol \"R\" (pin_numbers hide))\n")

	for i := range 20000 {
		require.Equal(t, Pos{Line: i + 1, Column: 3}, buf.Position(i*lineLen+2))
	}
}

func TestBuffer(t *testing.T) {
	buf := NewBuffer("test", []byte("(a\n  (b 1))\n"))

	assert.Equal(t, "test", buf.Name())
	assert.Equal(t, 12, buf.Len())
	assert.Equal(t, "(b 1)", buf.Text(Span{5, 10}))
	assert.Equal(t, Pos{1, 1}, buf.Position(0))
	assert.Equal(t, Pos{2, 3}, buf.Position(5))
	assert.Equal(t, Pos{3, 1}, buf.Position(100))
	assert.True(t, buf.Valid(Span{0, 12}))
	assert.False(t, buf.Valid(Span{3, 13}))
	assert.False(t, buf.Valid(Span{4, 3}))

	b := buf.Bytes(Span{0, 2})
	b = append(b, 'X')
	assert.Equal(t, "(a\n", buf.Text(Span{0, 3}))
	assert.Equal(t, "(aX", string(b))

	assert.Panics(t, func() {
		buf.Bytes(Span{10, 20})
	})
}

func TestSpan(t *testing.T) {
	outer := Span{0, 10}
	assert.True(t, outer.Contains(Span{2, 5}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(Span{5, 11}))
	assert.Equal(t, 10, outer.Len())
	assert.Equal(t, "[0,10)", outer.String())
}

func TestArena(t *testing.T) {
	a := NewArena(2)

	x := a.NewAtom(NodeTypeSymbol, "x", Span{1, 2})
	y := a.NewAtom(NodeTypeInt, "1", Span{3, 4})
	z := a.NewAtom(NodeTypeInt, "2", Span{5, 6})
	list := a.NewList(Span{0, 7}, []*Node{x, y, z})

	assert.Equal(t, 4, a.Allocated())
	assert.Equal(t, 2, a.Chunks())
	assert.Equal(t, "x", x.Text())
	assert.Equal(t, "2", z.Text())
	assert.Equal(t, z, y.Next())
	assert.Equal(t, 3, list.Len())

	a.Reset()
	assert.Equal(t, 0, a.Allocated())
	assert.Equal(t, 0, a.Chunks())

	w := a.NewAtom(NodeTypeSymbol, "w", Span{0, 1})
	assert.Equal(t, "w", w.Text())
	assert.Equal(t, "x", x.Text())

	var nilArena *Arena
	n := nilArena.NewAtom(NodeTypeString, `"s"`, Span{0, 3})
	assert.Equal(t, NodeTypeString, n.Type())
}

func TestPrintAndEncode(t *testing.T) {
	src := NewBuffer("", []byte("(a 1\n (b))"))
	b := NewList(Span{6, 9}, []*Node{NewAtom(NodeTypeSymbol, "b", Span{7, 8})})
	root := NewList(Span{0, 10}, []*Node{
		NewAtom(NodeTypeSymbol, "a", Span{1, 2}),
		NewAtom(NodeTypeInt, "1", Span{3, 4}),
		b,
	})

	assert.Equal(t, "(a 1 (b))", string(Encode(root)))

	var out bytes.Buffer
	require.NoError(t, Print(&out, root))
	assert.Equal(t, ""+
		"(list)[3] [0,10)\n"+
		"    (symbol): a [1,2)\n"+
		"    (int): 1 [3,4)\n"+
		"    (list)[1] [6,9)\n"+
		"        (symbol): b [7,8)\n", out.String())

	out.Reset()
	p := &Printer{Src: src}
	require.NoError(t, p.Fprint(&out, b))
	assert.Equal(t, ""+
		"(list)[1] 2:2\n"+
		"    (symbol): b 2:3\n", out.String())
}
