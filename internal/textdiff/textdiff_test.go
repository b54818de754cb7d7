package textdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	from := "(lib\n(version 1)\n(symbol \"A\")\n(symbol \"B\")\n)\n"
	to := "(lib\n(version 1)\n(symbol \"B\")\n)\n"

	want := []Line{
		{Equal, "(lib"},
		{Equal, "(version 1)"},
		{Delete, `(symbol "A")`},
		{Equal, `(symbol "B")`},
		{Equal, ")"},
	}
	got := Lines(from, to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, Changed(got))
	assert.False(t, Changed(Lines(from, from)))
}

func TestLinesMissingNewline(t *testing.T) {
	got := Lines("a\nb", "a\nc")
	assert.Equal(t, []Line{
		{Equal, "a"},
		{Delete, "b"},
		{Insert, "c"},
	}, got)
}

func TestPrinter(t *testing.T) {
	from := "1\n2\n3\n4\n5\n6\n7\n8\n"
	to := "1\n2\n3\n4\n5\n6\nseven\n8\n"

	var buf bytes.Buffer
	p := &Printer{Context: 1}
	require.NoError(t, p.Fprint(&buf, "a", "b", from, to))

	assert.Equal(t, "--- a\n+++ b\n@@\n 6\n-7\n+seven\n 8\n", buf.String())
}

func TestPrinterTrailingContext(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Context: 0}
	require.NoError(t, p.Fprint(&buf, "a", "b", "x\ny\nz\n", "w\ny\nz\n"))

	assert.Equal(t, "--- a\n+++ b\n-x\n+w\n@@\n", buf.String())
}

func TestPrinterNoChanges(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Context: 3, Color: true}
	require.NoError(t, p.Fprint(&buf, "a", "b", "same\n", "same\n"))
	assert.Empty(t, buf.String())
}
