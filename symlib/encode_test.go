package symlib

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/kisym/ast"
	"github.com/xiam/kisym/parser"
	"rsc.io/diff"
)

var update = flag.Bool("update", false, "rewrite golden files")

func TestEncodeScenario(t *testing.T) {
	lib := mustExtract(t, smallLib, DocumentTag("lib"))

	assert.Equal(t, "(lib\n"+
		"(version 1)\n"+
		"(generator x)\n"+
		"(symbol \"A\" (x 1))\n"+
		"(symbol \"B\" (y 2))\n"+
		")\n", string(lib.Bytes()))

	require.True(t, lib.Remove(`"A"`))

	assert.Equal(t, "(lib\n"+
		"(version 1)\n"+
		"(generator x)\n"+
		"(symbol \"B\" (y 2))\n"+
		")\n", string(lib.Bytes()))
}

func TestEncodeGolden(t *testing.T) {
	testCases := []struct {
		Input  string
		Remove []string
		Golden string
	}{
		{"cpu.kicad_sym", nil, "cpu.golden"},
		{"cpu.kicad_sym", []string{`"Z80CPU"`}, "cpu_remove_z80.golden"},
		{"cpu.kicad_sym", []string{`"Z80CPU"`, `"CDP1802BCE"`, `"CDP1802ACE"`}, "cpu_remove_all.golden"},
	}

	for _, tc := range testCases {
		t.Run(tc.Golden, func(t *testing.T) {
			lib := loadTestdata(t, tc.Input)
			for _, name := range tc.Remove {
				require.True(t, lib.Remove(name), name)
			}

			var got bytes.Buffer
			require.NoError(t, Encode(&got, lib))

			goldenName := filepath.Join("testdata", tc.Golden)
			if *update {
				require.NoError(t, os.WriteFile(goldenName, got.Bytes(), 0o644))
				return
			}

			golden, err := os.ReadFile(goldenName)
			require.NoError(t, err)
			if !bytes.Equal(got.Bytes(), golden) {
				t.Errorf("lines don't match (-got +want)\n%s", diff.Format(got.String(), string(golden)))
			}
		})
	}
}

func loadTestdata(t *testing.T, name string) *Library {
	t.Helper()
	path := filepath.Join("testdata", name)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	f, err := parser.Parse(ast.NewBuffer(path, data))
	require.NoError(t, err)
	lib, err := Extract(f)
	require.NoError(t, err)
	return lib
}

func TestEncodeRoundTripSpans(t *testing.T) {
	lib := loadTestdata(t, "cpu.kicad_sym")
	out := string(lib.Bytes())

	for _, n := range lib.Root().List()[1:] {
		assert.Contains(t, out, string(lib.File().Bytes(n))+"\n")
	}
	assert.True(t, strings.HasPrefix(out, "(kicad_symbol_lib\n"))
	assert.True(t, strings.HasSuffix(out, "\n)\n"))
}

func TestEncodeRemovalKeepsOthersVerbatim(t *testing.T) {
	names := loadTestdata(t, "cpu.kicad_sym").Names()
	require.Len(t, names, 3)

	for _, name := range names {
		lib := loadTestdata(t, "cpu.kicad_sym")
		removed, ok := lib.Lookup(name)
		require.True(t, ok)
		removedText := string(lib.EntryBytes(removed))

		require.True(t, lib.Remove(name))
		assert.Equal(t, len(names)-1, lib.Len())

		out := string(lib.Bytes())
		assert.NotContains(t, out, removedText)

		last := -1
		for _, e := range lib.Entries() {
			text := string(lib.EntryBytes(e))
			i := strings.Index(out, text+"\n")
			require.GreaterOrEqual(t, i, 0, "%s missing from output", e.Name)
			assert.Greater(t, i, last, "%s out of order", e.Name)
			last = i
		}
	}
}

func TestEncodeNoopRemoval(t *testing.T) {
	lib := loadTestdata(t, "cpu.kicad_sym")
	before := lib.Bytes()

	assert.False(t, lib.Remove(`"NE555"`))
	assert.False(t, lib.Remove(`Z80CPU`))
	assert.Equal(t, 3, lib.Len())
	assert.Equal(t, before, lib.Bytes())
}

func TestEncodeInterleavedHeader(t *testing.T) {
	lib := mustExtract(t, `(lib (version 1) (generator x) (symbol "A" 1) (comment "c") (symbol "B" 2) stray)`, DocumentTag("lib"))
	require.True(t, lib.Remove(`"A"`))

	assert.Equal(t, "(lib\n"+
		"(version 1)\n"+
		"(generator x)\n"+
		"(comment \"c\")\n"+
		"(symbol \"B\" 2)\n"+
		"stray\n"+
		")\n", string(lib.Bytes()))
}

func TestEncodeEmptyLibrary(t *testing.T) {
	lib := mustExtract(t, `(lib (version 1) (generator x))`, DocumentTag("lib"))
	assert.Equal(t, 0, lib.Len())
	assert.Equal(t, "(lib\n(version 1)\n(generator x)\n)\n", string(lib.Bytes()))
}

func TestWriteTo(t *testing.T) {
	lib := mustExtract(t, smallLib, DocumentTag("lib"))

	var buf bytes.Buffer
	n, err := lib.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, lib.Bytes(), buf.Bytes())
}
