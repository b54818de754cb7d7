// Package symlib interprets a parsed S-expression document as a KiCad
// symbol library, removes entries from it and writes it back.
//
// Writing never regenerates text from the tree: every item kept in the
// output is copied byte for byte from the buffer it was parsed from. Only
// the outermost "(tag" and ")" lines are synthesized.
package symlib

import (
	"slices"

	"github.com/xiam/kisym/ast"
)

// Default tags of a KiCad symbol library.
const (
	DefaultDocumentTag = "kicad_symbol_lib"
	DefaultEntryTag    = "symbol"
)

// Field tags expected right after the document tag, in this order.
const (
	VersionTag   = "version"
	GeneratorTag = "generator"
)

type config struct {
	docTag   string
	entryTag string
}

// Option configures Extract.
type Option func(*config)

// DocumentTag sets the tag the root list must start with.
func DocumentTag(tag string) Option {
	return func(c *config) {
		c.docTag = tag
	}
}

// EntryTag sets the tag that marks a top-level list as an entry.
func EntryTag(tag string) Option {
	return func(c *config) {
		c.entryTag = tag
	}
}

// Entry is one named definition of the library. It borrows its node from
// the parsed file.
type Entry struct {
	// Name is the literal text of the second atom of the entry list,
	// including quotes when the source has them.
	Name string
	Node *ast.Node
}

// Unquoted returns Name without its surrounding double quotes.
func (e *Entry) Unquoted() string {
	return Unquote(e.Name)
}

// Library is a typed view over a parsed document. It never modifies the
// file it was extracted from.
type Library struct {
	file *ast.File
	root *ast.Node

	tag       string
	entryTag  string
	version   string
	generator string

	entries []*Entry
	// extracted holds the node of every entry found by Extract, including
	// those removed since.
	extracted map[*ast.Node]struct{}
}

// File returns the parsed file the library borrows from.
func (l *Library) File() *ast.File {
	return l.file
}

// Root returns the root list of the document.
func (l *Library) Root() *ast.Node {
	return l.root
}

// Tag returns the document tag.
func (l *Library) Tag() string {
	return l.tag
}

// Version returns the literal value of the version field.
func (l *Library) Version() string {
	return l.version
}

// Generator returns the literal value of the generator field.
func (l *Library) Generator() string {
	return l.generator
}

// Len returns the number of entries currently in the library.
func (l *Library) Len() int {
	return len(l.entries)
}

// Entries returns the current entries in source order. The slice is a copy;
// the entries are shared.
func (l *Library) Entries() []*Entry {
	return slices.Clone(l.entries)
}

// Names returns the names of the current entries in source order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		names = append(names, e.Name)
	}
	return names
}

// EntryBytes returns the original text of an entry.
func (l *Library) EntryBytes(e *Entry) []byte {
	return l.file.Bytes(e.Node)
}

func (l *Library) isEntry(n *ast.Node) bool {
	_, ok := l.extracted[n]
	return ok
}
