package symlib

import (
	"github.com/xiam/kisym/ast"
)

type extractor struct {
	file *ast.File
	cfg  *config
}

// Extract validates that f holds a single library document and builds its
// typed view. The document must look like
//
//	(<document tag>
//	  (version <value>)
//	  (generator <value>)
//	  <anything>...
//	)
//
// where every top-level list headed by the entry tag becomes an Entry named
// after its second atom. If an error occurs the returned error is of type
// *SchemaError and no library is returned.
func Extract(f *ast.File, opts ...Option) (*Library, error) {
	cfg := &config{
		docTag:   DefaultDocumentTag,
		entryTag: DefaultEntryTag,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	x := &extractor{file: f, cfg: cfg}

	if len(f.Nodes) == 0 {
		return nil, x.fail(0, "document", cfg.docTag, "empty input")
	}
	root := f.Nodes[0]
	if len(f.Nodes) > 1 {
		extra := f.Nodes[1]
		return nil, x.fail(extra.Span().Begin, "end of input", "", describe(extra))
	}
	if tag, ok := root.Tag(); !root.IsList() || !ok || tag != cfg.docTag {
		return nil, x.fail(root.Span().Begin, "document tag", cfg.docTag, describe(root))
	}

	version, err := x.field(root, 1, VersionTag)
	if err != nil {
		return nil, err
	}
	generator, err := x.field(root, 2, GeneratorTag)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		file:      f,
		root:      root,
		tag:       cfg.docTag,
		entryTag:  cfg.entryTag,
		version:   version,
		generator: generator,
		extracted: map[*ast.Node]struct{}{},
	}

	for _, n := range root.List()[3:] {
		if !x.isEntry(n) {
			continue
		}
		name := n.At(1)
		if name == nil || !name.IsAtom() {
			return nil, x.fail(n.Span().Begin, cfg.entryTag+" name", "", describe(name))
		}
		lib.entries = append(lib.entries, &Entry{Name: name.Text(), Node: n})
		lib.extracted[n] = struct{}{}
	}

	return lib, nil
}

func (x *extractor) isEntry(n *ast.Node) bool {
	tag, ok := n.Tag()
	return n.IsList() && ok && tag == x.cfg.entryTag
}

// field checks that the i-th node of root is a list headed by tag and
// returns the literal text of its second node.
func (x *extractor) field(root *ast.Node, i int, tag string) (string, error) {
	n := root.At(i)
	if n == nil {
		return "", x.fail(root.Span().End-1, tag+" field", tag, "end of document")
	}
	if got, ok := n.Tag(); !n.IsList() || !ok || got != tag {
		return "", x.fail(n.Span().Begin, tag+" field", tag, describe(n))
	}
	value := n.At(1)
	if value == nil || !value.IsAtom() {
		return "", x.fail(n.Span().Begin, tag+" value", "", describe(value))
	}
	return value.Text(), nil
}

func (x *extractor) fail(offset int, what, expected, found string) error {
	src := x.file.Src
	return &SchemaError{
		Filename: src.Name(),
		Offset:   offset,
		Pos:      src.Position(offset),
		What:     what,
		Expected: expected,
		Found:    found,
	}
}
