// Package kisym reads KiCad symbol libraries, removes entries from them and
// writes them back, keeping the original text of everything that stays.
package kisym

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xiam/kisym/ast"
	"github.com/xiam/kisym/parser"
	"github.com/xiam/kisym/symlib"
)

type config struct {
	parserOpts  []parser.Option
	libraryOpts []symlib.Option
	logger      *slog.Logger
}

// Option configures ReadFile and Parse.
type Option func(*config)

// WithParserOptions passes opts through to the parser.
func WithParserOptions(opts ...parser.Option) Option {
	return func(c *config) {
		c.parserOpts = append(c.parserOpts, opts...)
	}
}

// WithLibraryOptions passes opts through to the library extractor.
func WithLibraryOptions(opts ...symlib.Option) Option {
	return func(c *config) {
		c.libraryOpts = append(c.libraryOpts, opts...)
	}
}

// WithLogger sets the logger used for debug output. Nothing is logged by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Document is a parsed symbol library.
type Document struct {
	*symlib.Library

	logger *slog.Logger
}

// ReadFile reads and parses the library at path.
func ReadFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading library: %w", err)
	}
	return parse(ast.NewBuffer(path, data), newConfig(opts))
}

// Parse parses an in-memory library.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return parse(ast.NewBuffer("", data), newConfig(opts))
}

func parse(src *ast.Buffer, c *config) (*Document, error) {
	f, err := parser.Parse(src, c.parserOpts...)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("parsed", "file", src.Name(), "bytes", src.Len(), "nodes", len(f.Nodes))

	lib, err := symlib.Extract(f, c.libraryOpts...)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("extracted", "file", src.Name(), "version", lib.Version(), "generator", lib.Generator(), "entries", lib.Len())

	return &Document{Library: lib, logger: c.logger}, nil
}

// Name returns the path the document was read from, or "" for documents
// built with Parse.
func (d *Document) Name() string {
	return d.File().Src.Name()
}

// WriteFile serializes the document to path.
func (d *Document) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := symlib.Encode(&buf, d.Library); err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing library: %w", err)
	}
	d.logger.Debug("wrote", "file", path, "bytes", buf.Len(), "entries", d.Len())
	return nil
}
