package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xiam/kisym/ast"
	"github.com/xiam/kisym/parser"
	"github.com/xiam/kisym/symlib"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dump requires one file argument", cli.ErrUsage)
	}
	p := &ast.Printer{Color: cfg.colors(cc.Out)}

	if cfg.Entry != "" {
		doc, err := loadDoc(args[0], cfg.docOpts())
		if err != nil {
			return err
		}
		e, ok := doc.Lookup(symlib.Quote(cfg.Entry))
		if !ok {
			return fmt.Errorf("%s: no entry %s", displayName(args[0]), symlib.Quote(cfg.Entry))
		}
		p.Src = doc.File().Src
		return dumpNode(cc.Out, p, e.Node, cfg.Compact)
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}
	f, err := parser.Parse(ast.NewBuffer(args[0], data), parser.QuotedStrings(cfg.Quoted))
	if err != nil {
		return err
	}
	theLog.Debug("parsed", "file", displayName(args[0]), "nodes", len(f.Nodes))
	return dumpFile(cc.Out, p, f, cfg.Compact)
}

func dumpFile(w io.Writer, p *ast.Printer, f *ast.File, compact bool) error {
	p.Src = f.Src
	for _, n := range f.Nodes {
		if err := dumpNode(w, p, n, compact); err != nil {
			return err
		}
	}
	return nil
}

// dumpNode prints n as a tree, or with compact as a single line rebuilt
// from the nodes rather than copied from the source.
func dumpNode(w io.Writer, p *ast.Printer, n *ast.Node, compact bool) error {
	if !compact {
		return p.Fprint(w, n)
	}
	_, err := fmt.Fprintf(w, "%s\n", ast.Encode(n))
	return err
}
