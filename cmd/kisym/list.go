package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/xiam/kisym"
	"github.com/xiam/kisym/symlib"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: list requires one file argument", cli.ErrUsage)
	}
	var filter *symlib.Filter
	if cfg.Where != "" {
		filter, err = symlib.CompileFilter(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	doc, err := loadDoc(args[0], cfg.docOpts())
	if err != nil {
		return err
	}
	return listEntries(cc.Out, doc, filter)
}

func listEntries(w io.Writer, doc *kisym.Document, filter *symlib.Filter) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i := range doc.Len() {
		env := doc.Env(i)
		if filter != nil {
			ok, err := filter.Match(env)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", env.Unquoted, env.Line, env.Size)
	}
	return tw.Flush()
}
