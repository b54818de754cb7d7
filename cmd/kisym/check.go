package main

import (
	"fmt"
	"io"

	"github.com/xiam/kisym"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	failed := 0
	for _, path := range args {
		if err := checkFile(cc.Out, path, cfg.docOpts()); err != nil {
			theLog.Error("check failed", "file", displayName(path), "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

// checkFile writes a one line summary of the library at path, followed by
// one line per repeated entry name. Repeated names are reported but are
// not an error.
func checkFile(w io.Writer, path string, opts []kisym.Option) error {
	doc, err := loadDoc(path, opts)
	if err != nil {
		return err
	}
	name := displayName(path)
	fmt.Fprintf(w, "%s: version %s, generator %s, %d entries\n", name, doc.Version(), doc.Generator(), doc.Len())
	for _, dup := range doc.Duplicates() {
		fmt.Fprintf(w, "%s: duplicate entry %s\n", name, dup)
	}
	return nil
}
