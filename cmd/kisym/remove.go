package main

import (
	"fmt"
	"os"

	"github.com/xiam/kisym/internal/textdiff"
	"github.com/xiam/kisym/symlib"

	"github.com/scott-cotton/cli"
)

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: remove requires a file argument", cli.ErrUsage)
	}
	path, names := args[0], args[1:]

	plan := &symlib.Plan{Remove: names, Where: cfg.Where}
	if cfg.Plan != "" {
		filePlan, err := readPlan(cfg.Plan)
		if err != nil {
			return err
		}
		plan = mergePlans(plan, filePlan)
	}
	if len(plan.Remove) == 0 && plan.Where == "" {
		return fmt.Errorf("%w: nothing to remove, give names, -where or -plan", cli.ErrUsage)
	}
	if plan.Where != "" {
		if _, err := symlib.CompileFilter(plan.Where); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}

	doc, err := loadDoc(path, cfg.docOpts())
	if err != nil {
		return err
	}
	before := doc.Bytes()

	res, err := plan.Apply(doc.Library)
	if err != nil {
		return err
	}
	for _, name := range res.Removed {
		theLog.Info("removed", "entry", name)
	}
	for _, name := range res.Missing {
		theLog.Warn("not found", "entry", name)
	}
	theLog.Debug("remaining", "entries", doc.Len())

	if cfg.Diff {
		p := &textdiff.Printer{Context: 3, Color: cfg.colors(cc.Out)}
		if err := p.Fprint(cc.Out, displayName(path), displayName(outName(cfg.Out, path)), string(before), string(doc.Bytes())); err != nil {
			return err
		}
	}
	if cfg.DryRun {
		return nil
	}
	switch cfg.Out {
	case "":
		if cfg.Diff {
			return nil
		}
		_, err = doc.WriteTo(cc.Out)
		return err
	case "-":
		_, err = doc.WriteTo(cc.Out)
		return err
	default:
		return doc.WriteFile(cfg.Out)
	}
}

func outName(out, in string) string {
	if out == "" {
		return in
	}
	return out
}

func readPlan(path string) (*symlib.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plan: %w", err)
	}
	defer f.Close()
	return symlib.LoadPlan(f)
}

// mergePlans combines command line removals with a plan file. Names from
// both are removed; two filters are joined with "||".
func mergePlans(args, file *symlib.Plan) *symlib.Plan {
	res := &symlib.Plan{
		Remove: append(append([]string{}, args.Remove...), file.Remove...),
	}
	switch {
	case args.Where == "":
		res.Where = file.Where
	case file.Where == "":
		res.Where = args.Where
	default:
		res.Where = "(" + args.Where + ") || (" + file.Where + ")"
	}
	return res
}
