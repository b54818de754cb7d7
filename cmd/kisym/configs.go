package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/xiam/kisym"
	"github.com/xiam/kisym/parser"
	"github.com/xiam/kisym/symlib"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Quoted  bool   `cli:"name=quoted desc='treat quoted strings as single atoms'"`
	Tag     string `cli:"name=tag desc='tag of library entries (default symbol)'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log debug output'"`
	Color   bool   `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

func (cfg *MainConfig) docOpts() []kisym.Option {
	res := []kisym.Option{
		kisym.WithParserOptions(parser.QuotedStrings(cfg.Quoted)),
		kisym.WithLogger(theLog),
	}
	if cfg.Tag != "" {
		res = append(res, kisym.WithLibraryOptions(symlib.EntryTag(cfg.Tag)))
	}
	return res
}

func (cfg *MainConfig) setLogLevel() {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
}

// colors reports whether output to w should be colored: -color forces it,
// otherwise terminals get color.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only list entries matching this expression'"`

	List *cli.Command
}

type RemoveConfig struct {
	*MainConfig
	Out    string `cli:"name=o desc='output file (default stdout, - for stdout)'"`
	Where  string `cli:"name=where desc='remove entries matching this expression'"`
	Plan   string `cli:"name=plan desc='yaml removal plan'"`
	Diff   bool   `cli:"name=diff desc='print a diff of the input and output'"`
	DryRun bool   `cli:"name=n desc='report removals without writing output'"`

	Remove *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Entry   string `cli:"name=e aliases=entry desc='dump only the named entry'"`
	Compact bool   `cli:"name=compact desc='print nodes on one line, single spaced'"`

	Dump *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
