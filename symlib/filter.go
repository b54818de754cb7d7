package symlib

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// EntryEnv is the environment a filter expression is evaluated against.
type EntryEnv struct {
	Name     string `expr:"name"`
	Unquoted string `expr:"unquoted"`
	Index    int    `expr:"index"`
	Line     int    `expr:"line"`
	Size     int    `expr:"size"`
}

// Filter is a compiled boolean expression over an entry, for example
//
//	unquoted startsWith "CDP1802" && size > 2000
type Filter struct {
	src string
	prg *vm.Program
}

// CompileFilter compiles src. Expressions that do not produce a boolean are
// rejected.
func CompileFilter(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(EntryEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the filter against env.
func (f *Filter) Match(env EntryEnv) (bool, error) {
	res, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q on %s: %w", f.src, env.Name, err)
	}
	ok, _ := res.(bool)
	return ok, nil
}

// Env builds the filter environment of the i-th current entry.
func (l *Library) Env(i int) EntryEnv {
	e := l.entries[i]
	span := e.Node.Span()
	return EntryEnv{
		Name:     e.Name,
		Unquoted: e.Unquoted(),
		Index:    i,
		Line:     l.file.Src.Position(span.Begin).Line,
		Size:     span.Len(),
	}
}

// Match returns the current entries matched by f, in source order.
func (l *Library) Match(f *Filter) ([]*Entry, error) {
	var matched []*Entry
	for i, e := range l.entries {
		ok, err := f.Match(l.Env(i))
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// RemoveMatching removes every entry matched by f and returns their names.
// Nothing is removed if evaluating f fails for any entry.
func (l *Library) RemoveMatching(f *Filter) ([]string, error) {
	matched, err := l.Match(f)
	if err != nil {
		return nil, err
	}
	drop := make(map[*Entry]bool, len(matched))
	for _, e := range matched {
		drop[e] = true
	}
	var names []string
	for _, e := range l.RemoveFunc(func(e *Entry) bool { return drop[e] }) {
		names = append(names, e.Name)
	}
	return names, nil
}
