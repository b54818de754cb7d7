package symlib

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Plan describes a batch of removals, usually loaded from YAML:
//
//	remove:
//	  - Z80CPU
//	  - '"CDP1802ACE"'
//	where: unquoted startsWith "P4080"
//
// Bare names are quoted before lookup.
type Plan struct {
	Remove []string `yaml:"remove"`
	Where  string   `yaml:"where"`
}

// PlanResult lists what applying a plan did.
type PlanResult struct {
	Removed []string
	Missing []string
}

// LoadPlan decodes a YAML plan. Unknown keys are rejected.
func LoadPlan(r io.Reader) (*Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := &Plan{}
	if err := yaml.UnmarshalWithOptions(data, p, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return p, nil
}

// Apply removes the named entries and every entry matched by Where. Where
// is evaluated against the library as it was before any removal. If Where
// fails to compile or to evaluate, nothing is removed.
func (p *Plan) Apply(lib *Library) (*PlanResult, error) {
	var matched []*Entry
	if p.Where != "" {
		filter, err := CompileFilter(p.Where)
		if err != nil {
			return nil, err
		}
		matched, err = lib.Match(filter)
		if err != nil {
			return nil, err
		}
	}

	res := &PlanResult{}
	for _, name := range p.Remove {
		lit := Quote(name)
		if lib.Remove(lit) {
			res.Removed = append(res.Removed, lit)
		} else {
			res.Missing = append(res.Missing, lit)
		}
	}

	drop := make(map[*Entry]bool, len(matched))
	for _, e := range matched {
		drop[e] = true
	}
	for _, e := range lib.RemoveFunc(func(e *Entry) bool { return drop[e] }) {
		res.Removed = append(res.Removed, e.Name)
	}
	return res, nil
}
