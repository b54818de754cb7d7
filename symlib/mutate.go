package symlib

import (
	"slices"
	"strings"
)

// Remove unlinks the first entry whose name is exactly name and reports
// whether one was found. Names are compared literally, quotes included;
// see Quote. Later entries with the same name are left in place.
func (l *Library) Remove(name string) bool {
	for i, e := range l.entries {
		if e.Name == name {
			l.entries = slices.Delete(l.entries, i, i+1)
			return true
		}
	}
	return false
}

// RemoveFunc unlinks every entry for which fn returns true and returns them
// in source order.
func (l *Library) RemoveFunc(fn func(*Entry) bool) []*Entry {
	var removed []*Entry
	l.entries = slices.DeleteFunc(l.entries, func(e *Entry) bool {
		if fn(e) {
			removed = append(removed, e)
			return true
		}
		return false
	})
	return removed
}

// Lookup returns the first entry named name.
func (l *Library) Lookup(name string) (*Entry, bool) {
	for _, e := range l.entries {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}

// Duplicates returns the names held by more than one entry, in order of
// first appearance.
func (l *Library) Duplicates() []string {
	seen := make(map[string]int, len(l.entries))
	var dups []string
	for _, e := range l.entries {
		seen[e.Name]++
		if seen[e.Name] == 2 {
			dups = append(dups, e.Name)
		}
	}
	return dups
}

// Quote wraps name in double quotes unless it already starts with one.
func Quote(name string) string {
	if strings.HasPrefix(name, `"`) {
		return name
	}
	return `"` + name + `"`
}

// Unquote strips one pair of surrounding double quotes. No escape sequence
// is decoded.
func Unquote(lit string) string {
	if len(lit) >= 2 && lit[0] == '"' && lit[len(lit)-1] == '"' {
		return lit[1 : len(lit)-1]
	}
	return lit
}
