// Package grammar is the registry of named grammars the arc tools can run.
package grammar

import (
	"sort"

	"github.com/dhamidi/arc/comb"
	"github.com/dhamidi/arc/grammar/array"
	"github.com/dhamidi/arc/grammar/tagged"
)

var registry = map[string]comb.Parser{
	"array":  array.Array,
	"tagged": tagged.Parser,
}

// Lookup returns the grammar registered under name.
func Lookup(name string) (comb.Parser, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names returns the registered grammar names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
