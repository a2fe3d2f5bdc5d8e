// Package grammars holds concrete grammars built from parsec combinators.
// Each grammar parses a whole input into a concrete syntax tree.
package grammars

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/comb/cst"
	"github.com/dhamidi/comb/parsec"
)

// Grammar is a named parser for complete inputs.
type Grammar struct {
	Name        string
	Description string
	Root        parsec.Parser[*cst.Node]
}

// Parse applies the grammar to s and returns the syntax tree.
func (g Grammar) Parse(s *parsec.Stream) (*cst.Node, error) {
	return parsec.Parse(g.Root, s)
}

var registry = sync.OnceValue(func() map[string]Grammar {
	m := make(map[string]Grammar)
	for _, g := range []Grammar{CSV(), Expr(), Match()} {
		m[g.Name] = g
	}
	return m
})

// All returns the bundled grammars sorted by name.
func All() []Grammar {
	var gs []Grammar
	for _, g := range registry() {
		gs = append(gs, g)
	}
	sort.Slice(gs, func(i, j int) bool { return gs[i].Name < gs[j].Name })
	return gs
}

// Lookup returns the bundled grammar called name.
func Lookup(name string) (Grammar, error) {
	g, ok := registry()[name]
	if !ok {
		return Grammar{}, fmt.Errorf("unknown grammar %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return g, nil
}

// Names returns the names of the bundled grammars.
func Names() []string {
	var names []string
	for _, g := range All() {
		names = append(names, g.Name)
	}
	return names
}
