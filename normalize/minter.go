package normalize

import "github.com/dekarrin/cfgparse/symbol"

// nameMinter hands out fresh nonterminal names that cannot collide with any
// name already in a grammar (user-declared or previously minted), using a
// deterministic suffix ("-P", extended by one more "P" per collision) — the
// same scheme as
// Grammar.GenerateUniqueName, but threaded across an entire normalization
// pass so that names minted by an earlier step are visible to later steps
// before they are ever added to the grammar being built.
type nameMinter struct {
	used map[string]bool
}

func newNameMinter(g *symbol.Grammar) *nameMinter {
	used := map[string]bool{}
	for _, nt := range g.NonTerminals() {
		used[nt.Name()] = true
	}
	for _, nt := range g.UtilityNonTerminals() {
		used[nt.Name()] = true
	}
	return &nameMinter{used: used}
}

func (m *nameMinter) mint(base string) symbol.Nonterminal {
	candidate := base + "-P"
	for m.used[candidate] {
		candidate += "P"
	}
	m.used[candidate] = true
	return symbol.NT(candidate)
}
