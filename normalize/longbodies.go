package normalize

import "github.com/dekarrin/cfgparse/symbol"

// breakLongBodies rewrites any body of length k >= 3 as a right-linear
// cascade through fresh nonterminals, so that every surviving production has
// at most two symbols in its body.
func breakLongBodies(g *symbol.Grammar, minter *nameMinter) *symbol.Grammar {
	out := symbol.New(g.Start())
	for _, nt := range g.UtilityNonTerminals() {
		out.MarkUtility(nt)
	}

	for _, p := range g.Productions() {
		if len(p.Body) <= 2 {
			out.AddProduction(p)
			continue
		}

		pattern := p.Pattern
		body := p.Body
		for len(body) > 2 {
			fresh := minter.mint(p.Pattern.Name())
			out.MarkUtility(fresh)
			out.AddProduction(symbol.NewProduction(pattern, body[0], symbol.NonTerm(fresh)))
			pattern = fresh
			body = body[1:]
		}
		out.AddProduction(symbol.NewProduction(pattern, body...))
	}

	return out
}
