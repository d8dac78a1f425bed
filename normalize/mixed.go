package normalize

import "github.com/dekarrin/cfgparse/symbol"

// eliminateMixed rewrites bodies so none mixes terminals and nonterminals:
// for any body of length >= 2 containing a terminal t, substitute t with a
// fresh nonterminal T_t and add
// T_t -> t. The same fresh nonterminal is reused for every occurrence of an
// equal terminal, so a grammar with the literal 'a' appearing in ten mixed
// bodies gets exactly one T_a, not ten.
func eliminateMixed(g *symbol.Grammar, minter *nameMinter) *symbol.Grammar {
	out := symbol.New(g.Start())
	for _, nt := range g.UtilityNonTerminals() {
		out.MarkUtility(nt)
	}

	type termNT struct {
		t  symbol.Terminal
		nt symbol.Nonterminal
	}
	var minted []termNT

	wrapperFor := func(t symbol.Terminal) symbol.Nonterminal {
		for _, tn := range minted {
			if tn.t.Equal(t) {
				return tn.nt
			}
		}
		nt := minter.mint("T")
		out.MarkUtility(nt)
		out.AddProduction(symbol.NewProduction(nt, symbol.Term(t)))
		minted = append(minted, termNT{t: t, nt: nt})
		return nt
	}

	for _, p := range g.Productions() {
		if len(p.Body) < 2 {
			out.AddProduction(p)
			continue
		}

		newBody := make([]symbol.Symbol, len(p.Body))
		for i, s := range p.Body {
			if s.IsTerminal() {
				newBody[i] = symbol.NonTerm(wrapperFor(s.Terminal()))
			} else {
				newBody[i] = s
			}
		}
		out.AddProduction(symbol.NewProduction(p.Pattern, newBody...))
	}

	return out
}
