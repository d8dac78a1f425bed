package earley

import "github.com/dekarrin/cfgparse/symbol"

// nullableWitnesses computes, by fixpoint, one representative Production-
// keyed derivation tree per nullable nonterminal. It is used by predict's
// nullable-aware shortcut to advance a waiting item past a
// nullable symbol without needing that symbol's own epsilon item to be
// completed first, avoiding the classic Earley nullable-prediction bug.
func nullableWitnesses(g *symbol.Grammar) map[string]ptree {
	witness := map[string]ptree{}
	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions() {
			if _, ok := witness[p.Pattern.Name()]; ok {
				continue
			}
			if p.IsEpsilon() {
				witness[p.Pattern.Name()] = symbol.NewNode[symbol.Production, symbol.InputRange](p, nil)
				changed = true
				continue
			}
			children := make([]ptree, len(p.Body))
			ok := true
			for i, s := range p.Body {
				if s.IsTerminal() {
					ok = false
					break
				}
				w, found := witness[s.Nonterminal().Name()]
				if !found {
					ok = false
					break
				}
				children[i] = w
			}
			if ok {
				witness[p.Pattern.Name()] = symbol.NewNode[symbol.Production, symbol.InputRange](p, children)
				changed = true
			}
		}
	}
	return witness
}
