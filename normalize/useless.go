package normalize

import "github.com/dekarrin/cfgparse/symbol"

// pruneUseless drops unproductive nonterminals (those that can never derive
// a string of terminals) and then drops unreachable ones (those no longer
// reachable from start). Doing
// non-generating removal before unreachable removal, in that order, is
// enough in one pass — removing non-generating symbols cannot make a
// previously-unreachable symbol reachable, and an unreachable symbol can
// never resurrect a non-generating one.
func pruneUseless(g *symbol.Grammar) *symbol.Grammar {
	g = pruneNonGenerating(g)
	g = pruneUnreachable(g)
	return g
}

func pruneNonGenerating(g *symbol.Grammar) *symbol.Grammar {
	productive := map[string]bool{}
	changed := true
	for changed {
		changed = false
		for _, nt := range g.NonTerminals() {
			if productive[nt.Name()] {
				continue
			}
			for _, p := range g.ProductionsFor(nt) {
				ok := true
				for _, child := range p.GeneratedNonTerminals() {
					if !productive[child.Name()] {
						ok = false
						break
					}
				}
				if ok {
					productive[nt.Name()] = true
					changed = true
					break
				}
			}
		}
	}

	out := symbol.New(g.Start())
	for _, p := range g.Productions() {
		if !productive[p.Pattern.Name()] {
			continue
		}
		keep := true
		for _, child := range p.GeneratedNonTerminals() {
			if !productive[child.Name()] {
				keep = false
				break
			}
		}
		if keep {
			out.AddProduction(p)
		}
	}
	for _, nt := range g.UtilityNonTerminals() {
		if productive[nt.Name()] {
			out.MarkUtility(nt)
		}
	}
	return out
}

func pruneUnreachable(g *symbol.Grammar) *symbol.Grammar {
	reachable := map[string]bool{g.Start().Name(): true}
	queue := []symbol.Nonterminal{g.Start()}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, p := range g.ProductionsFor(nt) {
			for _, child := range p.GeneratedNonTerminals() {
				if !reachable[child.Name()] {
					reachable[child.Name()] = true
					queue = append(queue, child)
				}
			}
		}
	}

	out := symbol.New(g.Start())
	for _, p := range g.Productions() {
		if reachable[p.Pattern.Name()] {
			out.AddProduction(p)
		}
	}
	for _, nt := range g.UtilityNonTerminals() {
		if reachable[nt.Name()] {
			out.MarkUtility(nt)
		}
	}
	return out
}
