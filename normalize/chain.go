package normalize

import "github.com/dekarrin/cfgparse/symbol"

// eliminateChains collapses chain productions. For each nonterminal A, the
// chain-closure reach(A) pairs every B reachable from A via chain
// productions alone with the ordered list of intermediate nonterminals
// [C1, ..., Cn-1, B] witnessing that derivation. Every non-chain production
// of a reached B is re-emitted with pattern A, tagged with that chain so
// CYK reconstruction can splice the collapsed nodes back in.
func eliminateChains(g *symbol.Grammar) *symbol.Grammar {
	chainEdges := map[string][]symbol.Nonterminal{}
	nonChain := map[string][]symbol.Production{}

	for _, p := range g.Productions() {
		if p.IsChain() {
			chainEdges[p.Pattern.Name()] = append(chainEdges[p.Pattern.Name()], p.Body[0].Nonterminal())
		} else {
			nonChain[p.Pattern.Name()] = append(nonChain[p.Pattern.Name()], p)
		}
	}

	out := symbol.New(g.Start())
	for _, nt := range g.UtilityNonTerminals() {
		out.MarkUtility(nt)
	}

	for _, nt := range g.NonTerminals() {
		for _, p := range nonChain[nt.Name()] {
			out.AddProduction(p)
		}

		for _, reached := range chainClosure(nt, chainEdges) {
			for _, p := range nonChain[reached.to.Name()] {
				out.AddProduction(symbol.Production{
					Pattern:          nt,
					Body:             p.Body,
					NonTerminalChain: reached.chain,
				})
			}
		}
	}

	return out
}

type chainReach struct {
	to    symbol.Nonterminal
	chain []symbol.Nonterminal // [C1, ..., Cn-1, to]
}

// chainClosure walks chainEdges breadth-first from start, recording the
// first (shortest) witnessing chain to each reachable nonterminal. The walk
// order is determined entirely by the order productions were added to the
// grammar, so it is deterministic for a fixed grammar.
func chainClosure(start symbol.Nonterminal, chainEdges map[string][]symbol.Nonterminal) []chainReach {
	var out []chainReach
	visited := map[string]bool{start.Name(): true}

	type queued struct {
		nt    symbol.Nonterminal
		chain []symbol.Nonterminal
	}
	queue := []queued{{nt: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range chainEdges[cur.nt.Name()] {
			if visited[next.Name()] {
				continue
			}
			visited[next.Name()] = true

			chain := make([]symbol.Nonterminal, len(cur.chain)+1)
			copy(chain, cur.chain)
			chain[len(chain)-1] = next

			out = append(out, chainReach{to: next, chain: chain})
			queue = append(queue, queued{nt: next, chain: chain})
		}
	}

	return out
}
