// Package normalize rewrites an arbitrary context-free grammar into
// Chomsky Normal Form, recording the bookkeeping (utility nonterminals and
// per-production nonterminal chains) needed to undo the rewrite on a
// resulting parse tree that CYK then reconstructs.
package normalize

import "github.com/dekarrin/cfgparse/symbol"

// ToCNF runs the five-step normalization pipeline over g and returns an
// equivalent grammar in Chomsky Normal Form. g itself is never mutated.
//
// The steps run in a fixed order, each depending on the shape the previous
// one guarantees:
//  1. drop unproductive and unreachable nonterminals
//  2. eliminate mixed productions
//  3. break bodies of length >= 3 into a binary cascade
//  4. eliminate epsilon productions
//  5. eliminate chain productions
func ToCNF(g *symbol.Grammar) *symbol.Grammar {
	minter := newNameMinter(g)

	g = pruneUseless(g)
	g = eliminateMixed(g, minter)
	g = breakLongBodies(g, minter)
	g = eliminateEpsilons(g, minter)
	g = eliminateChains(g)

	return g
}
