package cyk

import (
	"github.com/dekarrin/cfgparse/lex"
	"github.com/dekarrin/cfgparse/symbol"
	"github.com/dekarrin/cfgparse/synerr"
)

// Recognizes reports whether g (already in Chomsky Normal Form) derives
// input's tokenization, without building a tree.
func Recognizes(g *symbol.Grammar, lattice lex.TokenLattice) bool {
	n := lattice.Len()
	if n == 0 {
		return hasStartEpsilon(g)
	}
	c := build(g, lattice)
	_, ok := c.rows[n-1][0].get(g.Start().Name())
	return ok
}

// Parse runs the CYK chart algorithm over g and lattice and, on success,
// reconstructs the single representative parse tree. g must
// already be in Chomsky Normal Form; input is only used to build a located
// *synerr.Error on failure.
func Parse(g *symbol.Grammar, lattice lex.TokenLattice, input string) (OutTree, error) {
	n := lattice.Len()
	if n == 0 {
		if hasStartEpsilon(g) {
			return symbol.NewNode[symbol.Nonterminal, symbol.InputRange](g.Start(), nil), nil
		}
		return nil, synerr.New(synerr.EmptyNotAllowed, input, symbol.InputRange{Start: 0, End: 0}, nil)
	}

	c := build(g, lattice)

	if t, ok := c.rows[n-1][0].get(g.Start().Name()); ok {
		return reconstruct(g, t), nil
	}

	return nil, synerr.New(synerr.UnmatchedPattern, input, locateFailure(c, lattice, g.Start().Name()), nil)
}

func hasStartEpsilon(g *symbol.Grammar) bool {
	for _, p := range g.ProductionsFor(g.Start()) {
		if p.IsEpsilon() {
			return true
		}
	}
	return false
}

// locateFailure finds the largest leftmost span, starting at token 0, that
// was derivable from the start symbol, then points at the token immediately
// following it: the span where the derivation runs out. This function is
// only called when the full-width cell (row c.n-1) already failed to match,
// so any row found here covers strictly fewer than c.n tokens and there is
// always a next token to point at.
func locateFailure(c *chart, lattice lex.TokenLattice, startName string) symbol.InputRange {
	for row := c.n - 2; row >= 0; row-- {
		if _, ok := c.rows[row][0].get(startName); ok {
			return lattice[row+1][0].Range()
		}
	}
	return lattice[0][0].Range()
}
