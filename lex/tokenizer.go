package lex

import (
	"github.com/dekarrin/cfgparse/symbol"
	"github.com/dekarrin/cfgparse/synerr"
)

// Tokenize walks input left to right, matching every terminal in g against
// the current position and grouping the matches by their length. It
// advances by the length shared by the most terminals; all terminals of that
// length are retained in one lattice slot, encoding tokenization ambiguity.
// When several lengths have the same number of terminals, the longest of
// them wins, which is deterministic for a fixed grammar ordering.
//
// If no terminal matches at a position that is not end-of-input, Tokenize
// returns a *synerr.Error with Reason UnknownToken pointing at the first
// unmatched byte.
func Tokenize(input string, g *symbol.Grammar) (TokenLattice, error) {
	terminals := g.Terminals()

	var lattice TokenLattice
	pos := 0
	for pos < len(input) {
		byLen := map[int][]symbol.Terminal{}
		maxLen := 0

		for _, t := range terminals {
			n, ok := t.MatchPrefix(input[pos:])
			if !ok || n == 0 {
				continue
			}
			byLen[n] = append(byLen[n], t)
			if n > maxLen {
				maxLen = n
			}
		}

		if maxLen == 0 {
			return nil, synerr.New(synerr.UnknownToken, input, symbol.InputRange{Start: pos, End: pos + 1}, nil)
		}

		bestLen := maxLen
		for n, ts := range byLen {
			if len(ts) > len(byLen[bestLen]) || (len(ts) == len(byLen[bestLen]) && n > bestLen) {
				bestLen = n
			}
		}

		rng := symbol.InputRange{Start: pos, End: pos + bestLen}
		slot := make(LatticeSlot, 0, len(byLen[bestLen]))
		for _, t := range byLen[bestLen] {
			slot = append(slot, LatticeEntry{
				Terminal: t,
				Leaf:     symbol.NewLeaf[symbol.Production, symbol.InputRange](rng),
			})
		}

		lattice = append(lattice, slot)
		pos += bestLen
	}

	return lattice, nil
}
