// Package lex implements the tokenizer that turns an input string into a
// TokenLattice: the shared front end both the CYK and Earley parsers
// consume.
package lex

import "github.com/dekarrin/cfgparse/symbol"

// LeafTree is the concrete instantiation of SyntaxTree used for lattice
// leaves: terminal matches carry only the input range they covered.
type LeafTree = *symbol.SyntaxTree[symbol.Production, symbol.InputRange]

// LatticeEntry pairs one successful terminal match with the leaf tree node
// parsers will splice into their output.
type LatticeEntry struct {
	Terminal symbol.Terminal
	Leaf     LeafTree
}

// Range returns the input range this entry's leaf covers.
func (e LatticeEntry) Range() symbol.InputRange { return e.Leaf.Label() }

// LatticeSlot is the nonempty set of alternative terminal matches starting
// at one input position.
type LatticeSlot []LatticeEntry

// TokenLattice is an ordered sequence, one slot per tokenized position.
// Multiple entries in a slot encode tokenization ambiguity; all are
// retained for the parsers to disambiguate.
type TokenLattice []LatticeSlot

// Len returns the number of token positions (not input bytes).
func (l TokenLattice) Len() int { return len(l) }

// Matches reports whether slot i contains an entry for terminal t.
func (l TokenLattice) Matches(i int, t symbol.Terminal) (LatticeEntry, bool) {
	if i < 0 || i >= len(l) {
		return LatticeEntry{}, false
	}
	for _, e := range l[i] {
		if e.Terminal.Equal(t) {
			return e, true
		}
	}
	return LatticeEntry{}, false
}
