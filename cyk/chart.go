// Package cyk implements the bottom-up CYK recognizer and parser over a
// grammar already in Chomsky Normal Form.
package cyk

import (
	"github.com/dekarrin/cfgparse/lex"
	"github.com/dekarrin/cfgparse/symbol"
)

type ptree = *symbol.SyntaxTree[symbol.Production, symbol.InputRange]

// cellEntry pairs a root nonterminal name with the one candidate subtree
// kept for it in a cell.
type cellEntry struct {
	name string
	tree ptree
}

// cell holds, for one (span, start) pair, at most one candidate subtree per
// root production pattern, first-discovered wins. Entries are also kept in
// an insertion-ordered slice so that combining two cells iterates in a
// fixed, grammar-determined order rather than Go's randomized map order —
// required so that the same grammar and input always produce the same tree.
type cell struct {
	index   map[string]int
	entries []cellEntry
}

func newCell() cell {
	return cell{index: map[string]int{}}
}

func (c *cell) get(name string) (ptree, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.entries[i].tree, true
}

func (c *cell) setIfAbsent(name string, t ptree) {
	if _, ok := c.index[name]; ok {
		return
	}
	c.index[name] = len(c.entries)
	c.entries = append(c.entries, cellEntry{name: name, tree: t})
}

// chart is the triangular CYK table: rows[i][j] spans tokens [j, j+i+1).
type chart struct {
	rows [][]cell
	n    int
}

// build constructs the full CYK chart for a CNF grammar g over lattice.
func build(g *symbol.Grammar, lattice lex.TokenLattice) *chart {
	n := lattice.Len()

	finals := map[uint64][]symbol.Production{} // terminal hash -> final productions matching it
	var binaries map[string][]symbol.Production
	binaries = map[string][]symbol.Production{}

	for _, p := range g.Productions() {
		switch {
		case len(p.Body) == 1 && p.Body[0].IsTerminal():
			h := p.Body[0].Terminal().Hash()
			finals[h] = append(finals[h], p)
		case len(p.Body) == 2:
			key := p.Body[0].Nonterminal().Name() + "|" + p.Body[1].Nonterminal().Name()
			binaries[key] = append(binaries[key], p)
		}
	}

	rows := make([][]cell, n)
	if n == 0 {
		return &chart{rows: rows, n: 0}
	}

	rows[0] = make([]cell, n)
	for j := 0; j < n; j++ {
		c := newCell()
		for _, entry := range lattice[j] {
			for _, p := range finals[entry.Terminal.Hash()] {
				if !p.Body[0].Terminal().Equal(entry.Terminal) {
					continue
				}
				c.setIfAbsent(p.Pattern.Name(), symbol.NewNode[symbol.Production, symbol.InputRange](p, []ptree{entry.Leaf}))
			}
		}
		rows[0][j] = c
	}

	for row := 1; row < n; row++ {
		cols := n - row
		rows[row] = make([]cell, cols)
		for col := 0; col < cols; col++ {
			c := newCell()
			for offset := 1; offset <= row; offset++ {
				left := rows[row-offset][col]
				right := rows[offset-1][col+row-offset+1]

				for _, le := range left.entries {
					for _, re := range right.entries {
						key := le.name + "|" + re.name
						for _, p := range binaries[key] {
							c.setIfAbsent(p.Pattern.Name(), symbol.NewNode[symbol.Production, symbol.InputRange](p, []ptree{le.tree, re.tree}))
						}
					}
				}
			}
			rows[row][col] = c
		}
	}

	return &chart{rows: rows, n: n}
}
