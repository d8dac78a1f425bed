package earley

import (
	"github.com/dekarrin/cfgparse/lex"
	"github.com/dekarrin/cfgparse/symbol"
	"github.com/dekarrin/cfgparse/synerr"
)

// chart is the sequence of columns S0..Sn built while parsing.
type chart struct {
	columns []*column
}

func build(g *symbol.Grammar, lattice lex.TokenLattice) *chart {
	n := lattice.Len()
	witness := nullableWitnesses(g)

	columns := make([]*column, n+1)
	for i := range columns {
		columns[i] = newColumn()
	}

	for _, p := range g.ProductionsFor(g.Start()) {
		columns[0].add(item{prod: p, dot: 0, origin: 0})
	}

	for k := 0; k <= n; k++ {
		col := columns[k]
		for i := 0; i < len(col.items); i++ {
			it := col.items[i]
			switch {
			case it.isComplete():
				complete(it, k, columns)
			case it.nextSymbol().IsTerminal():
				scan(it, k, lattice, columns)
			default:
				predict(it, k, g, witness, columns)
			}
		}
	}

	return &chart{columns: columns}
}

func predict(it item, k int, g *symbol.Grammar, witness map[string]ptree, columns []*column) {
	next := it.nextSymbol().Nonterminal()

	for _, p := range g.ProductionsFor(next) {
		columns[k].add(item{prod: p, dot: 0, origin: k})
	}

	if w, ok := witness[next.Name()]; ok {
		columns[k].add(it.advance(w))
	}
}

func scan(it item, k int, lattice lex.TokenLattice, columns []*column) {
	if k >= lattice.Len() {
		return
	}
	want := it.nextSymbol().Terminal()
	for _, entry := range lattice[k] {
		if entry.Terminal.Equal(want) {
			columns[k+1].add(it.advance(entry.Leaf))
		}
	}
}

func complete(it item, k int, columns []*column) {
	tree := it.tree()
	origin := columns[it.origin]
	for _, idx := range origin.waitingFor[it.prod.Pattern.Name()] {
		parent := origin.items[idx]
		columns[k].add(parent.advance(tree))
	}
}

// Recognizes reports whether g derives lattice, without building a tree.
func Recognizes(g *symbol.Grammar, lattice lex.TokenLattice) bool {
	c := build(g, lattice)
	n := lattice.Len()
	_, ok := findAccepting(c, n, g.Start())
	return ok
}

// Parse runs the Earley chart algorithm over g (any CFG, need not be in
// CNF) and lattice, returning the single representative parse tree on
// success.
func Parse(g *symbol.Grammar, lattice lex.TokenLattice, input string) (OutTree, error) {
	n := lattice.Len()
	if n == 0 {
		if w, ok := nullableWitnesses(g)[g.Start().Name()]; ok {
			return flatten(w), nil
		}
		return nil, synerr.New(synerr.EmptyNotAllowed, input, symbol.InputRange{Start: 0, End: 0}, nil)
	}

	c := build(g, lattice)

	if t, ok := findAccepting(c, n, g.Start()); ok {
		return flatten(t), nil
	}

	return nil, locateFailure(c, lattice, input)
}

func findAccepting(c *chart, n int, start symbol.Nonterminal) (ptree, bool) {
	for _, it := range c.columns[n].items {
		if it.isComplete() && it.origin == 0 && it.prod.Pattern.Equal(start) {
			return it.tree(), true
		}
	}
	return nil, false
}

// locateFailure finds the highest column that holds any item at all, then
// classifies and locates the failure.
func locateFailure(c *chart, lattice lex.TokenLattice, input string) *synerr.Error {
	n := len(c.columns) - 1
	kStar := 0
	for k := n; k >= 0; k-- {
		if len(c.columns[k].items) > 0 {
			kStar = k
			break
		}
	}

	var context []symbol.Nonterminal
	seen := map[string]bool{}
	for _, it := range c.columns[kStar].items {
		if it.isComplete() || it.nextSymbol().IsTerminal() {
			continue
		}
		nt := it.nextSymbol().Nonterminal()
		if !seen[nt.Name()] {
			seen[nt.Name()] = true
			context = append(context, nt)
		}
	}

	if kStar < n {
		rng, ok := tokenRange(lattice, kStar)
		if !ok {
			rng = symbol.InputRange{Start: len(input), End: len(input)}
		}
		return synerr.New(synerr.UnexpectedToken, input, rng, context)
	}

	rng := symbol.InputRange{Start: len(input), End: len(input)}
	return synerr.New(synerr.UnmatchedPattern, input, rng, context)
}

// flatten converts a Production-keyed tree into the Nonterminal-keyed shape
// callers see. Earley operates on the grammar as authored, so there is no
// chain bookkeeping to re-expand and no utility nonterminals to splice out;
// this is a direct structural relabeling.
func flatten(t ptree) OutTree {
	if t.IsLeaf() {
		return symbol.NewLeaf[symbol.Nonterminal, symbol.InputRange](t.Label())
	}
	children := make([]OutTree, len(t.Children()))
	for i, c := range t.Children() {
		children[i] = flatten(c)
	}
	return symbol.NewNode[symbol.Nonterminal, symbol.InputRange](t.Key().Pattern, children)
}
