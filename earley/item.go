// Package earley implements the general Earley recognizer and parser,
// operating directly on an unnormalized grammar.
package earley

import (
	"fmt"

	"github.com/dekarrin/cfgparse/lex"
	"github.com/dekarrin/cfgparse/symbol"
)

// ptree is the intermediate tree shape built while walking back-pointers:
// keyed by the Production that produced each node, same as lex.LeafTree and
// the CYK chart's node type.
type ptree = *symbol.SyntaxTree[symbol.Production, symbol.InputRange]

// OutTree is the externally visible parse tree shape.
type OutTree = *symbol.SyntaxTree[symbol.Nonterminal, symbol.InputRange]

// item is an Earley item (A -> alpha . X beta, origin), plus the
// back-pointer children accumulated as the dot has advanced so far.
//
// Only the first-discovered derivation for a given (production, dot,
// origin) triple is kept; alternative back-pointers for an already-seen
// triple are discarded rather than accumulated, since returning one
// deterministic tree never requires enumerating the full parse forest.
type item struct {
	prod     symbol.Production
	dot      int
	origin   int
	children []ptree
}

func (it item) isComplete() bool { return it.dot == len(it.prod.Body) }

func (it item) nextSymbol() symbol.Symbol { return it.prod.Body[it.dot] }

func (it item) key() string {
	return fmt.Sprintf("%s|%d|%d", it.prod.String(), it.dot, it.origin)
}

func (it item) advance(child ptree) item {
	children := make([]ptree, len(it.children)+1)
	copy(children, it.children)
	children[len(it.children)] = child
	return item{prod: it.prod, dot: it.dot + 1, origin: it.origin, children: children}
}

func (it item) tree() ptree {
	return symbol.NewNode[symbol.Production, symbol.InputRange](it.prod, it.children)
}

// column is one Earley chart column: an insertion-ordered item list plus
// indexes used to process and complete items in constant time.
type column struct {
	items      []item
	seen       map[string]bool
	waitingFor map[string][]int // nonterminal name -> indices of items whose next symbol is that nonterminal
}

func newColumn() *column {
	return &column{seen: map[string]bool{}, waitingFor: map[string][]int{}}
}

// add appends it if no item with the same (production, dot, origin) key has
// already been added to this column, returning whether it was added.
func (c *column) add(it item) bool {
	k := it.key()
	if c.seen[k] {
		return false
	}
	c.seen[k] = true
	idx := len(c.items)
	c.items = append(c.items, it)
	if !it.isComplete() && !it.nextSymbol().IsTerminal() {
		name := it.nextSymbol().Nonterminal().Name()
		c.waitingFor[name] = append(c.waitingFor[name], idx)
	}
	return true
}

func tokenRange(lattice lex.TokenLattice, k int) (symbol.InputRange, bool) {
	if k < 0 || k >= lattice.Len() || len(lattice[k]) == 0 {
		return symbol.InputRange{}, false
	}
	return lattice[k][0].Range(), true
}
