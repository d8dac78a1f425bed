package cyk

import "github.com/dekarrin/cfgparse/symbol"

// OutTree is the externally visible parse tree shape: nodes keyed by the
// nonterminal that produced them.
type OutTree = *symbol.SyntaxTree[symbol.Nonterminal, symbol.InputRange]

// reconstruct turns a CNF-chart tree (keyed by the Production that built
// each node) back into the shape a caller who never saw the normalized
// grammar would recognize: unfold re-expands chain-collapsed productions
// into the nonterminals they stood in for, then explode splices out nodes
// introduced purely by normalization (mixed-production and long-body
// helpers).
func reconstruct(g *symbol.Grammar, t ptree) OutTree {
	return explode(g, unfold(t))
}

// unfold rewrites a Production-keyed node to a Nonterminal-keyed one,
// reinserting any chain nonterminals the production's pattern was collapsed
// through.
//
// A production tagged with nonTerminalChain = [c1, ..., ck] arose from a
// chain A => c1 => c2 => ... => ck = B, B -> body. S -> A, A -> B, B -> 'x'
// must collapse back to S(A(B(leaf))) rather than S(B(A(leaf))), which means
// c1 nests outermost and ck innermost.
func unfold(t ptree) OutTree {
	if t.IsLeaf() {
		return symbol.NewLeaf[symbol.Nonterminal, symbol.InputRange](t.Label())
	}

	prod := t.Key()
	children := make([]OutTree, len(t.Children()))
	for i, c := range t.Children() {
		children[i] = unfold(c)
	}

	if len(prod.NonTerminalChain) > 0 {
		chain := prod.NonTerminalChain
		cur := children
		for i := len(chain) - 1; i >= 0; i-- {
			cur = []OutTree{symbol.NewNode[symbol.Nonterminal, symbol.InputRange](chain[i], cur)}
		}
		children = cur
	}

	return symbol.NewNode[symbol.Nonterminal, symbol.InputRange](prod.Pattern, children)
}

// explode splices utility nodes (mixed-production and long-body helpers)
// out of the tree, replacing each with its own children in its parent's
// child list. It walks iteratively with an explicit stack rather than plain
// recursion since CYK trees can be as deep as the input is long.
func explode(g *symbol.Grammar, root OutTree) OutTree {
	if root.IsLeaf() {
		return root
	}

	type frame struct {
		node    OutTree
		visited bool
	}

	resolved := map[OutTree][]OutTree{}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.IsLeaf() {
			continue
		}

		if !f.visited {
			stack = append(stack, frame{node: f.node, visited: true})
			for _, c := range f.node.Children() {
				stack = append(stack, frame{node: c})
			}
			continue
		}

		var spliced []OutTree
		for _, c := range f.node.Children() {
			if c.IsLeaf() {
				spliced = append(spliced, c)
				continue
			}
			rebuiltChildren := resolved[c]
			if g.IsUtility(c.Key()) {
				spliced = append(spliced, rebuiltChildren...)
			} else {
				spliced = append(spliced, symbol.NewNode[symbol.Nonterminal, symbol.InputRange](c.Key(), rebuiltChildren))
			}
		}
		resolved[f.node] = spliced
	}

	return symbol.NewNode[symbol.Nonterminal, symbol.InputRange](root.Key(), resolved[root])
}
