// Package cfgparse ties the tokenizer, normalizer, and the two parsing
// backends (CYK and Earley) into a single Parser facade over one grammar.
package cfgparse

import (
	"sync"

	"github.com/dekarrin/cfgparse/cyk"
	"github.com/dekarrin/cfgparse/earley"
	"github.com/dekarrin/cfgparse/lex"
	"github.com/dekarrin/cfgparse/normalize"
	"github.com/dekarrin/cfgparse/symbol"
)

// Algorithm selects which parsing backend a Parser uses.
type Algorithm int

const (
	// CYK requires lazily normalizing the grammar to Chomsky Normal Form on
	// first use, but guarantees O(n^3 * |G|) worst-case time.
	CYK Algorithm = iota
	// Earley operates directly on the grammar as authored, at the cost of
	// a richer chart representation.
	Earley
)

// Tree is the externally visible parse tree shape both backends produce.
type Tree = *symbol.SyntaxTree[symbol.Nonterminal, symbol.InputRange]

// Parser binds one grammar to one parsing algorithm. It is safe for
// concurrent use: the normalized grammar a CYK parser needs is computed at
// most once, behind a sync.Once, regardless of how many goroutines call in
// concurrently.
type Parser struct {
	grammar *symbol.Grammar
	algo    Algorithm

	cnfOnce sync.Once
	cnf     *symbol.Grammar
}

// NewParser builds a Parser over g using the given algorithm. g is not
// copied; callers must not mutate it after construction.
func NewParser(g *symbol.Grammar, algo Algorithm) *Parser {
	return &Parser{grammar: g, algo: algo}
}

// Grammar returns the grammar this parser was built from, as authored (not
// normalized).
func (p *Parser) Grammar() *symbol.Grammar { return p.grammar }

func (p *Parser) normalized() *symbol.Grammar {
	p.cnfOnce.Do(func() {
		p.cnf = normalize.ToCNF(p.grammar)
	})
	return p.cnf
}

// Tokenize splits input into a TokenLattice against this parser's grammar.
func (p *Parser) Tokenize(input string) (lex.TokenLattice, error) {
	return lex.Tokenize(input, p.grammar)
}

// Recognizes reports whether input belongs to the grammar's language,
// without building a tree.
func (p *Parser) Recognizes(input string) bool {
	lattice, err := p.Tokenize(input)
	if err != nil {
		return false
	}
	switch p.algo {
	case Earley:
		return earley.Recognizes(p.grammar, lattice)
	default:
		return cyk.Recognizes(p.normalized(), lattice)
	}
}

// SyntaxTree tokenizes and parses input, returning the single representative
// parse tree. Failures are always a *synerr.Error.
func (p *Parser) SyntaxTree(input string) (Tree, error) {
	lattice, err := p.Tokenize(input)
	if err != nil {
		return nil, err
	}

	if p.algo == Earley {
		return earley.Parse(p.grammar, lattice, input)
	}

	tree, err := cyk.Parse(p.normalized(), lattice, input)
	if err != nil {
		return nil, err
	}
	return p.derelativize(tree), nil
}

// derelativize undoes the start-symbol wrapping epsilon-elimination may
// have introduced (normalize/epsilon.go), so that a caller who only knows
// the grammar as authored always sees its own start symbol at the tree
// root, never the synthetic one.
func (p *Parser) derelativize(tree Tree) Tree {
	userStart := p.grammar.Start()
	normStart := p.normalized().Start()
	if normStart.Equal(userStart) {
		return tree
	}

	children := tree.Children()
	if len(children) == 1 {
		return children[0]
	}
	// The synthetic start derived epsilon directly; there is no user-level
	// subtree to promote, only the fact that the user's start is nullable.
	return symbol.NewNode[symbol.Nonterminal, symbol.InputRange](userStart, nil)
}
