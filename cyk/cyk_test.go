package cyk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgparse/cyk"
	"github.com/dekarrin/cfgparse/lex"
	"github.com/dekarrin/cfgparse/normalize"
	"github.com/dekarrin/cfgparse/symbol"
)

// arithGrammar builds the classic E -> E + T | T; T -> T * F | F;
// F -> ( E ) | id grammar used for the CYK worked examples.
func arithGrammar() *symbol.Grammar {
	E, T, F := symbol.NT("E"), symbol.NT("T"), symbol.NT("F")
	id := symbol.NewLiteral("id")
	plus := symbol.NewLiteral("+")
	star := symbol.NewLiteral("*")
	lparen := symbol.NewLiteral("(")
	rparen := symbol.NewLiteral(")")

	g := symbol.New(E)
	g.AddProduction(symbol.NewProduction(E, symbol.NonTerm(E), symbol.Term(plus), symbol.NonTerm(T)))
	g.AddProduction(symbol.NewProduction(E, symbol.NonTerm(T)))
	g.AddProduction(symbol.NewProduction(T, symbol.NonTerm(T), symbol.Term(star), symbol.NonTerm(F)))
	g.AddProduction(symbol.NewProduction(T, symbol.NonTerm(F)))
	g.AddProduction(symbol.NewProduction(F, symbol.Term(lparen), symbol.NonTerm(E), symbol.Term(rparen)))
	g.AddProduction(symbol.NewProduction(F, symbol.Term(id)))
	return g
}

func chainGrammar() *symbol.Grammar {
	S, A, B := symbol.NT("S"), symbol.NT("A"), symbol.NT("B")
	x := symbol.NewLiteral("x")

	g := symbol.New(S)
	g.AddProduction(symbol.NewProduction(S, symbol.NonTerm(A)))
	g.AddProduction(symbol.NewProduction(A, symbol.NonTerm(B)))
	g.AddProduction(symbol.NewProduction(B, symbol.Term(x)))
	return g
}

func tokenize(t *testing.T, input string, g *symbol.Grammar) lex.TokenLattice {
	t.Helper()
	lattice, err := lex.Tokenize(input, g)
	if err != nil {
		t.Fatalf("tokenize %q: %v", input, err)
	}
	return lattice
}

func TestCYK_Recognizes_Arithmetic(t *testing.T) {
	assert := assert.New(t)
	g := arithGrammar()
	cnf := normalize.ToCNF(g)

	cases := []struct {
		input string
		want  bool
	}{
		{"id+id*id", true},
		{"(id+id)*id", true},
		{"id*", false},
		{"", false},
	}

	for _, tc := range cases {
		lattice := tokenize(t, tc.input, cnf)
		got := cyk.Recognizes(cnf, lattice)
		assert.Equalf(tc.want, got, "input %q", tc.input)
	}
}

func TestCYK_Parse_ChainCollapse(t *testing.T) {
	assert := assert.New(t)
	g := chainGrammar()
	cnf := normalize.ToCNF(g)

	lattice := tokenize(t, "x", cnf)
	tree, err := cyk.Parse(cnf, lattice, "x")
	assert.NoError(err)
	if assert.NotNil(tree) {
		assert.False(tree.IsLeaf())
		assert.Equal("S", tree.Key().Name())
		assert.Len(tree.Children(), 1)

		a := tree.Children()[0]
		assert.Equal("A", a.Key().Name())
		assert.Len(a.Children(), 1)

		b := a.Children()[0]
		assert.Equal("B", b.Key().Name())
		assert.Len(b.Children(), 1)
		assert.True(b.Children()[0].IsLeaf())
	}
}

func TestCYK_Parse_UnmatchedPattern(t *testing.T) {
	assert := assert.New(t)
	g := arithGrammar()
	cnf := normalize.ToCNF(g)

	lattice := tokenize(t, "id*", cnf)
	tree, err := cyk.Parse(cnf, lattice, "id*")
	assert.Nil(tree)
	if assert.Error(err) {
		assert.Contains(err.Error(), "UnmatchedPattern")
	}
}

func TestCYK_Parse_Deterministic(t *testing.T) {
	assert := assert.New(t)
	g := arithGrammar()
	cnf := normalize.ToCNF(g)

	lattice := tokenize(t, "id+id*id", cnf)
	first, err := cyk.Parse(cnf, lattice, "id+id*id")
	assert.NoError(err)

	for i := 0; i < 5; i++ {
		again, err := cyk.Parse(cnf, lattice, "id+id*id")
		assert.NoError(err)
		assert.Equal(first.String(), again.String())
	}
}
