package earley_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgparse/earley"
	"github.com/dekarrin/cfgparse/lex"
	"github.com/dekarrin/cfgparse/symbol"
	"github.com/dekarrin/cfgparse/synerr"
)

// ambiguousSumGrammar builds E -> E '+' E | 'a', the classic ambiguous
// grammar used to check for deterministic tie-breaking under ambiguity.
func ambiguousSumGrammar() *symbol.Grammar {
	E := symbol.NT("E")
	plus := symbol.NewLiteral("+")
	a := symbol.NewLiteral("a")

	g := symbol.New(E)
	g.AddProduction(symbol.NewProduction(E, symbol.NonTerm(E), symbol.Term(plus), symbol.NonTerm(E)))
	g.AddProduction(symbol.NewProduction(E, symbol.Term(a)))
	return g
}

// nullableStartGrammar builds S -> 'a' S | ε, a nullable-start
// scenario.
func nullableStartGrammar() *symbol.Grammar {
	S := symbol.NT("S")
	a := symbol.NewLiteral("a")

	g := symbol.New(S)
	g.AddProduction(symbol.NewProduction(S, symbol.Term(a), symbol.NonTerm(S)))
	g.AddProduction(symbol.NewProduction(S))
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

func TestEarley_NullableStart(t *testing.T) {
	assert := assert.New(t)
	g := nullableStartGrammar()

	lattice := tokenize(t, "", g)
	tree, err := earley.Parse(g, lattice, "")
	assert.NoError(err)
	if assert.NotNil(tree) {
		assert.Equal("S", tree.Key().Name())
		assert.Empty(tree.Children())
	}

	lattice = tokenize(t, "aaa", g)
	tree, err = earley.Parse(g, lattice, "aaa")
	assert.NoError(err)
	if assert.NotNil(tree) {
		depth := 1
		cur := tree
		for !cur.IsLeaf() && len(cur.Children()) > 0 {
			cur = cur.Children()[len(cur.Children())-1]
			depth++
		}
		assert.Equal(4, depth)
	}
}

func TestEarley_AmbiguityDeterminism(t *testing.T) {
	assert := assert.New(t)
	g := ambiguousSumGrammar()
	lattice := tokenize(t, "a+a+a", g)

	first, err := earley.Parse(g, lattice, "a+a+a")
	assert.NoError(err)

	for i := 0; i < 5; i++ {
		again, err := earley.Parse(g, lattice, "a+a+a")
		assert.NoError(err)
		assert.Equal(first.String(), again.String())
	}
}

func TestEarley_UnexpectedToken(t *testing.T) {
	assert := assert.New(t)
	S := symbol.NT("S")
	a, b := symbol.NewLiteral("a"), symbol.NewLiteral("b")
	g := symbol.New(S)
	g.AddProduction(symbol.NewProduction(S, symbol.Term(a), symbol.Term(b)))

	lattice := tokenize(t, "ab", g)
	_, err := earley.Parse(g, lattice, "ab")
	assert.NoError(err)

	lattice = tokenize(t, "aa", g)
	tree, err := earley.Parse(g, lattice, "aa")
	assert.Nil(tree)
	if assert.Error(err) {
		assert.True(assert.ObjectsAreEqual(synerr.UnexpectedToken, err.(*synerr.Error).Reason))
	}
}

func TestEarley_UnmatchedPattern_RunsOutOfInput(t *testing.T) {
	assert := assert.New(t)
	S := symbol.NT("S")
	a := symbol.NewLiteral("a")
	g := symbol.New(S)
	g.AddProduction(symbol.NewProduction(S, symbol.Term(a), symbol.Term(a)))

	lattice := tokenize(t, "a", g)
	tree, err := earley.Parse(g, lattice, "a")
	assert.Nil(tree)
	if assert.Error(err) {
		assert.True(assert.ObjectsAreEqual(synerr.UnmatchedPattern, err.(*synerr.Error).Reason))
	}
}
