package cfgparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cfgparse "github.com/dekarrin/cfgparse"
	"github.com/dekarrin/cfgparse/symbol"
	"github.com/dekarrin/cfgparse/synerr"
)

func nullableStartGrammar() *symbol.Grammar {
	S := symbol.NT("S")
	a := symbol.NewLiteral("a")

	g := symbol.New(S)
	g.AddProduction(symbol.NewProduction(S, symbol.Term(a), symbol.NonTerm(S)))
	g.AddProduction(symbol.NewProduction(S))
	return g
}

// selfEmbeddingGrammar makes the start symbol appear on some production's
// body, forcing epsilon-elimination to mint a synthetic start (normalize's
// eliminateEpsilons, the "startUsedInBody" branch) so SyntaxTree can be
// checked against the derelativizing unwrap in Parser.
func selfEmbeddingGrammar() *symbol.Grammar {
	S := symbol.NT("S")
	a := symbol.NewLiteral("a")

	g := symbol.New(S)
	g.AddProduction(symbol.NewProduction(S, symbol.Term(a), symbol.NonTerm(S), symbol.NonTerm(S)))
	g.AddProduction(symbol.NewProduction(S))
	return g
}

func TestParser_CYK_NullableStart(t *testing.T) {
	assert := assert.New(t)
	p := cfgparse.NewParser(nullableStartGrammar(), cfgparse.CYK)

	assert.True(p.Recognizes(""))
	tree, err := p.SyntaxTree("")
	assert.NoError(err)
	if assert.NotNil(tree) {
		assert.Equal("S", tree.Key().Name())
	}

	assert.True(p.Recognizes("aaa"))
}

func TestParser_CYK_UnwrapsSyntheticStart(t *testing.T) {
	assert := assert.New(t)
	p := cfgparse.NewParser(selfEmbeddingGrammar(), cfgparse.CYK)

	tree, err := p.SyntaxTree("")
	assert.NoError(err)
	if assert.NotNil(tree) {
		assert.Equal("S", tree.Key().Name())
	}

	tree, err = p.SyntaxTree("a")
	assert.NoError(err)
	if assert.NotNil(tree) {
		assert.Equal("S", tree.Key().Name())
	}
}

func TestParser_Earley_UnknownToken(t *testing.T) {
	assert := assert.New(t)
	S := symbol.NT("S")
	g := symbol.New(S)
	g.AddProduction(symbol.NewProduction(S, symbol.Term(symbol.NewLiteral("a"))))

	p := cfgparse.NewParser(g, cfgparse.Earley)
	tree, err := p.SyntaxTree("b")
	assert.Nil(tree)
	if assert.Error(err) {
		assert.ErrorIs(err, synerr.ErrUnknownToken)
	}
}

func TestParser_CYK_RecognizesAcrossRepeatedCalls(t *testing.T) {
	assert := assert.New(t)
	p := cfgparse.NewParser(nullableStartGrammar(), cfgparse.CYK)

	assert.True(p.Recognizes("a"))
	assert.True(p.Recognizes("aa"))
	assert.True(p.Recognizes("aaa"))
}
