package persist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/cfgparse/persist"
	"github.com/dekarrin/cfgparse/symbol"
)

func sampleGrammar() *symbol.Grammar {
	S, A := symbol.NT("S"), symbol.NT("A")
	digit := symbol.NewCharRange('0', '9')
	word := symbol.MustRegex(`[a-z]+`)

	g := symbol.New(S)
	g.AddProduction(symbol.NewProduction(S, symbol.Term(digit), symbol.NonTerm(A)))
	g.AddProduction(symbol.NewProduction(A, symbol.Term(word)))
	g.MarkUtility(A)
	return g
}

func TestBinaryRoundTrip(t *testing.T) {
	assert := assert.New(t)
	g := sampleGrammar()

	data := persist.EncodeBinary(g)
	decoded, err := persist.DecodeBinary(data)
	assert.NoError(err)
	if assert.NotNil(decoded) {
		assert.Equal("S", decoded.Start().Name())
		assert.Len(decoded.Productions(), 2)
		assert.True(decoded.IsUtility(symbol.NT("A")))
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	assert := assert.New(t)
	g := sampleGrammar()

	data, err := persist.EncodeTOML(g)
	assert.NoError(err)

	decoded, err := persist.DecodeTOML(data)
	assert.NoError(err)
	if assert.NotNil(decoded) {
		assert.Equal("S", decoded.Start().Name())
		assert.Len(decoded.Productions(), 2)
	}
}

func TestTOMLRejectsMalformedCharRangeBounds(t *testing.T) {
	assert := assert.New(t)

	data := []byte(`
start = "S"

[[productions]]
pattern = "S"

  [[productions.body]]
  type = "characterRange"
  lowerBound = "ab"
  upperBound = "z"
`)

	_, err := persist.DecodeTOML(data)
	assert.Error(err)
}
