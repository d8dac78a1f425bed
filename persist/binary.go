// Package persist serializes grammars to and from a tagged self-describing
// format: a compact binary encoding for storage and a
// human-readable TOML export for hand-authoring and inspection.
package persist

import (
	"fmt"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/cfgparse/symbol"
)

// EncodeBinary serializes g using rezi's binary envelope around Grammar's
// own MarshalBinary implementation, mirroring how game state is persisted
// to the database layer in the original engine.
func EncodeBinary(g *symbol.Grammar) []byte {
	return rezi.EncBinary(g)
}

// DecodeBinary deserializes a grammar previously written by EncodeBinary.
func DecodeBinary(data []byte) (*symbol.Grammar, error) {
	g := symbol.New(symbol.NT(""))
	n, err := rezi.DecBinary(data, g)
	if err != nil {
		return nil, fmt.Errorf("REZI decode grammar: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("REZI decode grammar: decoded byte count mismatch; only consumed %d/%d bytes", n, len(data))
	}
	return g, nil
}
