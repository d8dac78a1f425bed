package persist

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dekarrin/cfgparse/symbol"
)

const (
	tagNonTerminal       = "nonTerminal"
	tagLiteral           = "string"
	tagCharRange         = "characterRange"
	tagRegularExpression = "regularExpression"
)

type tomlDoc struct {
	Start               string           `toml:"start"`
	UtilityNonTerminals []string         `toml:"utilityNonTerminals,omitempty"`
	Productions         []tomlProduction `toml:"productions"`
}

type tomlProduction struct {
	Pattern          string       `toml:"pattern"`
	Body             []tomlSymbol `toml:"body"`
	NonTerminalChain []string     `toml:"nonTerminalChain,omitempty"`
}

type tomlSymbol struct {
	Type string `toml:"type"`

	Name string `toml:"name,omitempty"` // nonTerminal

	Value string `toml:"value,omitempty"` // string (literal)

	LowerBound string `toml:"lowerBound,omitempty"` // characterRange
	UpperBound string `toml:"upperBound,omitempty"` // characterRange

	Regex string `toml:"regex,omitempty"` // regularExpression
}

// EncodeTOML renders g as a human-readable, hand-editable TOML document.
func EncodeTOML(g *symbol.Grammar) ([]byte, error) {
	doc := tomlDoc{Start: g.Start().Name()}

	for _, nt := range g.UtilityNonTerminals() {
		doc.UtilityNonTerminals = append(doc.UtilityNonTerminals, nt.Name())
	}

	for _, p := range g.Productions() {
		tp := tomlProduction{Pattern: p.Pattern.Name()}
		for _, nt := range p.NonTerminalChain {
			tp.NonTerminalChain = append(tp.NonTerminalChain, nt.Name())
		}
		for _, s := range p.Body {
			ts, err := encodeTOMLSymbol(s)
			if err != nil {
				return nil, err
			}
			tp.Body = append(tp.Body, ts)
		}
		doc.Productions = append(doc.Productions, tp)
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode grammar TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeTOMLSymbol(s symbol.Symbol) (tomlSymbol, error) {
	if !s.IsTerminal() {
		return tomlSymbol{Type: tagNonTerminal, Name: s.Nonterminal().Name()}, nil
	}

	t := s.Terminal()
	switch t.Kind() {
	case symbol.Literal:
		return tomlSymbol{Type: tagLiteral, Value: t.Pattern()}, nil
	case symbol.CharRange:
		lo, hi := t.Bounds()
		return tomlSymbol{Type: tagCharRange, LowerBound: string(lo), UpperBound: string(hi)}, nil
	case symbol.Regex:
		return tomlSymbol{Type: tagRegularExpression, Regex: t.Pattern()}, nil
	default:
		return tomlSymbol{}, fmt.Errorf("encode terminal: unknown kind %d", t.Kind())
	}
}

// DecodeTOML parses a grammar document previously written by EncodeTOML (or
// authored by hand). Character range bounds that are not exactly one
// character long are rejected, per the persistence contract.
func DecodeTOML(data []byte) (*symbol.Grammar, error) {
	var doc tomlDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode grammar TOML: %w", err)
	}
	if doc.Start == "" {
		return nil, fmt.Errorf("decode grammar TOML: missing start symbol")
	}

	g := symbol.New(symbol.NT(doc.Start))
	for _, name := range doc.UtilityNonTerminals {
		g.MarkUtility(symbol.NT(name))
	}

	for i, tp := range doc.Productions {
		body := make([]symbol.Symbol, len(tp.Body))
		for j, ts := range tp.Body {
			s, err := decodeTOMLSymbol(ts)
			if err != nil {
				return nil, fmt.Errorf("decode grammar TOML: production[%d].body[%d]: %w", i, j, err)
			}
			body[j] = s
		}

		chain := make([]symbol.Nonterminal, len(tp.NonTerminalChain))
		for j, name := range tp.NonTerminalChain {
			chain[j] = symbol.NT(name)
		}

		g.AddProduction(symbol.Production{
			Pattern:          symbol.NT(tp.Pattern),
			Body:             body,
			NonTerminalChain: chain,
		})
	}

	return g, nil
}

func decodeTOMLSymbol(ts tomlSymbol) (symbol.Symbol, error) {
	switch ts.Type {
	case tagNonTerminal:
		return symbol.NonTerm(symbol.NT(ts.Name)), nil
	case tagLiteral:
		return symbol.Term(symbol.NewLiteral(ts.Value)), nil
	case tagCharRange:
		lo := []rune(ts.LowerBound)
		hi := []rune(ts.UpperBound)
		if len(lo) != 1 || len(hi) != 1 {
			return symbol.Symbol{}, fmt.Errorf("characterRange bounds must be single characters, got %q and %q", ts.LowerBound, ts.UpperBound)
		}
		return symbol.Term(symbol.NewCharRange(lo[0], hi[0])), nil
	case tagRegularExpression:
		t, err := symbol.NewRegex(ts.Regex)
		if err != nil {
			return symbol.Symbol{}, fmt.Errorf("invalid regularExpression: %w", err)
		}
		return symbol.Term(t), nil
	default:
		return symbol.Symbol{}, fmt.Errorf("unknown terminal type %q", ts.Type)
	}
}
