package normalize

import (
	"strings"

	"github.com/dekarrin/cfgparse/internal/util"
	"github.com/dekarrin/cfgparse/symbol"
)

// computeNullable returns the fixpoint set of nonterminal names that can
// derive the empty string.
func computeNullable(g *symbol.Grammar) util.Set[string] {
	nullable := util.NewSet[string]()
	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions() {
			if nullable.Has(p.Pattern.Name()) {
				continue
			}
			if p.IsEpsilon() {
				nullable.Add(p.Pattern.Name())
				changed = true
				continue
			}
			allNullable := true
			for _, s := range p.Body {
				if s.IsTerminal() || !nullable.Has(s.Nonterminal().Name()) {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable.Add(p.Pattern.Name())
				changed = true
			}
		}
	}
	return nullable
}

// epsilonRewrites generates every variant of p obtained by independently
// omitting each nullable-nonterminal occurrence in its body, skipping the
// variant that would leave an empty body, and deduplicating variants that
// collapse to the same body (which happens when a nullable nonterminal
// occurs more than once).
func epsilonRewrites(p symbol.Production, nullable util.Set[string]) []symbol.Production {
	var nullablePositions []int
	for i, s := range p.Body {
		if !s.IsTerminal() && nullable.Has(s.Nonterminal().Name()) {
			nullablePositions = append(nullablePositions, i)
		}
	}
	if len(nullablePositions) == 0 {
		return []symbol.Production{p}
	}

	m := len(nullablePositions)
	seen := map[string]bool{}
	var out []symbol.Production

	for mask := 0; mask < (1 << m); mask++ {
		omit := map[int]bool{}
		for bit := 0; bit < m; bit++ {
			if mask&(1<<bit) != 0 {
				omit[nullablePositions[bit]] = true
			}
		}

		var body []symbol.Symbol
		for i, s := range p.Body {
			if omit[i] {
				continue
			}
			body = append(body, s)
		}
		if len(body) == 0 {
			continue
		}

		key := bodyKey(body)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, symbol.NewProduction(p.Pattern, body...))
	}

	return out
}

func bodyKey(body []symbol.Symbol) string {
	var sb strings.Builder
	for _, s := range body {
		sb.WriteString(s.String())
		sb.WriteByte(0)
	}
	return sb.String()
}

// eliminateEpsilons rewrites away epsilon productions. The original epsilon
// production is retained only for the (possibly newly introduced) start
// symbol, and only when the start symbol is nullable.
func eliminateEpsilons(g *symbol.Grammar, minter *nameMinter) *symbol.Grammar {
	nullable := computeNullable(g)
	startNullable := nullable.Has(g.Start().Name())

	out := symbol.New(g.Start())
	for _, nt := range g.UtilityNonTerminals() {
		out.MarkUtility(nt)
	}

	for _, p := range g.Productions() {
		if p.IsEpsilon() {
			continue
		}
		for _, variant := range epsilonRewrites(p, nullable) {
			out.AddProduction(variant)
		}
	}

	if !startNullable {
		return out
	}

	startUsedInBody := false
	for _, p := range out.Productions() {
		for _, nt := range p.GeneratedNonTerminals() {
			if nt.Equal(g.Start()) {
				startUsedInBody = true
			}
		}
	}

	if !startUsedInBody {
		out.AddProduction(symbol.NewProduction(g.Start()))
		return out
	}

	newStart := minter.mint(g.Start().Name())
	wrapped := symbol.New(newStart)
	wrapped.MarkUtility(newStart)
	wrapped.AddProduction(symbol.NewProduction(newStart, symbol.NonTerm(g.Start())))
	wrapped.AddProduction(symbol.NewProduction(newStart))
	for _, p := range out.Productions() {
		wrapped.AddProduction(p)
	}
	for _, nt := range out.UtilityNonTerminals() {
		wrapped.MarkUtility(nt)
	}
	return wrapped
}
