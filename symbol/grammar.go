package symbol

import "sort"

// Grammar is an immutable-once-built collection of productions over a start
// symbol, plus bookkeeping for nonterminals introduced by normalization.
//
// A zero Grammar is not usable; build one with New and AddProduction.
type Grammar struct {
	productions []Production
	byPattern   map[string][]int // NonTerminal.Name() -> indices into productions
	start       Nonterminal
	utility     map[string]bool
}

// New creates an empty Grammar with the given start symbol.
func New(start Nonterminal) *Grammar {
	return &Grammar{
		byPattern: map[string][]int{},
		start:     start,
		utility:   map[string]bool{},
	}
}

// AddProduction appends a production to the grammar.
func (g *Grammar) AddProduction(p Production) {
	idx := len(g.productions)
	g.productions = append(g.productions, p)
	g.byPattern[p.Pattern.Name()] = append(g.byPattern[p.Pattern.Name()], idx)
}

// MarkUtility records nt as introduced by normalization, so that
// reconstruction can later "explode" it out of the final tree.
func (g *Grammar) MarkUtility(nt Nonterminal) {
	g.utility[nt.Name()] = true
}

// IsUtility reports whether nt was introduced by normalization.
func (g *Grammar) IsUtility(nt Nonterminal) bool {
	return g.utility[nt.Name()]
}

// Start returns the grammar's start nonterminal.
func (g *Grammar) Start() Nonterminal { return g.start }

// SetStart replaces the start nonterminal.
func (g *Grammar) SetStart(nt Nonterminal) { g.start = nt }

// Productions returns all productions, in the order they were added.
func (g *Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// ProductionsFor returns the productions whose pattern is nt, in insertion
// order.
func (g *Grammar) ProductionsFor(nt Nonterminal) []Production {
	idxs := g.byPattern[nt.Name()]
	out := make([]Production, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.productions[i])
	}
	return out
}

// UtilityNonTerminals returns, in a stable (sorted) order, every nonterminal
// marked by MarkUtility.
func (g *Grammar) UtilityNonTerminals() []Nonterminal {
	names := make([]string, 0, len(g.utility))
	for n := range g.utility {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]Nonterminal, len(names))
	for i, n := range names {
		out[i] = NT(n)
	}
	return out
}

// NonTerminals returns every nonterminal that appears as a production
// pattern, in first-seen order.
func (g *Grammar) NonTerminals() []Nonterminal {
	seen := map[string]bool{}
	var out []Nonterminal
	for _, p := range g.productions {
		if !seen[p.Pattern.Name()] {
			seen[p.Pattern.Name()] = true
			out = append(out, p.Pattern)
		}
	}
	return out
}

// Terminals returns every distinct terminal referenced in any production
// body, in first-seen order.
func (g *Grammar) Terminals() []Terminal {
	var out []Terminal
	var seenHashes []uint64
	for _, p := range g.productions {
		for _, t := range p.GeneratedTerminals() {
			dup := false
			for i, h := range seenHashes {
				if h == t.Hash() && out[i].Equal(t) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, t)
				seenHashes = append(seenHashes, t.Hash())
			}
		}
	}
	return out
}

// Copy returns a deep-enough copy of the grammar: the production slice and
// index are duplicated, though Terminal/Nonterminal/Symbol values remain
// shared (they are themselves immutable).
func (g *Grammar) Copy() *Grammar {
	g2 := &Grammar{
		productions: make([]Production, len(g.productions)),
		byPattern:   map[string][]int{},
		start:       g.start,
		utility:     map[string]bool{},
	}
	copy(g2.productions, g.productions)
	for k, v := range g.byPattern {
		idxs := make([]int, len(v))
		copy(idxs, v)
		g2.byPattern[k] = idxs
	}
	for k, v := range g.utility {
		g2.utility[k] = v
	}
	return g2
}

// IsInChomskyNormalForm reports whether every production is of the form
// A -> a, A -> B C, or S -> ε (epsilon allowed only for the start symbol,
// and only if no other production's body references the start symbol).
func (g *Grammar) IsInChomskyNormalForm() bool {
	startEpsilon := false
	for _, p := range g.productions {
		switch len(p.Body) {
		case 0:
			if !p.Pattern.Equal(g.start) {
				return false
			}
			startEpsilon = true
		case 1:
			if !p.Body[0].IsTerminal() {
				return false
			}
		case 2:
			if p.Body[0].IsTerminal() || p.Body[1].IsTerminal() {
				return false
			}
		default:
			return false
		}
	}
	if !startEpsilon {
		return true
	}
	for _, p := range g.productions {
		for _, nt := range p.GeneratedNonTerminals() {
			if nt.Equal(g.start) {
				return false
			}
		}
	}
	return true
}

// HasNonTerminal reports whether nt appears as some production's pattern.
func (g *Grammar) HasNonTerminal(nt Nonterminal) bool {
	_, ok := g.byPattern[nt.Name()]
	return ok
}

// GenerateUniqueName mints a nonterminal name derived from base that does
// not collide with any name already defined in the grammar (user-declared or
// previously generated). It is deterministic: calling it twice on an
// unmodified grammar with the same base yields the same name, which keeps
// repeated normalization of the same grammar idempotent in the names it
// mints.
func (g *Grammar) GenerateUniqueName(base string) Nonterminal {
	candidate := base + "-P"
	for g.HasNonTerminal(NT(candidate)) {
		candidate += "P"
	}
	return NT(candidate)
}

// Validate reports structural issues as human-readable warnings without
// rejecting the grammar: nonterminals referenced in a body but never defined
// as a pattern are unproductive, not invalid, and simply fail to parse at
// parse time.
func (g *Grammar) Validate() []string {
	var warnings []string
	if len(g.productions) == 0 {
		warnings = append(warnings, "grammar has no productions")
	}
	if !g.HasNonTerminal(g.start) {
		warnings = append(warnings, "start symbol "+g.start.String()+" has no production")
	}
	for _, nt := range g.unproductive() {
		warnings = append(warnings, "nonterminal "+nt.String()+" is referenced but never defined")
	}
	return warnings
}

func (g *Grammar) unproductive() []Nonterminal {
	var out []Nonterminal
	seen := map[string]bool{}
	for _, p := range g.productions {
		for _, nt := range p.GeneratedNonTerminals() {
			if seen[nt.Name()] {
				continue
			}
			seen[nt.Name()] = true
			if !g.HasNonTerminal(nt) {
				out = append(out, nt)
			}
		}
	}
	return out
}
