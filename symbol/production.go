package symbol

// Production is a single rewrite rule pattern -> body. Body may be empty
// (an epsilon production).
type Production struct {
	Pattern Nonterminal
	Body    []Symbol

	// NonTerminalChain is bookkeeping left by the chain-production-removal
	// normalization step (chain-production collapsing): the ordered list of
	// intermediate nonterminals [C1 ... Cn-1, B] collapsed to produce this
	// production, used by CYK reconstruction to splice them back in. Empty
	// for productions that were never a chain target.
	NonTerminalChain []Nonterminal
}

// NewProduction builds a Production with no chain bookkeeping.
func NewProduction(pattern Nonterminal, body ...Symbol) Production {
	return Production{Pattern: pattern, Body: body}
}

// IsFinal reports whether the body contains at least one terminal symbol.
func (p Production) IsFinal() bool {
	for _, s := range p.Body {
		if s.IsTerminal() {
			return true
		}
	}
	return false
}

// IsChain reports whether the body is exactly one nonterminal.
func (p Production) IsChain() bool {
	return len(p.Body) == 1 && !p.Body[0].IsTerminal()
}

// IsEpsilon reports whether the body is empty.
func (p Production) IsEpsilon() bool {
	return len(p.Body) == 0
}

// GeneratedTerminals returns the terminal symbols appearing in the body, in
// order.
func (p Production) GeneratedTerminals() []Terminal {
	var out []Terminal
	for _, s := range p.Body {
		if s.IsTerminal() {
			out = append(out, s.Terminal())
		}
	}
	return out
}

// GeneratedNonTerminals returns the nonterminal symbols appearing in the
// body, in order.
func (p Production) GeneratedNonTerminals() []Nonterminal {
	var out []Nonterminal
	for _, s := range p.Body {
		if !s.IsTerminal() {
			out = append(out, s.Nonterminal())
		}
	}
	return out
}

// Equal compares pattern, body, and chain bookkeeping.
func (p Production) Equal(o Production) bool {
	if !p.Pattern.Equal(o.Pattern) {
		return false
	}
	if len(p.Body) != len(o.Body) {
		return false
	}
	for i := range p.Body {
		if !p.Body[i].Equal(o.Body[i]) {
			return false
		}
	}
	if len(p.NonTerminalChain) != len(o.NonTerminalChain) {
		return false
	}
	for i := range p.NonTerminalChain {
		if !p.NonTerminalChain[i].Equal(o.NonTerminalChain[i]) {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	if len(p.Body) == 0 {
		return p.Pattern.String() + " -> ε"
	}
	s := p.Pattern.String() + " ->"
	for _, sym := range p.Body {
		s += " " + sym.String()
	}
	return s
}
