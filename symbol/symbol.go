package symbol

// Symbol is the tagged union of Terminal and Nonterminal used in production
// bodies.
type Symbol struct {
	isTerm bool
	term   Terminal
	nt     Nonterminal
}

// Term wraps a Terminal as a Symbol.
func Term(t Terminal) Symbol { return Symbol{isTerm: true, term: t} }

// NonTerm wraps a Nonterminal as a Symbol.
func NonTerm(nt Nonterminal) Symbol { return Symbol{nt: nt} }

// IsTerminal reports whether this symbol is a Terminal (as opposed to a
// Nonterminal).
func (s Symbol) IsTerminal() bool { return s.isTerm }

// Terminal returns the wrapped Terminal. Only valid if IsTerminal is true.
func (s Symbol) Terminal() Terminal { return s.term }

// Nonterminal returns the wrapped Nonterminal. Only valid if IsTerminal is
// false.
func (s Symbol) Nonterminal() Nonterminal { return s.nt }

// Equal compares two symbols, first by variant, then by content.
func (s Symbol) Equal(o Symbol) bool {
	if s.isTerm != o.isTerm {
		return false
	}
	if s.isTerm {
		return s.term.Equal(o.term)
	}
	return s.nt.Equal(o.nt)
}

func (s Symbol) String() string {
	if s.isTerm {
		return s.term.String()
	}
	return s.nt.String()
}
