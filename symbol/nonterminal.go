package symbol

// Nonterminal is a named symbol. Identity is by name alone; two Nonterminals
// with the same name are the same symbol regardless of where they were
// constructed.
type Nonterminal struct {
	name string
}

// NT constructs a Nonterminal with the given name.
func NT(name string) Nonterminal { return Nonterminal{name: name} }

// Name returns the nonterminal's identifier.
func (n Nonterminal) Name() string { return n.name }

func (n Nonterminal) String() string { return n.name }

// Equal compares two nonterminals by name.
func (n Nonterminal) Equal(o Nonterminal) bool { return n.name == o.name }
