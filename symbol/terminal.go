// Package symbol holds the data model shared by the normalizer and both
// parsers: terminals, nonterminals, productions, grammars, and the parse
// tree type they all produce.
package symbol

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"unicode/utf8"
)

// TerminalKind discriminates the three ways a Terminal can match input.
type TerminalKind int

const (
	Literal TerminalKind = iota
	CharRange
	Regex
)

func (k TerminalKind) String() string {
	switch k {
	case Literal:
		return "string"
	case CharRange:
		return "characterRange"
	case Regex:
		return "regularExpression"
	default:
		return fmt.Sprintf("TerminalKind(%d)", int(k))
	}
}

// Terminal is a tagged value matching input prefixes. Equality and hashing
// are on variant content only; a Terminal never carries a user-visible name.
type Terminal struct {
	kind TerminalKind

	// lit holds the literal string for Literal, the pattern text for Regex.
	lit string

	low, high rune // CharRange bounds, inclusive.

	re *regexp.Regexp // compiled anchor for Regex; nil otherwise.

	hash uint64
}

// NewLiteral builds a Terminal that matches an exact substring.
func NewLiteral(s string) Terminal {
	return Terminal{kind: Literal, lit: s, hash: hashTagged("L", s)}
}

// NewCharRange builds a Terminal matching a single rune in [lo, hi].
// Character ranges are never empty, even when lo == hi.
func NewCharRange(lo, hi rune) Terminal {
	return Terminal{
		kind: CharRange,
		low:  lo,
		high: hi,
		hash: hashTagged("C", fmt.Sprintf("%d:%d", lo, hi)),
	}
}

// NewRegex compiles pattern and builds a Terminal that matches the longest
// prefix of the input satisfying it. pattern is anchored at the start of
// whatever substring it is tested against by the tokenizer; callers should
// not include a leading "^" (one is added internally).
func NewRegex(pattern string) (Terminal, error) {
	anchored, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return Terminal{}, fmt.Errorf("compile regex terminal %q: %w", pattern, err)
	}
	anchored.Longest()
	return Terminal{kind: Regex, lit: pattern, re: anchored, hash: hashTagged("R", pattern)}, nil
}

// MustRegex is like NewRegex but panics on an invalid pattern. Intended for
// grammars built from literal constants at init time.
func MustRegex(pattern string) Terminal {
	t, err := NewRegex(pattern)
	if err != nil {
		panic(err)
	}
	return t
}

func hashTagged(tag, content string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(tag))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return h.Sum64()
}

// Kind reports which of the three match strategies this Terminal uses.
func (t Terminal) Kind() TerminalKind { return t.kind }

// Pattern returns the literal text (Literal) or regex source (Regex). It is
// meaningless for CharRange.
func (t Terminal) Pattern() string { return t.lit }

// Bounds returns the inclusive [low, high] rune range for a CharRange
// terminal. It is meaningless for the other kinds.
func (t Terminal) Bounds() (rune, rune) { return t.low, t.high }

// IsEmpty reports whether this terminal can only ever match the empty
// string. Character ranges are never empty.
func (t Terminal) IsEmpty() bool {
	switch t.kind {
	case Literal:
		return t.lit == ""
	case Regex:
		return t.lit == ""
	default:
		return false
	}
}

// Hash returns a precomputed, content-stable hash suitable for use as a map
// key alongside Equal.
func (t Terminal) Hash() uint64 { return t.hash }

// Equal compares two terminals by variant and content. Regex terminals
// compare pattern text only; no attempt is made at semantic equivalence.
func (t Terminal) Equal(o Terminal) bool {
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case Literal, Regex:
		return t.lit == o.lit
	case CharRange:
		return t.low == o.low && t.high == o.high
	default:
		return false
	}
}

func (t Terminal) String() string {
	switch t.kind {
	case Literal:
		return fmt.Sprintf("%q", t.lit)
	case CharRange:
		return fmt.Sprintf("[%c-%c]", t.low, t.high)
	case Regex:
		return fmt.Sprintf("/%s/", t.lit)
	default:
		return "<invalid terminal>"
	}
}

// MatchPrefix attempts to match this terminal at the start of s, returning
// the byte length consumed and whether a match occurred. For CharRange, the
// length returned is the UTF-8 byte width of the matched rune, not 1.
func (t Terminal) MatchPrefix(s string) (matchLen int, ok bool) {
	switch t.kind {
	case Literal:
		if len(s) >= len(t.lit) && s[:len(t.lit)] == t.lit {
			return len(t.lit), true
		}
		return 0, false
	case CharRange:
		if s == "" {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s)
		if r >= t.low && r <= t.high {
			return size, true
		}
		return 0, false
	case Regex:
		loc := t.re.FindStringIndex(s)
		if loc == nil || loc[0] != 0 {
			return 0, false
		}
		return loc[1], true
	default:
		return 0, false
	}
}
