// Package synerr implements the single error type raised by tokenization
// and parsing: a classified, located failure over the original input.
package synerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/cfgparse/internal/util"
	"github.com/dekarrin/cfgparse/symbol"
)

// Reason discriminates the four ways tokenization or parsing can fail.
type Reason int

const (
	EmptyNotAllowed Reason = iota
	UnknownToken
	UnmatchedPattern
	UnexpectedToken
)

func (r Reason) String() string {
	switch r {
	case EmptyNotAllowed:
		return "EmptyNotAllowed"
	case UnknownToken:
		return "UnknownToken"
	case UnmatchedPattern:
		return "UnmatchedPattern"
	case UnexpectedToken:
		return "UnexpectedToken"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Sentinel errors, one per Reason, usable with errors.Is against any *Error.
var (
	ErrEmptyNotAllowed  = errors.New("empty input not allowed by grammar")
	ErrUnknownToken     = errors.New("no terminal matches input")
	ErrUnmatchedPattern = errors.New("input does not belong to the grammar's language")
	ErrUnexpectedToken  = errors.New("token could not be consumed at this point")
)

func sentinelFor(r Reason) error {
	switch r {
	case EmptyNotAllowed:
		return ErrEmptyNotAllowed
	case UnknownToken:
		return ErrUnknownToken
	case UnmatchedPattern:
		return ErrUnmatchedPattern
	case UnexpectedToken:
		return ErrUnexpectedToken
	default:
		return errors.New("unclassified syntax error")
	}
}

// Error is the single error type raised by tokenize and syntaxTree. Line
// and column are 0-indexed, counting newlines strictly before Range.Start.
type Error struct {
	Reason  Reason
	Range   symbol.InputRange
	Context []symbol.Nonterminal
	Input   string
}

// New builds an Error. context may be nil.
func New(reason Reason, input string, rng symbol.InputRange, context []symbol.Nonterminal) *Error {
	return &Error{Reason: reason, Range: rng, Context: context, Input: input}
}

// Unwrap lets errors.Is(err, synerr.ErrUnknownToken) etc. succeed.
func (e *Error) Unwrap() error { return sentinelFor(e.Reason) }

// Line returns the 0-indexed line Range.Start falls on.
func (e *Error) Line() int {
	line := 0
	limit := e.Range.Start
	if limit > len(e.Input) {
		limit = len(e.Input)
	}
	for i := 0; i < limit; i++ {
		if e.Input[i] == '\n' {
			line++
		}
	}
	return line
}

// Column returns the 0-indexed offset from the start of Range's line.
func (e *Error) Column() int {
	limit := e.Range.Start
	if limit > len(e.Input) {
		limit = len(e.Input)
	}
	lastNewline := -1
	for i := 0; i < limit; i++ {
		if e.Input[i] == '\n' {
			lastNewline = i
		}
	}
	return limit - lastNewline - 1
}

// OffendingText returns the exact input substring Range covers, or an empty
// string if Range falls at or beyond end of input.
func (e *Error) OffendingText() string {
	start, end := e.Range.Start, e.Range.End
	if start < 0 || start > len(e.Input) {
		return ""
	}
	if end > len(e.Input) {
		end = len(e.Input)
	}
	if end < start {
		end = start
	}
	return e.Input[start:end]
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: L%d:%d: '%s'", e.Reason, e.Line(), e.Column(), e.OffendingText())
}

// FullMessage renders the error plus a source-line-with-cursor view and, if
// present, the expected nonterminal context, wrapped for console display.
func (e *Error) FullMessage() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if line := e.sourceLine(); line != "" {
		sb.WriteRune('\n')
		sb.WriteString(line)
		sb.WriteRune('\n')
		sb.WriteString(strings.Repeat(" ", e.Column()) + "^")
	}

	if len(e.Context) > 0 {
		names := make([]string, len(e.Context))
		for i, nt := range e.Context {
			names[i] = nt.Name()
		}
		sb.WriteString("\nexpected one of: " + util.MakeTextList(names))
	}

	return rosed.Edit(sb.String()).Wrap(100).String()
}

func (e *Error) sourceLine() string {
	lines := strings.Split(e.Input, "\n")
	n := e.Line()
	if n < 0 || n >= len(lines) {
		return ""
	}
	return lines[n]
}
