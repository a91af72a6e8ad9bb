// Package lexsim runs a built DFA against input bytes. It implements the
// three simulation modes a generated lexer needs: a plain whole-input
// acceptance test, a bracket-balanced scan for splicing verbatim action bodies out of
// a lex spec, and a special scan over a combined multi-pattern DFA whose
// accept states carry a branch name.
package lexsim

import (
	"github.com/ATSOTECK/yalex/internal/dfa"
	"github.com/ATSOTECK/yalex/internal/model"
)

// Result is the outcome of one simulation call.
type Result struct {
	Matched bool
	Length  int    // bytes consumed from the start of input
	Name    string // set only by Special, the accepting branch's name
}

// Simulate runs the whole-input acceptance test: it follows d's transitions
// byte by byte and, on the first byte with no outgoing transition, returns
// immediately without matching, even if the state reached so far is
// accepting. Only when every byte of input has been consumed does it check
// whether the final state accepts.
func Simulate(d *dfa.DFA, input []byte) Result {
	state := d.Initial
	pos := 0
	for pos < len(input) {
		next, ok := d.Transition(state, model.Literal(input[pos]))
		if !ok {
			return Result{}
		}
		state = next
		pos++
	}
	if !d.IsAccepting(state) {
		return Result{}
	}
	return Result{Matched: true, Length: len(input)}
}

// Nested consumes a bracket-balanced run starting at input[0], which must
// equal d.NestedLeft. It tracks nesting depth independently of d's own
// transitions, since an action body's content is copied verbatim rather
// than recognized symbol by symbol: the DFA only tells the caller where
// such a body begins. The returned length includes both delimiters.
func Nested(d *dfa.DFA, input []byte) Result {
	if !d.Nested || len(input) == 0 || input[0] != d.NestedLeft.Value {
		return Result{}
	}

	depth := 1
	pos := 1
	for pos < len(input) && depth > 0 {
		switch input[pos] {
		case d.NestedLeft.Value:
			depth++
		case d.NestedRight.Value:
			depth--
		}
		pos++
	}
	if depth != 0 {
		return Result{}
	}
	return Result{Matched: true, Length: pos}
}

// Special runs d (built by dfa.BuildCombined) byte by byte. On the first
// byte lacking a matching transition, or once input is exhausted, it
// inspects the current state for an outgoing named-terminator self-loop:
// if one exists, that branch's name wins at the current position; if none
// exists, the call reports no match. Unlike Simulate it never requires
// consuming all of input to report a match — a self-loop can appear
// before the end of the supplied bytes, which is how it recovers one
// token out of a larger remaining buffer.
func Special(d *dfa.DFA, input []byte) Result {
	state := d.Initial
	pos := 0
	for pos < len(input) {
		next, ok := d.Transition(state, model.Literal(input[pos]))
		if !ok {
			return namedTerminatorAt(d, state, pos)
		}
		state = next
		pos++
	}
	return namedTerminatorAt(d, state, pos)
}

// namedTerminatorAt reports the named branch (if any) state accepts for,
// at the given position, breaking ties among co-accepting branches in
// favor of the one that sorts first.
func namedTerminatorAt(d *dfa.DFA, state, pos int) Result {
	name := ""
	for _, t := range d.TransitionsFrom(state) {
		if t.Symbol.Kind != model.AtomNamedTerminator {
			continue
		}
		if name == "" || t.Symbol.Name < name {
			name = t.Symbol.Name
		}
	}
	if name == "" {
		return Result{}
	}
	return Result{Matched: true, Length: pos, Name: name}
}
