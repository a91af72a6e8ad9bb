package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ATSOTECK/yalex/internal/model"
)

// Minimize performs Hopcroft-style partition refinement (Aho §3.9.6) over
// d's alphabet and returns the minimized DFA.
func Minimize(d *DFA) *DFA {
	var accepting, rest []int
	for _, s := range d.States {
		if s.Accepting {
			accepting = append(accepting, s.ID)
		} else {
			rest = append(rest, s.ID)
		}
	}

	var partition [][]int
	if len(accepting) > 0 {
		partition = append(partition, accepting)
	}
	if len(rest) > 0 {
		partition = append(partition, rest)
	}

	for {
		next := refine(d, partition)
		if samePartition(next, partition) {
			break
		}
		partition = next
	}

	representatives := make([]int, len(partition))
	blockOf := make(map[int]int)
	for i, g := range partition {
		representatives[i] = g[0]
		for _, id := range g {
			blockOf[id] = i
		}
	}

	start := representatives[blockOf[d.Initial]]

	var transitions []Transition
	for i, block := range partition {
		rep := representatives[i]
		for _, sym := range d.Alphabet {
			head, ok := d.Transition(rep, sym)
			if !ok {
				continue
			}
			j := blockOf[head]
			transitions = append(transitions, Transition{Tail: rep, Symbol: sym, Head: representatives[j]})
		}

		// Named-terminator self-loops (the lex-spec sequencer's combined-DFA
		// branch labels) carry no input byte, so they play no part in
		// the alphabet above; union them in from every state folded into
		// this block so special-simulate can still recover every branch
		// name the block accepts for.
		seenNames := make(map[string]bool)
		for _, id := range block {
			for _, t := range d.TransitionsFrom(id) {
				if t.Symbol.Kind != model.AtomNamedTerminator || seenNames[t.Symbol.Name] {
					continue
				}
				seenNames[t.Symbol.Name] = true
				transitions = append(transitions, Transition{Tail: rep, Symbol: t.Symbol, Head: rep})
			}
		}
	}

	acceptingBlock := make(map[int]bool)
	for _, s := range d.States {
		if s.Accepting {
			acceptingBlock[blockOf[s.ID]] = true
		}
	}

	states := make([]State, len(partition))
	for i := range partition {
		states[i] = State{ID: representatives[i], Accepting: acceptingBlock[i]}
	}

	return &DFA{
		Kind:        Minimized,
		States:      states,
		Initial:     start,
		Transitions: transitions,
		Alphabet:    d.Alphabet,
		Nested:      d.Nested,
		NestedLeft:  d.NestedLeft,
		NestedRight: d.NestedRight,
	}
}

func refine(d *DFA, partition [][]int) [][]int {
	blockOf := make(map[int]int)
	for i, g := range partition {
		for _, id := range g {
			blockOf[id] = i
		}
	}

	var result [][]int
	for _, g := range partition {
		order := make([]string, 0, len(g))
		groups := make(map[string][]int)
		for _, id := range g {
			key := signature(d, id, blockOf)
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], id)
		}
		for _, key := range order {
			result = append(result, groups[key])
		}
	}
	return result
}

func signature(d *DFA, id int, blockOf map[int]int) string {
	var sb strings.Builder
	for _, sym := range d.Alphabet {
		head, ok := d.Transition(id, sym)
		if !ok {
			sb.WriteString("_,")
			continue
		}
		fmt.Fprintf(&sb, "%d,", blockOf[head])
	}
	// Accept states of different named branches must stay apart, so the set
	// of named-terminator labels is part of the signature too.
	var names []string
	for _, t := range d.TransitionsFrom(id) {
		if t.Symbol.Kind == model.AtomNamedTerminator {
			names = append(names, t.Symbol.Name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "#%s,", name)
	}
	return sb.String()
}

func samePartition(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
