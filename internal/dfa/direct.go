package dfa

import (
	"github.com/ATSOTECK/yalex/internal/model"
	"github.com/ATSOTECK/yalex/internal/past"
)

// BuildDirect constructs a DFA directly from a regex AST using the
// nullable/firstpos/lastpos/followpos construction (Aho §3.9.5). alphabet
// is the sorted literal-byte alphabet returned by past.Build.
func BuildDirect(root *past.Node, alphabet []byte) (*DFA, error) {
	augmented := &past.Node{
		Kind:  model.AtomConcat,
		Left:  root,
		Right: &past.Node{Kind: model.AtomTerminator},
	}

	pos := 0
	symbols := make(map[int]model.Atom)
	augmented.PostOrder(func(n *past.Node) {
		if n.Kind == model.AtomLiteral || n.Kind == model.AtomTerminator {
			pos++
			n.Pos = pos
			if n.Kind == model.AtomTerminator {
				symbols[pos] = model.Terminator
			} else {
				symbols[pos] = model.Literal(n.Value)
			}
		}
	})

	computeNullable(augmented)
	computeFirstLast(augmented)
	followpos := computeFollowPos(augmented)

	sigma := make([]model.Atom, len(alphabet))
	for i, b := range alphabet {
		sigma[i] = model.Literal(b)
	}

	return buildStates(augmented, symbols, followpos, sigma), nil
}

// BuildCombined constructs a DFA from an already-terminated AST: one whose
// every branch ends in a model.AtomNamedTerminator leaf rather than a shared
// model.AtomTerminator (the lex-spec sequencer's combined pattern).
// Unlike BuildDirect it performs no augmentation — root must already carry
// its own accept leaves — and each named-terminator symbol surfaces as a
// self-loop transition so special-simulate can read off the branch
// name from the transition it lands on.
func BuildCombined(root *past.Node, alphabet []byte) *DFA {
	pos := 0
	symbols := make(map[int]model.Atom)
	root.PostOrder(func(n *past.Node) {
		switch n.Kind {
		case model.AtomLiteral:
			pos++
			n.Pos = pos
			symbols[pos] = model.Literal(n.Value)
		case model.AtomNamedTerminator:
			pos++
			n.Pos = pos
			symbols[pos] = model.NamedTerminator(n.Name)
		}
	})

	computeNullable(root)
	computeFirstLast(root)
	followpos := computeFollowPos(root)

	sigma := make([]model.Atom, len(alphabet))
	for i, b := range alphabet {
		sigma[i] = model.Literal(b)
	}

	return buildStates(root, symbols, followpos, sigma)
}

func computeNullable(n *past.Node) {
	n.PostOrder(func(n *past.Node) {
		switch n.Kind {
		case model.AtomEpsilon, model.AtomStar:
			n.Nullable = true
		case model.AtomOr:
			n.Nullable = n.Left.Nullable || n.Right.Nullable
		case model.AtomConcat:
			n.Nullable = n.Left.Nullable && n.Right.Nullable
		default:
			n.Nullable = false
		}
	})
}

func computeFirstLast(n *past.Node) {
	n.PostOrder(func(n *past.Node) {
		switch n.Kind {
		case model.AtomEpsilon:
			n.FirstPos = map[int]bool{}
			n.LastPos = map[int]bool{}
		case model.AtomOr:
			n.FirstPos = union(n.Left.FirstPos, n.Right.FirstPos)
			n.LastPos = union(n.Left.LastPos, n.Right.LastPos)
		case model.AtomConcat:
			if n.Left.Nullable {
				n.FirstPos = union(n.Left.FirstPos, n.Right.FirstPos)
			} else {
				n.FirstPos = copySet(n.Left.FirstPos)
			}
			if n.Right.Nullable {
				n.LastPos = union(n.Left.LastPos, n.Right.LastPos)
			} else {
				n.LastPos = copySet(n.Right.LastPos)
			}
		case model.AtomStar:
			n.FirstPos = copySet(n.Left.FirstPos)
			n.LastPos = copySet(n.Left.LastPos)
		default: // literal or terminator leaf
			n.FirstPos = map[int]bool{n.Pos: true}
			n.LastPos = map[int]bool{n.Pos: true}
		}
	})
}

func computeFollowPos(n *past.Node) map[int]map[int]bool {
	followpos := make(map[int]map[int]bool)
	add := func(target int, src map[int]bool) {
		if followpos[target] == nil {
			followpos[target] = map[int]bool{}
		}
		for k := range src {
			followpos[target][k] = true
		}
	}
	n.PostOrder(func(n *past.Node) {
		switch n.Kind {
		case model.AtomConcat:
			for i := range n.Left.LastPos {
				add(i, n.Right.FirstPos)
			}
		case model.AtomStar:
			for i := range n.Left.LastPos {
				add(i, n.Left.FirstPos)
			}
		}
	})
	return followpos
}

func buildStates(root *past.Node, symbols map[int]model.Atom, followpos map[int]map[int]bool, sigma []model.Atom) *DFA {
	values := []map[int]bool{root.FirstPos}
	marked := []bool{false}

	findOrCreate := func(value map[int]bool) int {
		for i, v := range values {
			if setEqual(v, value) {
				return i
			}
		}
		values = append(values, value)
		marked = append(marked, false)
		return len(values) - 1
	}

	var transitions []Transition
	accepting := make(map[int]bool)

	for {
		next := -1
		for i, m := range marked {
			if !m {
				next = i
				break
			}
		}
		if next == -1 {
			break
		}
		marked[next] = true
		S := values[next]

		bySymbol := make(map[model.Atom][]int)
		for posID := range S {
			sym := symbols[posID]
			bySymbol[sym] = append(bySymbol[sym], posID)
		}

		for sym, ids := range bySymbol {
			if sym == model.Terminator {
				accepting[next] = true
				continue
			}
			if sym.Kind == model.AtomNamedTerminator {
				accepting[next] = true
				transitions = append(transitions, Transition{Tail: next, Symbol: sym, Head: next})
				continue
			}
			U := make(map[int]bool)
			for _, i := range ids {
				for k := range followpos[i] {
					U[k] = true
				}
			}
			if len(U) == 0 {
				continue
			}
			head := findOrCreate(U)
			transitions = append(transitions, Transition{Tail: next, Symbol: sym, Head: head})
		}
	}

	states := make([]State, len(values))
	for i := range values {
		states[i] = State{ID: i, Accepting: accepting[i]}
	}

	return &DFA{
		Kind:        Direct,
		States:      states,
		Initial:     0,
		Transitions: transitions,
		Alphabet:    sigma,
	}
}

func union(a, b map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func copySet(a map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for k := range a {
		out[k] = true
	}
	return out
}

func setEqual(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
