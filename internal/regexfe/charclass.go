package regexfe

import (
	"fmt"
	"sort"

	"github.com/ATSOTECK/yalex/internal/model"
)

// ExpandCharClasses walks a hard-codified atom stream and replaces every
// `[...]` run with an equivalent `(a|b|c|...)` disjunction.
//
// A leading `^` inside the brackets negates the collected set against the
// full byte universe. If the bracket group is immediately followed by a
// `#` atom, the group is latched as the "first group" instead of being
// emitted; the next bracket group then computes first_group − next_group
// before emitting (the non-standard set-difference syntax documented in
// the rest of this toolchain).
func ExpandCharClasses(atoms []model.Atom) ([]model.Atom, error) {
	var out []model.Atom
	var firstGroup map[byte]bool

	i := 0
	for i < len(atoms) {
		c := atoms[i]
		if c.Kind != model.AtomLBracket {
			out = append(out, c)
			i++
			continue
		}

		i++ // past '['
		negate := false
		if i < len(atoms) && atoms[i].Kind == model.AtomCaret {
			negate = true
			i++
		}

		start := i
		for i < len(atoms) && atoms[i].Kind != model.AtomRBracket {
			i++
		}
		if i >= len(atoms) {
			return nil, model.InvalidRegexError{Message: "unbalanced character class: missing ']'"}
		}
		collected := atoms[start:i]
		i++ // past ']'

		group, err := expandClassBody(collected)
		if err != nil {
			return nil, err
		}
		if negate {
			group = complement(group)
		}

		if i < len(atoms) && atoms[i].Kind == model.AtomHash {
			firstGroup = group
			i++ // consume '#'
			continue
		}

		if firstGroup != nil {
			group = difference(firstGroup, group)
			firstGroup = nil
		}

		out = append(out, disjunction(group)...)
	}

	return out, nil
}

func expandClassBody(collected []model.Atom) (map[byte]bool, error) {
	group := make(map[byte]bool)
	for idx := 0; idx < len(collected); idx++ {
		a := collected[idx]
		if a.Kind == model.AtomDash {
			if idx == 0 || idx == len(collected)-1 {
				return nil, model.InvalidRegexError{Message: "character class range is missing an endpoint"}
			}
			prev := collected[idx-1]
			next := collected[idx+1]
			if prev.Kind != model.AtomLiteral || next.Kind != model.AtomLiteral {
				return nil, model.InvalidRegexError{Message: "character class range endpoints must be literals"}
			}
			lo, hi := int(prev.Value), int(next.Value)
			if lo > hi {
				return nil, model.InvalidRegexError{Message: fmt.Sprintf("character class range %d-%d is reversed", lo, hi)}
			}
			for v := lo; v <= hi; v++ {
				group[byte(v)] = true
			}
			continue
		}
		if a.Kind != model.AtomLiteral {
			return nil, model.InvalidRegexError{Message: fmt.Sprintf("unexpected atom %s inside character class", a)}
		}
		group[a.Value] = true
	}
	return group, nil
}

func complement(group map[byte]bool) map[byte]bool {
	out := make(map[byte]bool)
	for v := 0; v <= 255; v++ {
		if !group[byte(v)] {
			out[byte(v)] = true
		}
	}
	return out
}

func difference(a, b map[byte]bool) map[byte]bool {
	out := make(map[byte]bool)
	for v := range a {
		if !b[v] {
			out[v] = true
		}
	}
	return out
}

func disjunction(group map[byte]bool) []model.Atom {
	values := make([]int, 0, len(group))
	for v := range group {
		values = append(values, int(v))
	}
	sort.Ints(values)

	out := make([]model.Atom, 0, 2*len(values)+1)
	out = append(out, model.LParen)
	for i, v := range values {
		if i > 0 {
			out = append(out, model.Or)
		}
		out = append(out, model.Literal(byte(v)))
	}
	out = append(out, model.RParen)
	return out
}
