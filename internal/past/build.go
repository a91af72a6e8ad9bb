package past

import (
	"fmt"
	"sort"

	"github.com/ATSOTECK/yalex/internal/model"
)

// Build consumes a postfix atom stream and produces its AST plus the
// sorted, deduplicated alphabet of literal atoms encountered.
func Build(postfix []model.Atom) (*Node, []byte, error) {
	var stack []*Node
	seen := make(map[byte]bool)

	pop := func() (*Node, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n, true
	}

	for _, a := range postfix {
		switch a.Kind {
		case model.AtomLiteral:
			stack = append(stack, literal(a.Value))
			seen[a.Value] = true

		case model.AtomEpsilon:
			stack = append(stack, leaf(model.AtomEpsilon))

		case model.AtomStar:
			child, ok := pop()
			if !ok {
				return nil, nil, model.InvalidRegexError{Message: "there is no operand to apply '*' to"}
			}
			stack = append(stack, unary(model.AtomStar, child))

		case model.AtomOr, model.AtomConcat:
			right, ok1 := pop()
			left, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, nil, model.InvalidRegexError{Message: fmt.Sprintf("there are not enough operands to apply %s to", a)}
			}
			stack = append(stack, binary(a.Kind, left, right))

		case model.AtomQuestion:
			x, ok := pop()
			if !ok {
				return nil, nil, model.InvalidRegexError{Message: "there is no operand to apply '?' to"}
			}
			stack = append(stack, binary(model.AtomOr, x, leaf(model.AtomEpsilon)))

		case model.AtomPlus:
			x, ok := pop()
			if !ok {
				return nil, nil, model.InvalidRegexError{Message: "there is no operand to apply '+' to"}
			}
			stack = append(stack, binary(model.AtomConcat, unary(model.AtomStar, x), x.DeepCopy()))

		default:
			return nil, nil, model.InvalidRegexError{Message: fmt.Sprintf("unexpected atom %s in postfix stream", a)}
		}
	}

	if len(stack) != 1 {
		return nil, nil, model.InvalidRegexError{Message: fmt.Sprintf("incomplete regular expression: %d operands left over", len(stack))}
	}

	alphabet := make([]byte, 0, len(seen))
	for b := range seen {
		alphabet = append(alphabet, b)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	return stack[0], alphabet, nil
}
