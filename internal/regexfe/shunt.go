package regexfe

import "github.com/ATSOTECK/yalex/internal/model"

// precedence implements the table: ( = 1 < | = 2 < • = 3 <
// ? = + = * = 4 < literal = 6. All operators are left-associative.
func precedence(a model.Atom) int {
	switch a.Kind {
	case model.AtomLParen:
		return 1
	case model.AtomOr:
		return 2
	case model.AtomConcat:
		return 3
	case model.AtomQuestion, model.AtomPlus, model.AtomStar:
		return 4
	default:
		return 6
	}
}

// ShuntingYard converts an infix atom stream (with explicit concatenation
// already inserted) into postfix order via Dijkstra's algorithm.
func ShuntingYard(atoms []model.Atom) ([]model.Atom, error) {
	var output []model.Atom
	var stack []model.Atom

	for _, c := range atoms {
		switch c.Kind {
		case model.AtomLParen:
			stack = append(stack, c)

		case model.AtomRParen:
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == model.AtomLParen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, model.InvalidRegexError{Message: "unbalanced parentheses: unmatched ')'"}
			}

		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if precedence(top) >= precedence(c) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
				} else {
					break
				}
			}
			stack = append(stack, c)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == model.AtomLParen {
			return nil, model.InvalidRegexError{Message: "unbalanced parentheses: unmatched '('"}
		}
		output = append(output, top)
	}

	return output, nil
}
