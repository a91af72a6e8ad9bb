package regexfe

import "github.com/ATSOTECK/yalex/internal/model"

// AddExplicitConcatenation inserts a `•` atom between any two adjacent
// atoms c1 c2 where c1 is not `(` or `|` and c2 is not `)`, `|`, `?`, `+`,
// or `*`. Single linear pass.
func AddExplicitConcatenation(atoms []model.Atom) []model.Atom {
	if len(atoms) == 0 {
		return atoms
	}

	out := make([]model.Atom, 0, len(atoms)*2)
	for i, c1 := range atoms {
		out = append(out, c1)
		if i+1 >= len(atoms) {
			continue
		}
		c2 := atoms[i+1]
		if c1.Kind == model.AtomLParen || c1.Kind == model.AtomOr {
			continue
		}
		switch c2.Kind {
		case model.AtomRParen, model.AtomOr, model.AtomQuestion, model.AtomPlus, model.AtomStar:
			continue
		}
		out = append(out, model.Concat)
	}
	return out
}
