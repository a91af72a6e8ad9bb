// Package regexfe implements the regex front-end: character-class
// expansion, explicit-concatenation insertion, and shunting-yard to
// postfix, sitting between the character codec and the AST builder.
package regexfe

import (
	"github.com/ATSOTECK/yalex/internal/codec"
	"github.com/ATSOTECK/yalex/internal/model"
)

// Compile runs the full front-end pipeline over a raw infix regex: hard
// codify, character-class expansion, explicit concatenation, then
// shunting-yard to postfix.
func Compile(source string) ([]model.Atom, error) {
	atoms, err := codec.HardCodify(source)
	if err != nil {
		return nil, model.InvalidRegexError{Message: err.Error()}
	}

	atoms, err = ExpandCharClasses(atoms)
	if err != nil {
		return nil, model.InvalidRegexError{Message: err.Error()}
	}

	atoms = AddExplicitConcatenation(atoms)

	postfix, err := ShuntingYard(atoms)
	if err != nil {
		return nil, model.InvalidRegexError{Message: err.Error()}
	}

	return postfix, nil
}
