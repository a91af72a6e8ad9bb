// Package codec implements the character codec: it turns raw
// specification source into the atom sequence the regex front-end consumes.
package codec

import (
	"github.com/ATSOTECK/yalex/internal/model"
)

// operatorByte maps a raw source byte to its operator atom, for the closed
// set {(, ), |, ?, +, *, [, ], -, #, ^}. '_' and '"' and '\'' are handled
// by HardCodify directly since they drive codec state rather than simply
// copying through.
var operatorByte = map[byte]model.Atom{
	'(': model.LParen,
	')': model.RParen,
	'|': model.Or,
	'?': model.Question,
	'+': model.Plus,
	'*': model.Star,
	'[': model.LBracket,
	']': model.RBracket,
	'-': model.Dash,
	'#': model.Hash,
	'^': model.Caret,
}

// HardCodify transforms raw regex source into an atom sequence.
//
// Escapes (\n, \t, \s, and "copy the next char literally" for anything
// else), double-quoted runs, single-quoted single characters, and the '_'
// universe shorthand are all resolved here; what is left over from the
// operator set passes through as operator atoms, and everything else
// becomes a byte-literal atom.
func HardCodify(source string) ([]model.Atom, error) {
	var out []model.Atom

	insideSingle := false
	singleLen := 0
	insideDouble := false

	i := 0
	for i < len(source) {
		c := source[i]

		switch {
		case c == '\\':
			i++
			if i >= len(source) {
				return nil, model.InvalidRegexError{Message: "dangling escape at end of input"}
			}
			e := source[i]
			var lit byte
			switch e {
			case 'n':
				lit = '\n'
			case 't':
				lit = '\t'
			case 's':
				lit = ' '
			default:
				lit = e
			}
			out = append(out, model.Literal(lit))
			if insideSingle {
				singleLen++
			}
			i++

		case c == '"':
			insideDouble = !insideDouble
			i++

		case insideDouble:
			out = append(out, model.Literal(c))
			i++

		case c == '\'':
			if insideSingle && singleLen > 1 {
				return nil, model.InvalidRegexError{Message: "more than one character inside single quotes"}
			}
			insideSingle = !insideSingle
			singleLen = 0
			i++

		case insideSingle:
			out = append(out, model.Literal(c))
			singleLen++
			i++

		case c == '_':
			for v := 0; v <= 255; v++ {
				out = append(out, model.Literal(byte(v)))
				if v != 255 {
					out = append(out, model.Or)
				}
			}
			i++

		default:
			if op, ok := operatorByte[c]; ok {
				out = append(out, op)
			} else {
				out = append(out, model.Literal(c))
			}
			i++
		}
	}

	if insideSingle {
		return nil, model.InvalidRegexError{Message: "unterminated single-quoted literal"}
	}

	return out, nil
}

// ExtraSoftCodify maps every input byte to its numeric literal atom
// unconditionally. It is used when the input is already plain source text
// that a prebuilt DFA will scan (the analyzer driver's input file, for
// example), as opposed to a regex pattern that still needs hardCodify's
// escape/quote/universe handling.
func ExtraSoftCodify(source []byte) []model.Atom {
	out := make([]model.Atom, len(source))
	for i, c := range source {
		out[i] = model.Literal(c)
	}
	return out
}

// SoftCodify maps input bytes to literal atoms exactly as ExtraSoftCodify
// does; it gives the space atom no special treatment in quoted-literal
// contexts. It is kept as a separate entry point so callers can name their
// intent.
func SoftCodify(source []byte) []model.Atom {
	return ExtraSoftCodify(source)
}
