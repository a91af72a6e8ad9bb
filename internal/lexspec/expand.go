package lexspec

import (
	"fmt"
	"strings"

	"github.com/ATSOTECK/yalex/internal/model"
)

// expandLets resolves every let-binding's expression text into one with no
// remaining identifier references, substituting recursively by name.
// Substitution order does not affect the result: each name resolves to
// the same fully-expanded text regardless of which binding is expanded
// first.
func expandLets(lets []LetBinding) (map[string]string, error) {
	raw := make(map[string]string, len(lets))
	posOf := make(map[string]model.Position, len(lets))
	for _, l := range lets {
		raw[l.Name] = l.Expr
		posOf[l.Name] = l.Pos
	}

	expanded := make(map[string]string, len(lets))
	visiting := make(map[string]bool)

	var resolve func(name string) (string, error)
	resolve = func(name string) (string, error) {
		if v, ok := expanded[name]; ok {
			return v, nil
		}
		if visiting[name] {
			return "", model.LexSpecMalformedError{
				Pos:     posOf[name],
				Message: fmt.Sprintf("circular let definition involving %q", name),
			}
		}
		text, ok := raw[name]
		if !ok {
			return "", model.LexSpecMalformedError{Message: fmt.Sprintf("undefined identifier %q referenced in a let value", name)}
		}

		visiting[name] = true
		out, err := spliceIdents(text, resolve)
		visiting[name] = false
		if err != nil {
			return "", err
		}

		expanded[name] = out
		return out, nil
	}

	for _, l := range lets {
		if _, err := resolve(l.Name); err != nil {
			return nil, err
		}
	}
	return expanded, nil
}

// substituteIdents splices the fully-expanded let values into a rule's
// pattern text. Every bare identifier run must already be present in
// expanded; referencing anything else is fatal.
func substituteIdents(text string, expanded map[string]string) (string, error) {
	return spliceIdents(text, func(ref string) (string, error) {
		v, ok := expanded[ref]
		if !ok {
			return "", model.LexSpecMalformedError{Message: fmt.Sprintf("undefined identifier %q referenced in a rule pattern", ref)}
		}
		return v, nil
	})
}

// spliceIdents scans text for bare identifier runs outside of quotes and
// replaces each with a parenthesized copy of lookup's resolved value. A
// bare run of letters is always an identifier reference in lex-spec
// expression text; literal characters must be quoted to avoid this.
func spliceIdents(text string, lookup func(name string) (string, error)) (string, error) {
	var sb strings.Builder
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '\'' || c == '"':
			j := i + 1
			for j < len(text) && text[j] != c {
				j++
			}
			if j < len(text) {
				j++
			}
			sb.WriteString(text[i:j])
			i = j

		case isLetter(c):
			j := i
			for j < len(text) && isIdentByte(text[j]) {
				j++
			}
			value, err := lookup(text[i:j])
			if err != nil {
				return "", err
			}
			sb.WriteByte('(')
			sb.WriteString(value)
			sb.WriteByte(')')
			i = j

		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
