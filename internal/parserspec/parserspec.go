// Package parserspec sequences a parser-spec source file into its terminal
// and non-terminal declarations and its productions, and cross-checks the
// two against each other.
package parserspec

import (
	"fmt"
	"strings"

	"github.com/ATSOTECK/yalex/internal/model"
)

// Production is one `head : body ;` alternative, already split on `|`.
type Production struct {
	Head string
	Body []string
}

// Spec is a sequenced parser-spec source: its token declarations and its
// productions, with terminals and non-terminals collected in first-seen
// order.
type Spec struct {
	Filename      string
	DefinedTokens []string
	IgnoredTokens []string
	Productions   []Production
	Terminals     []string
	NonTerminals  []string
}

// epsilonSymbol marks an explicitly empty production alternative; it is
// never added to Terminals, NonTerminals, or a Production's Body.
const epsilonSymbol = "ε"

// Parse tokenizes source, splits it at the first `%%`, reads the
// definitions section for `%token`/IGNORE declarations, and runs the
// production state machine over the rest.
func Parse(filename, source string) (*Spec, error) {
	if strings.TrimSpace(source) == "" {
		return nil, model.EmptyInputError{Pos: model.Position{Filename: filename, Line: 1, Column: 1}}
	}

	source = stripComments(source)

	idx := strings.Index(source, "%%")
	if idx < 0 {
		return nil, model.ParserSpecMalformedError{
			Pos:     model.Position{Filename: filename, Line: 1, Column: 1},
			Message: "missing '%%' separator between definitions and productions",
		}
	}

	spec := &Spec{Filename: filename}
	parseDefinitions(spec, source[:idx])
	if err := parseProductions(spec, source[idx+2:], filename); err != nil {
		return nil, err
	}
	return spec, nil
}

func stripComments(source string) string {
	var sb strings.Builder
	i := 0
	for i < len(source) {
		if i+1 < len(source) && source[i] == '/' && source[i+1] == '*' {
			i += 2
			for i+1 < len(source) && !(source[i] == '*' && source[i+1] == '/') {
				i++
			}
			i += 2
			continue
		}
		sb.WriteByte(source[i])
		i++
	}
	return sb.String()
}

// parseDefinitions tracks the %token and IGNORE directive flags, both
// cleared at the end of every line.
func parseDefinitions(spec *Spec, text string) {
	definedSeen := map[string]bool{}
	ignoredSeen := map[string]bool{}

	for _, line := range strings.Split(text, "\n") {
		haveToken, haveIgnore := false, false
		for _, tok := range strings.Fields(line) {
			switch tok {
			case "%token":
				haveToken = true
				continue
			case "IGNORE":
				haveIgnore = true
				continue
			}
			if !isUpperIdent(tok) {
				continue
			}
			switch {
			case haveIgnore:
				if !ignoredSeen[tok] {
					ignoredSeen[tok] = true
					spec.IgnoredTokens = append(spec.IgnoredTokens, tok)
				}
			case haveToken:
				if !definedSeen[tok] {
					definedSeen[tok] = true
					spec.DefinedTokens = append(spec.DefinedTokens, tok)
				}
			}
		}
	}
}

func isUpperIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') || c == '_' || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return s[0] >= 'A' && s[0] <= 'Z'
}

func isLowerIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'a' && c <= 'z') || c == '_' || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return s[0] >= 'a' && s[0] <= 'z'
}

// parseProductions runs the hand-written state machine
// `(minus name)(stat ':')((mayus|minus)* (rpt '|'))* (end ';')` over the
// tokens after `%%`.
func parseProductions(spec *Spec, text string, filename string) error {
	tokens := tokenizeProductions(text)

	terminalsSeen := map[string]bool{}
	nonTerminalsSeen := map[string]bool{}
	addTerminal := func(s string) {
		if !terminalsSeen[s] {
			terminalsSeen[s] = true
			spec.Terminals = append(spec.Terminals, s)
		}
	}
	addNonTerminal := func(s string) {
		if !nonTerminalsSeen[s] {
			nonTerminalsSeen[s] = true
			spec.NonTerminals = append(spec.NonTerminals, s)
		}
	}

	i := 0
productionLoop:
	for i < len(tokens) {
		head := tokens[i]
		if !isLowerIdent(head) {
			return model.ParserSpecMalformedError{
				Pos:     model.Position{Filename: filename},
				Message: fmt.Sprintf("expected a lowercase production name, found %q", head),
			}
		}
		addNonTerminal(head)
		i++

		if i >= len(tokens) || tokens[i] != ":" {
			return model.ParserSpecMalformedError{
				Pos:     model.Position{Filename: filename},
				Message: fmt.Sprintf("expected ':' after %q", head),
			}
		}
		i++

		var body []string
		for {
			if i >= len(tokens) {
				return model.ParserSpecMalformedError{
					Pos:     model.Position{Filename: filename},
					Message: fmt.Sprintf("unterminated production %q: missing ';'", head),
				}
			}
			tok := tokens[i]
			switch {
			case tok == "|":
				spec.Productions = append(spec.Productions, Production{Head: head, Body: body})
				body = nil
				i++
			case tok == ";":
				spec.Productions = append(spec.Productions, Production{Head: head, Body: body})
				i++
				continue productionLoop
			case tok == epsilonSymbol:
				i++
			case isUpperIdent(tok):
				addTerminal(tok)
				body = append(body, tok)
				i++
			case isLowerIdent(tok):
				body = append(body, tok)
				i++
			default:
				return model.ParserSpecMalformedError{
					Pos:     model.Position{Filename: filename},
					Message: fmt.Sprintf("unexpected symbol %q in production body", tok),
				}
			}
		}
	}

	return nil
}

func tokenizeProductions(text string) []string {
	var tokens []string
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == ':' || c == ';' || c == '|':
			tokens = append(tokens, string(c))
			i++
		default:
			j := i
			for j < len(text) && !strings.ContainsRune(" \t\n\r:;|", rune(text[j])) {
				j++
			}
			tokens = append(tokens, text[i:j])
			i = j
		}
	}
	return tokens
}

// Check cross-validates terminals and non-terminals. A non-terminal used
// in a body but never defined as a head is fatal; a declared token never
// used as a terminal is reported only as a warning, since a
// declared-but-unused terminal does not make the grammar itself unusable.
func (s *Spec) Check() (warnings []string, err error) {
	heads := map[string]bool{}
	usedTerminals := map[string]bool{}
	usedNonTerminals := map[string]bool{}

	for _, p := range s.Productions {
		heads[p.Head] = true
		for _, sym := range p.Body {
			if isUpperIdent(sym) {
				usedTerminals[sym] = true
			} else {
				usedNonTerminals[sym] = true
			}
		}
	}

	var undefined []string
	for nt := range usedNonTerminals {
		if !heads[nt] {
			undefined = append(undefined, nt)
		}
	}
	if len(undefined) > 0 {
		err = model.ParserSpecMalformedError{
			Pos:     model.Position{Filename: s.Filename},
			Message: fmt.Sprintf("non-terminal(s) referenced but never defined: %s", strings.Join(undefined, ", ")),
		}
	}

	ignored := map[string]bool{}
	for _, tok := range s.IgnoredTokens {
		ignored[tok] = true
	}
	for _, tok := range s.DefinedTokens {
		if ignored[tok] || usedTerminals[tok] {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("terminal %q is declared but never used", tok))
	}

	return warnings, err
}

// CheckAgainstLexicon reports a TokenMismatchError for the first terminal
// used in a production that lexerTokens (the lex spec's rule names) does
// not define.
func (s *Spec) CheckAgainstLexicon(lexerTokens map[string]bool) error {
	for _, tok := range s.Terminals {
		if !lexerTokens[tok] {
			return model.TokenMismatchError{Terminal: tok}
		}
	}
	return nil
}
