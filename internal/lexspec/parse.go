// Package lexspec sequences a lex-spec source file into let-bindings and
// rule clauses, splices let-values into rule patterns, and assembles the
// combined DFA plus semantic-action table a generated lexer needs.
package lexspec

import (
	"fmt"
	"strings"

	"github.com/ATSOTECK/yalex/internal/dfa"
	"github.com/ATSOTECK/yalex/internal/lexsim"
	"github.com/ATSOTECK/yalex/internal/model"
)

// actionBodyDFA drives the bracket-balanced scan that splices a rule
// alternative's action body out of the source, the same nested-simulation
// primitive a combined-DFA lexer would use to recognize a brace-delimited
// token.
var actionBodyDFA = &dfa.DFA{Nested: true, NestedLeft: model.Literal('{'), NestedRight: model.Literal('}')}

// LetBinding is one `let name = expression` clause.
type LetBinding struct {
	Name string
	Expr string
	Pos  model.Position
}

// RuleAlt is one `expression { action }` alternative of a rule clause.
type RuleAlt struct {
	Pattern string
	Action  string // braces stripped; whitespace inside preserved verbatim
	Pos     model.Position
}

// Rule is one `rule name = alt (| alt)*` clause.
type Rule struct {
	Name string
	Alts []RuleAlt
	Pos  model.Position
}

// Spec is a fully tokenized, but not yet expanded or compiled, lex-spec
// source.
type Spec struct {
	Filename string
	Lets     []LetBinding
	Rules    []Rule
}

// Parse sequences source into its let and rule clauses, in declaration
// order, stripping `(* ... *)` comments as it goes.
func Parse(filename, source string) (*Spec, error) {
	if strings.TrimSpace(source) == "" {
		return nil, model.EmptyInputError{Pos: model.Position{Filename: filename, Line: 1, Column: 1}}
	}

	p := &parser{source: source, filename: filename, line: 1, column: 1}
	spec := &Spec{Filename: filename}

	for {
		p.skipWhitespaceAndComments()
		if p.atEnd() {
			break
		}

		switch {
		case p.hasKeyword("let"):
			binding, err := p.parseLet()
			if err != nil {
				return nil, err
			}
			spec.Lets = append(spec.Lets, binding)

		case p.hasKeyword("rule"):
			rule, err := p.parseRule()
			if err != nil {
				return nil, err
			}
			spec.Rules = append(spec.Rules, rule)

		default:
			return nil, model.LexSpecMalformedError{
				Pos:     p.pos(),
				Message: fmt.Sprintf("expected 'let' or 'rule', found %q", p.peekWord()),
			}
		}
	}

	if len(spec.Rules) == 0 {
		return nil, model.LexSpecMalformedError{
			Pos:     model.Position{Filename: filename, Line: 1, Column: 1},
			Message: "lex spec has no rule clause",
		}
	}

	return spec, nil
}

type parser struct {
	source   string
	filename string
	offset   int
	line     int
	column   int
}

func (p *parser) atEnd() bool { return p.offset >= len(p.source) }

func (p *parser) pos() model.Position {
	return model.Position{Filename: p.filename, Line: p.line, Column: p.column, Offset: p.offset}
}

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.source[p.offset]
}

func (p *parser) advance() byte {
	c := p.source[p.offset]
	p.offset++
	if c == '\n' {
		p.line++
		p.column = 1
	} else {
		p.column++
	}
	return c
}

func (p *parser) skipWhitespaceAndComments() {
	for !p.atEnd() {
		c := p.peek()
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.advance()
			continue
		}
		if c == '(' && p.offset+1 < len(p.source) && p.source[p.offset+1] == '*' {
			p.advance()
			p.advance()
			for !p.atEnd() && !(p.peek() == '*' && p.offset+1 < len(p.source) && p.source[p.offset+1] == ')') {
				p.advance()
			}
			if !p.atEnd() {
				p.advance()
				p.advance()
			}
			continue
		}
		break
	}
}

func (p *parser) hasKeyword(kw string) bool {
	if p.offset+len(kw) > len(p.source) {
		return false
	}
	if p.source[p.offset:p.offset+len(kw)] != kw {
		return false
	}
	after := p.offset + len(kw)
	return after >= len(p.source) || !isIdentByte(p.source[after])
}

func (p *parser) peekWord() string {
	j := p.offset
	for j < len(p.source) && p.source[j] != '\n' && p.source[j] != ' ' {
		j++
	}
	return p.source[p.offset:j]
}

func (p *parser) consumeKeyword(kw string) {
	for range kw {
		p.advance()
	}
}

func (p *parser) readIdent() (string, error) {
	start := p.offset
	for !p.atEnd() && isIdentByte(p.peek()) {
		p.advance()
	}
	if p.offset == start {
		return "", model.LexSpecMalformedError{Pos: p.pos(), Message: "expected an identifier"}
	}
	return p.source[start:p.offset], nil
}

func (p *parser) expect(c byte) error {
	p.skipWhitespaceAndComments()
	if p.atEnd() || p.peek() != c {
		return model.LexSpecMalformedError{Pos: p.pos(), Message: fmt.Sprintf("expected %q", c)}
	}
	p.advance()
	return nil
}

func isIdentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// parseLet consumes `let ID = <rest of line>`.
func (p *parser) parseLet() (LetBinding, error) {
	start := p.pos()
	p.consumeKeyword("let")
	p.skipWhitespaceAndComments()

	name, err := p.readIdent()
	if err != nil {
		return LetBinding{}, err
	}
	if err := p.expect('='); err != nil {
		return LetBinding{}, err
	}
	p.skipWhitespaceAndComments()

	exprStart := p.offset
	for !p.atEnd() && p.peek() != '\n' {
		p.advance()
	}
	expr := strings.TrimSpace(p.source[exprStart:p.offset])
	if expr == "" {
		return LetBinding{}, model.LexSpecMalformedError{Pos: p.pos(), Message: fmt.Sprintf("let %q has no expression", name)}
	}

	return LetBinding{Name: name, Expr: expr, Pos: start}, nil
}

// parseRule consumes `rule ID = alt ('|' alt)*`, alt := expression '{' action '}'.
func (p *parser) parseRule() (Rule, error) {
	start := p.pos()
	p.consumeKeyword("rule")
	p.skipWhitespaceAndComments()

	name, err := p.readIdent()
	if err != nil {
		return Rule{}, err
	}
	if err := p.expect('='); err != nil {
		return Rule{}, err
	}

	rule := Rule{Name: name, Pos: start}
	for {
		alt, err := p.parseAlt()
		if err != nil {
			return Rule{}, err
		}
		rule.Alts = append(rule.Alts, alt)

		p.skipWhitespaceAndComments()
		if p.peek() == '|' {
			p.advance()
			continue
		}
		break
	}
	return rule, nil
}

func (p *parser) parseAlt() (RuleAlt, error) {
	p.skipWhitespaceAndComments()
	altPos := p.pos()

	patternStart := p.offset
	depth := 0
	for !p.atEnd() {
		c := p.peek()
		if c == '\'' || c == '"' {
			p.advance()
			for !p.atEnd() && p.peek() != c {
				p.advance()
			}
			if !p.atEnd() {
				p.advance()
			}
			continue
		}
		if c == '[' {
			depth++
		}
		if c == ']' && depth > 0 {
			depth--
		}
		if c == '{' && depth == 0 {
			break
		}
		p.advance()
	}
	pattern := strings.TrimSpace(p.source[patternStart:p.offset])
	if pattern == "" {
		return RuleAlt{}, model.LexSpecMalformedError{Pos: altPos, Message: "rule alternative has no pattern"}
	}

	p.skipWhitespaceAndComments()
	if p.atEnd() || p.peek() != '{' {
		return RuleAlt{}, model.LexSpecMalformedError{Pos: p.pos(), Message: "expected '{'"}
	}

	res := lexsim.Nested(actionBodyDFA, []byte(p.source[p.offset:]))
	if !res.Matched {
		return RuleAlt{}, model.LexSpecMalformedError{Pos: altPos, Message: "unterminated action body"}
	}
	action := p.source[p.offset+1 : p.offset+res.Length-1]
	for i := 0; i < res.Length; i++ {
		p.advance()
	}

	return RuleAlt{Pattern: pattern, Action: action, Pos: altPos}, nil
}
