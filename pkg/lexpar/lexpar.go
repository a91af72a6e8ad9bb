// Package lexpar provides a public API for embedding this toolchain's
// lexer and parser generators in Go applications.
//
// Basic usage:
//
//	engine, err := lexpar.CompileLexSpec("digits.yal", source)
//	tokens, err := engine.Scan([]byte("42 + 7"))
//
//	analysis, err := lexpar.CompileParserSpec("grammar.yapal", source)
//	fmt.Println(analysis.First["e"])
package lexpar

import (
	"fmt"

	"github.com/ATSOTECK/yalex/internal/artifact"
	"github.com/ATSOTECK/yalex/internal/dfa"
	"github.com/ATSOTECK/yalex/internal/grammar"
	"github.com/ATSOTECK/yalex/internal/lexsim"
	"github.com/ATSOTECK/yalex/internal/lexspec"
	"github.com/ATSOTECK/yalex/internal/model"
	"github.com/ATSOTECK/yalex/internal/parserspec"
	"github.com/ATSOTECK/yalex/internal/past"
	"github.com/ATSOTECK/yalex/internal/regexfe"
)

// Pattern is a single compiled regular expression, built directly from its
// AST via followpos rather than through the lex-spec sequencer's
// multi-branch combined DFA. It answers whether a whole input matches, the
// way a standalone regex engine would.
type Pattern struct {
	dfa *dfa.DFA
}

// CompilePattern parses a single regular expression (the same dialect a
// lex-spec rule's pattern uses) and builds its minimized DFA directly from
// the regex AST.
func CompilePattern(pattern string) (*Pattern, error) {
	atoms, err := regexfe.Compile(pattern)
	if err != nil {
		return nil, err
	}
	root, alphabet, err := past.Build(atoms)
	if err != nil {
		return nil, err
	}
	d, err := dfa.BuildDirect(root, alphabet)
	if err != nil {
		return nil, err
	}
	return &Pattern{dfa: dfa.Minimize(d)}, nil
}

// Match reports whether input, taken as a whole, is in the language p
// recognizes. It never matches a prefix: if any byte lacks a transition,
// or the final state reached isn't accepting, the whole call fails.
func (p *Pattern) Match(input []byte) bool {
	return lexsim.Simulate(p.dfa, input).Matched
}

// Analyzer wraps a compiled lex spec's minimized DFA and action table, and
// drives the longest-match special-simulate scan loop over arbitrary
// input.
type Analyzer struct {
	dfa     *dfa.DFA
	actions map[string]string
}

// Token is one match the analyzer's scan loop produced.
type Token struct {
	Name   string // winning branch name, e.g. "num" or "tok#2"
	Text   string // the matched input slice
	Action string // the action body registered for Name
	Offset int    // byte offset into the scanned input where Text starts
}

// CompileLexSpec sequences source as a lex spec, builds its combined
// minimized DFA, and returns a ready-to-use Analyzer.
func CompileLexSpec(filename, source string) (*Analyzer, error) {
	engine, err := lexspec.Compile(filename, source)
	if err != nil {
		return nil, err
	}
	return &Analyzer{dfa: engine.DFA, actions: engine.Actions}, nil
}

// LoadAnalyzer reads back an Analyzer previously persisted by Save.
func LoadAnalyzer(path string) (*Analyzer, error) {
	a, err := artifact.Load(path)
	if err != nil {
		return nil, err
	}
	return &Analyzer{dfa: a.DFA, actions: a.Actions}, nil
}

// Save gob-encodes the analyzer's DFA and action table to path.
func (a *Analyzer) Save(path string) error {
	return artifact.Save(path, &artifact.Artifact{DFA: a.dfa, Actions: a.actions})
}

// Actions returns the branch-name-to-action-body table built from the lex
// spec's rule clauses.
func (a *Analyzer) Actions() map[string]string {
	return a.actions
}

// Scan repeatedly special-simulates from the current offset, advancing by
// the winning branch's match length. It returns the tokens matched before
// the first unmatched position, along with a NoMatchError for that
// position.
func (a *Analyzer) Scan(input []byte) ([]Token, error) {
	var tokens []Token
	forward := 0
	for forward < len(input) {
		res := lexsim.Special(a.dfa, input[forward:])
		if !res.Matched {
			return tokens, model.NoMatchError{Offset: forward}
		}
		tokens = append(tokens, Token{
			Name:   res.Name,
			Text:   string(input[forward : forward+res.Length]),
			Action: a.actions[res.Name],
			Offset: forward,
		})
		forward += res.Length
	}
	return tokens, nil
}

// ScanResilient is Scan with the analyzer driver's recovery policy: on a
// no-match it records the offset and advances by a single byte instead of
// stopping, so one bad position does not abort analysis of the rest of
// the input.
func (a *Analyzer) ScanResilient(input []byte) (tokens []Token, skipped []int) {
	forward := 0
	for forward < len(input) {
		res := lexsim.Special(a.dfa, input[forward:])
		if !res.Matched {
			skipped = append(skipped, forward)
			forward++
			continue
		}
		tokens = append(tokens, Token{
			Name:   res.Name,
			Text:   string(input[forward : forward+res.Length]),
			Action: a.actions[res.Name],
			Offset: forward,
		})
		forward += res.Length
	}
	return tokens, skipped
}

// ParserAnalysis is the result of sequencing and analyzing a parser spec:
// its cross-checked Spec, the augmented Grammar built from its
// productions, the LR(0) canonical collection, and FIRST sets.
type ParserAnalysis struct {
	Spec        *parserspec.Spec
	Grammar     *grammar.Grammar
	Sets        [][]grammar.Item
	Transitions []grammar.Transition
	Accepting   []int
	First       map[string]map[string]bool
	Warnings    []string
}

// CompileParserSpec sequences source as a parser spec, cross-checks it,
// and builds its LR(0) automaton and FIRST sets. Check warnings (declared
// but unused terminals) are returned alongside a successful analysis
// rather than failing it.
func CompileParserSpec(filename, source string) (*ParserAnalysis, error) {
	spec, err := parserspec.Parse(filename, source)
	if err != nil {
		return nil, err
	}

	warnings, err := spec.Check()
	if err != nil {
		return nil, err
	}

	productions := make([]grammar.Production, len(spec.Productions))
	for i, p := range spec.Productions {
		productions[i] = grammar.Production{Head: p.Head, Body: p.Body}
	}
	g := grammar.New(productions)
	g.Augment()

	symbols := make([]string, 0, len(spec.Terminals)+len(spec.NonTerminals))
	symbols = append(symbols, spec.Terminals...)
	symbols = append(symbols, spec.NonTerminals...)

	sets, transitions, accepting := g.CanonicalCollection(symbols)

	return &ParserAnalysis{
		Spec:        spec,
		Grammar:     g,
		Sets:        sets,
		Transitions: transitions,
		Accepting:   accepting,
		First:       g.First(),
		Warnings:    warnings,
	}, nil
}

// CheckAgainstLexSpec cross-checks pa.Spec's terminals against a lex-spec
// Analyzer's action table, reporting the first terminal the lex spec does
// not define.
func (pa *ParserAnalysis) CheckAgainstLexSpec(lex *Analyzer) error {
	lexerTokens := make(map[string]bool, len(lex.actions))
	for name := range lex.actions {
		lexerTokens[name] = true
	}
	if err := pa.Spec.CheckAgainstLexicon(lexerTokens); err != nil {
		return fmt.Errorf("lexpar: %w", err)
	}
	return nil
}
