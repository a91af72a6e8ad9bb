package lexspec

import (
	"fmt"
	"sort"

	"github.com/ATSOTECK/yalex/internal/dfa"
	"github.com/ATSOTECK/yalex/internal/model"
	"github.com/ATSOTECK/yalex/internal/past"
	"github.com/ATSOTECK/yalex/internal/regexfe"
)

// Engine is the lex-spec sequencer's final artifact: the combined,
// minimized DFA over every rule, and the table of semantic-action text to
// run when each named branch accepts.
type Engine struct {
	DFA     *dfa.DFA
	Actions map[string]string
}

// Compile parses, expands, and builds source into an Engine in one pass.
func Compile(filename, source string) (*Engine, error) {
	spec, err := Parse(filename, source)
	if err != nil {
		return nil, err
	}
	return BuildEngine(spec)
}

// BuildEngine expands a parsed Spec's let-values and assembles its
// combined DFA and action table.
func BuildEngine(spec *Spec) (*Engine, error) {
	expandedLets, err := expandLets(spec.Lets)
	if err != nil {
		return nil, err
	}

	var root *past.Node
	seen := make(map[byte]bool)
	actions := make(map[string]string)

	for _, rule := range spec.Rules {
		for i, alt := range rule.Alts {
			branchName := rule.Name
			if len(rule.Alts) > 1 {
				branchName = fmt.Sprintf("%s#%d", rule.Name, i+1)
			}
			if _, dup := actions[branchName]; dup {
				return nil, model.LexSpecMalformedError{
					Pos:     alt.Pos,
					Message: fmt.Sprintf("rule branch %q is defined more than once", branchName),
				}
			}
			actions[branchName] = alt.Action

			patternText, err := substituteIdents(alt.Pattern, expandedLets)
			if err != nil {
				return nil, err
			}
			atoms, err := regexfe.Compile(patternText)
			if err != nil {
				return nil, err
			}
			patternRoot, alphabet, err := past.Build(atoms)
			if err != nil {
				return nil, err
			}
			for _, b := range alphabet {
				seen[b] = true
			}

			branch := past.Concat(patternRoot, past.NamedTerminator(branchName))
			if root == nil {
				root = branch
			} else {
				root = past.Or(root, branch)
			}
		}
	}

	alphabet := make([]byte, 0, len(seen))
	for b := range seen {
		alphabet = append(alphabet, b)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	combined := dfa.BuildCombined(root, alphabet)
	return &Engine{DFA: dfa.Minimize(combined), Actions: actions}, nil
}
