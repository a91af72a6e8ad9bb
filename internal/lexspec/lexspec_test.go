package lexspec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ATSOTECK/yalex/internal/lexsim"
	"github.com/ATSOTECK/yalex/internal/lexspec"
)

func TestCompileNumRuleMatchesWorkedExample(t *testing.T) {
	source := "let digit = ['0'-'9']\nrule num = digit+ { return INT }\n"

	engine, err := lexspec.Compile("digits.yal", source)
	require.NoError(t, err)

	res := lexsim.Special(engine.DFA, []byte("42"))
	require.True(t, res.Matched)
	assert.Equal(t, "num", res.Name)
	assert.Equal(t, 2, res.Length)
	assert.Equal(t, " return INT ", engine.Actions["num"])
}

func TestCompileRejectsMissingRuleClause(t *testing.T) {
	source := "let digit = ['0'-'9']\n"

	_, err := lexspec.Compile("digits.yal", source)
	require.Error(t, err)
}

func TestCompileRejectsUndefinedLetReference(t *testing.T) {
	source := "rule num = undefinedName+ { return INT }\n"

	_, err := lexspec.Compile("digits.yal", source)
	require.Error(t, err)
}

func TestCompileDistinguishesMultipleRules(t *testing.T) {
	source := "let digit = ['0'-'9']\n" +
		"let letter = ['a'-'z']\n" +
		"rule num = digit+ { return INT }\n" +
		"rule id = letter+ { return ID }\n"

	engine, err := lexspec.Compile("two.yal", source)
	require.NoError(t, err)

	num := lexsim.Special(engine.DFA, []byte("7"))
	require.True(t, num.Matched)
	assert.Equal(t, "num", num.Name)

	id := lexsim.Special(engine.DFA, []byte("x"))
	require.True(t, id.Matched)
	assert.Equal(t, "id", id.Name)
}

func TestCompileMultipleAlternativesGetDistinctBranchNames(t *testing.T) {
	source := "rule tok = 'a' { return A } | 'b' { return B }\n"

	engine, err := lexspec.Compile("alt.yal", source)
	require.NoError(t, err)

	assert.Equal(t, " return A ", engine.Actions["tok#1"])
	assert.Equal(t, " return B ", engine.Actions["tok#2"])

	res := lexsim.Special(engine.DFA, []byte("b"))
	require.True(t, res.Matched)
	assert.Equal(t, "tok#2", res.Name)
}
