package past_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ATSOTECK/yalex/internal/model"
	"github.com/ATSOTECK/yalex/internal/past"
	"github.com/ATSOTECK/yalex/internal/regexfe"
)

func buildFrom(t *testing.T, pattern string) (*past.Node, []byte) {
	t.Helper()
	postfix, err := regexfe.Compile(pattern)
	require.NoError(t, err)
	root, alphabet, err := past.Build(postfix)
	require.NoError(t, err)
	return root, alphabet
}

func TestBuildReturnsSortedDedupedAlphabet(t *testing.T) {
	_, alphabet := buildFrom(t, "(b|a|b|a)")
	assert.Equal(t, []byte{'a', 'b'}, alphabet)
}

func TestBuildDesugarsQuestionToOrWithEpsilon(t *testing.T) {
	root, _ := buildFrom(t, "a?")
	require.Equal(t, model.AtomOr, root.Kind)
	assert.Equal(t, model.AtomLiteral, root.Left.Kind)
	assert.Equal(t, model.AtomEpsilon, root.Right.Kind)
}

func TestBuildDesugarsPlusToStarConcatCopy(t *testing.T) {
	root, _ := buildFrom(t, "a+")
	require.Equal(t, model.AtomConcat, root.Kind)
	require.Equal(t, model.AtomStar, root.Left.Kind)
	assert.Equal(t, model.AtomLiteral, root.Left.Left.Kind)
	assert.Equal(t, model.AtomLiteral, root.Right.Kind)
	// the two operand occurrences must be distinct nodes so they can later
	// receive distinct position ids.
	assert.NotSame(t, root.Left.Left, root.Right)
}

func TestBuildStarOnEmptyStackFails(t *testing.T) {
	_, _, err := past.Build([]model.Atom{model.Star})
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestBuildOrWithoutEnoughOperandsFails(t *testing.T) {
	_, _, err := past.Build([]model.Atom{model.Literal('a'), model.Or})
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestBuildLeftoverOperandsFails(t *testing.T) {
	_, _, err := past.Build([]model.Atom{model.Literal('a'), model.Literal('b')})
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestBuildUnexpectedAtomFails(t *testing.T) {
	_, _, err := past.Build([]model.Atom{model.LParen})
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}
