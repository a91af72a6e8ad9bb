package regexfe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ATSOTECK/yalex/internal/codec"
	"github.com/ATSOTECK/yalex/internal/model"
	"github.com/ATSOTECK/yalex/internal/regexfe"
)

func classAtoms(t *testing.T, src string) []model.Atom {
	t.Helper()
	atoms, err := codec.HardCodify(src)
	require.NoError(t, err)
	return atoms
}

func TestExpandCharClassesBuildsDisjunction(t *testing.T) {
	out, err := regexfe.ExpandCharClasses(classAtoms(t, "[abc]"))
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{
		model.LParen,
		model.Literal('a'), model.Or,
		model.Literal('b'), model.Or,
		model.Literal('c'),
		model.RParen,
	}, out)
}

func TestExpandCharClassesExpandsRange(t *testing.T) {
	out, err := regexfe.ExpandCharClasses(classAtoms(t, "[a-c]"))
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{
		model.LParen,
		model.Literal('a'), model.Or,
		model.Literal('b'), model.Or,
		model.Literal('c'),
		model.RParen,
	}, out)
}

func TestExpandCharClassesNegatesAgainstFullUniverse(t *testing.T) {
	out, err := regexfe.ExpandCharClasses(classAtoms(t, "[^a]"))
	require.NoError(t, err)
	// full 256-byte universe minus 'a' leaves 255 literals and 254 '|' atoms,
	// plus the surrounding parens.
	assert.Equal(t, 2+255+254, len(out))
}

func TestExpandCharClassesSetDifference(t *testing.T) {
	// [a-z]#[aeiou] keeps consonants only: latch the first group, then
	// subtract the second before emitting.
	out, err := regexfe.ExpandCharClasses(classAtoms(t, "[a-z]#[aeiou]"))
	require.NoError(t, err)
	// 26 letters minus 5 vowels leaves 21 literals and 20 '|' atoms, plus parens.
	assert.Equal(t, 2+21+20, len(out))
	for _, a := range out {
		if a.Kind == model.AtomLiteral {
			assert.NotContains(t, "aeiou", string(rune(a.Value)))
		}
	}
}

func TestExpandCharClassesMissingCloseBracketFails(t *testing.T) {
	_, err := regexfe.ExpandCharClasses(classAtoms(t, "[abc"))
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestExpandCharClassesDanglingRangeDashFails(t *testing.T) {
	_, err := regexfe.ExpandCharClasses(classAtoms(t, "[a-]"))
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestExpandCharClassesReversedRangeFails(t *testing.T) {
	_, err := regexfe.ExpandCharClasses(classAtoms(t, "[z-a]"))
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestExpandCharClassesPassesNonBracketAtomsThrough(t *testing.T) {
	out, err := regexfe.ExpandCharClasses(classAtoms(t, "a[bc]d"))
	require.NoError(t, err)
	assert.Equal(t, model.Literal('a'), out[0])
	assert.Equal(t, model.Literal('d'), out[len(out)-1])
}
