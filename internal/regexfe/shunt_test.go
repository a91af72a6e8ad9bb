package regexfe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ATSOTECK/yalex/internal/model"
	"github.com/ATSOTECK/yalex/internal/regexfe"
)

func TestShuntingYardOrdersConcatBeforeOr(t *testing.T) {
	// a•b|c postfix: a b • c |
	infix := []model.Atom{
		model.Literal('a'), model.Concat, model.Literal('b'), model.Or, model.Literal('c'),
	}
	postfix, err := regexfe.ShuntingYard(infix)
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{
		model.Literal('a'), model.Literal('b'), model.Concat, model.Literal('c'), model.Or,
	}, postfix)
}

func TestShuntingYardHonorsParentheses(t *testing.T) {
	// (a|b)•c postfix: a b | c •
	infix := []model.Atom{
		model.LParen, model.Literal('a'), model.Or, model.Literal('b'), model.RParen,
		model.Concat, model.Literal('c'),
	}
	postfix, err := regexfe.ShuntingYard(infix)
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{
		model.Literal('a'), model.Literal('b'), model.Or, model.Literal('c'), model.Concat,
	}, postfix)
}

func TestShuntingYardStarBindsTighterThanConcat(t *testing.T) {
	// a•b* postfix: a b * •
	infix := []model.Atom{model.Literal('a'), model.Concat, model.Literal('b'), model.Star}
	postfix, err := regexfe.ShuntingYard(infix)
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{
		model.Literal('a'), model.Literal('b'), model.Star, model.Concat,
	}, postfix)
}

func TestShuntingYardUnmatchedCloseParenFails(t *testing.T) {
	_, err := regexfe.ShuntingYard([]model.Atom{model.Literal('a'), model.RParen})
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestShuntingYardUnmatchedOpenParenFails(t *testing.T) {
	_, err := regexfe.ShuntingYard([]model.Atom{model.LParen, model.Literal('a')})
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}
