package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ATSOTECK/yalex/internal/codec"
	"github.com/ATSOTECK/yalex/internal/model"
)

func TestHardCodifyPassesOperatorsThrough(t *testing.T) {
	atoms, err := codec.HardCodify("a(b|c)*")
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{
		model.Literal('a'),
		model.LParen,
		model.Literal('b'),
		model.Or,
		model.Literal('c'),
		model.RParen,
		model.Star,
	}, atoms)
}

func TestHardCodifyResolvesEscapes(t *testing.T) {
	atoms, err := codec.HardCodify(`\n\t\s\*`)
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{
		model.Literal('\n'),
		model.Literal('\t'),
		model.Literal(' '),
		model.Literal('*'),
	}, atoms)
}

func TestHardCodifyDanglingEscapeFails(t *testing.T) {
	_, err := codec.HardCodify(`a\`)
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestHardCodifyDoubleQuotedRunIsLiteral(t *testing.T) {
	atoms, err := codec.HardCodify(`"a|b"`)
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{
		model.Literal('a'),
		model.Literal('|'),
		model.Literal('b'),
	}, atoms)
}

func TestHardCodifySingleQuotedSingleCharIsLiteral(t *testing.T) {
	atoms, err := codec.HardCodify(`'*'`)
	require.NoError(t, err)
	assert.Equal(t, []model.Atom{model.Literal('*')}, atoms)
}

func TestHardCodifyMultiCharSingleQuoteFails(t *testing.T) {
	_, err := codec.HardCodify(`'ab'`)
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestHardCodifyUnterminatedSingleQuoteFails(t *testing.T) {
	_, err := codec.HardCodify(`'a`)
	require.Error(t, err)
	var invalid model.InvalidRegexError
	require.ErrorAs(t, err, &invalid)
}

func TestHardCodifyUnderscoreExpandsToFullUniverse(t *testing.T) {
	atoms, err := codec.HardCodify("_")
	require.NoError(t, err)
	// 256 literals joined by 255 '|' atoms.
	require.Len(t, atoms, 511)
	assert.Equal(t, model.Literal(0), atoms[0])
	assert.Equal(t, model.Or, atoms[1])
	assert.Equal(t, model.Literal(255), atoms[510])
}

func TestExtraSoftCodifyMapsEveryByteToLiteral(t *testing.T) {
	atoms := codec.ExtraSoftCodify([]byte("ab"))
	assert.Equal(t, []model.Atom{model.Literal('a'), model.Literal('b')}, atoms)
}

func TestSoftCodifyMatchesExtraSoftCodify(t *testing.T) {
	assert.Equal(t, codec.ExtraSoftCodify([]byte("xyz")), codec.SoftCodify([]byte("xyz")))
}
