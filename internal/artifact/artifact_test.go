package artifact_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ATSOTECK/yalex/internal/artifact"
	"github.com/ATSOTECK/yalex/internal/lexsim"
	"github.com/ATSOTECK/yalex/internal/lexspec"
)

func compileNumEngine(t *testing.T) *lexspec.Engine {
	t.Helper()
	source := "let digit = ['0'-'9']\nrule num = digit+ { return INT }\n"
	engine, err := lexspec.Compile("digits.yal", source)
	require.NoError(t, err)
	return engine
}

func TestEncodeDecodeRoundTripsMatching(t *testing.T) {
	engine := compileNumEngine(t)

	var buf bytes.Buffer
	require.NoError(t, artifact.Encode(&buf, &artifact.Artifact{DFA: engine.DFA, Actions: engine.Actions}))

	decoded, err := artifact.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, engine.Actions, decoded.Actions)

	before := lexsim.Special(engine.DFA, []byte("42"))
	after := lexsim.Special(decoded.DFA, []byte("42"))
	assert.Equal(t, before, after)
	assert.True(t, after.Matched)
	assert.Equal(t, "num", after.Name)
}

func TestSaveLoadRoundTripsThroughDisk(t *testing.T) {
	engine := compileNumEngine(t)
	path := filepath.Join(t.TempDir(), "digits.lexa")

	require.NoError(t, artifact.Save(path, &artifact.Artifact{DFA: engine.DFA, Actions: engine.Actions}))

	loaded, err := artifact.Load(path)
	require.NoError(t, err)

	assert.Equal(t, " return INT ", loaded.Actions["num"])

	res := lexsim.Special(loaded.DFA, []byte("7"))
	require.True(t, res.Matched)
	assert.Equal(t, "num", res.Name)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := artifact.Load(filepath.Join(t.TempDir(), "missing.lexa"))
	require.Error(t, err)
}
