// Package artifact persists a compiled lexer analyzer (its minimized DFA
// plus the lex-spec sequencer's action table) to disk, and loads it back
// for a later run of the analyzer driver without recompiling the lex spec.
package artifact

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/ATSOTECK/yalex/internal/dfa"
)

// Artifact is the unit a lex spec compiles down to and the analyzer driver
// loads back up: the minimized DFA together with the branch-name-to-action
// table the lex-spec sequencer built alongside it.
type Artifact struct {
	DFA     *dfa.DFA
	Actions map[string]string
}

// Save gob-encodes a to path, truncating any existing file.
func Save(path string, a *Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("artifact: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Encode(f, a); err != nil {
		return fmt.Errorf("artifact: encode %s: %w", path, err)
	}
	return nil
}

// Load reads and gob-decodes an Artifact previously written by Save.
func Load(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("artifact: open %s: %w", path, err)
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("artifact: decode %s: %w", path, err)
	}
	return a, nil
}

// Encode gob-encodes a onto w.
func Encode(w io.Writer, a *Artifact) error {
	return gob.NewEncoder(w).Encode(a)
}

// Decode gob-decodes an Artifact from r.
func Decode(r io.Reader) (*Artifact, error) {
	var a Artifact
	if err := gob.NewDecoder(r).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}
