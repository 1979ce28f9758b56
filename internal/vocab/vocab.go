// Package vocab holds the closed set of animation identifiers and maps tag
// names to them and back.
package vocab

import (
	_ "embed"
	"fmt"
	"math"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed names.yaml
var defaultNamesYAML []byte

// ID identifies an animation within a vocabulary.
type ID uint16

// Vocabulary is an immutable bidirectional name <-> ID table.
type Vocabulary struct {
	names []string
	ids   map[string]ID
}

type namesFile struct {
	Names []string `yaml:"names"`
}

// New builds a vocabulary. IDs are assigned in slice order starting at 0.
func New(names []string) (*Vocabulary, error) {
	if len(names) > math.MaxUint16+1 {
		return nil, fmt.Errorf("vocab: %d names exceed the identifier range", len(names))
	}

	v := &Vocabulary{
		names: make([]string, len(names)),
		ids:   make(map[string]ID, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("vocab: empty name at position %d", i)
		}
		if prev, dup := v.ids[name]; dup {
			return nil, fmt.Errorf("vocab: name %q repeated at positions %d and %d", name, prev, i)
		}
		v.names[i] = name
		v.ids[name] = ID(i)
	}
	return v, nil
}

// Parse builds a vocabulary from a YAML document with a top-level "names"
// list.
func Parse(data []byte) (*Vocabulary, error) {
	var f namesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("vocab: yaml unmarshal: %w", err)
	}
	if len(f.Names) == 0 {
		return nil, fmt.Errorf("vocab: no names defined")
	}
	return New(f.Names)
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := Parse(defaultNamesYAML)
		if err != nil {
			panic(fmt.Sprintf("vocab: embedded names.yaml: %v", err))
		}
		defaultVocab = v
	})
	return defaultVocab
}

// Lookup resolves a name.
func (v *Vocabulary) Lookup(name string) (ID, bool) {
	id, ok := v.ids[name]
	return id, ok
}

// Name returns the name of an identifier.
func (v *Vocabulary) Name(id ID) (string, bool) {
	if int(id) >= len(v.names) {
		return "", false
	}
	return v.names[id], true
}

// Len returns the number of identifiers.
func (v *Vocabulary) Len() int {
	return len(v.names)
}

// IDs returns every identifier in ascending order.
func (v *Vocabulary) IDs() []ID {
	ids := make([]ID, len(v.names))
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
