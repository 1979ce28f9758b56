// Package catalog validates descriptor documents into animations and holds
// them in an immutable catalog keyed by vocabulary identifier.
//
// Building is fail-fast: the first invalid tag aborts construction and no
// partial catalog is returned. Every failure is a typed error carrying the
// tag name and, where it applies, the frame index.
package catalog

import (
	"sort"

	"github.com/vovakirdan/tui-sprites/internal/anim"
	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

// Catalog is a read-only identifier to animation table. It is safe for
// concurrent use.
type Catalog struct {
	vocab *vocab.Vocabulary
	anims map[vocab.ID]*anim.Animation
	ids   []vocab.ID
}

func newCatalog(v *vocab.Vocabulary, anims map[vocab.ID]*anim.Animation) *Catalog {
	c := &Catalog{
		vocab: v,
		anims: make(map[vocab.ID]*anim.Animation, len(anims)),
		ids:   make([]vocab.ID, 0, len(anims)),
	}
	for id, a := range anims {
		c.anims[id] = a
		c.ids = append(c.ids, id)
	}
	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })
	return c
}

// Get returns the animation for id.
func (c *Catalog) Get(id vocab.ID) (*anim.Animation, bool) {
	a, ok := c.anims[id]
	return a, ok
}

// Lookup returns the animation for a vocabulary name.
func (c *Catalog) Lookup(name string) (*anim.Animation, bool) {
	id, ok := c.vocab.Lookup(name)
	if !ok {
		return nil, false
	}
	return c.Get(id)
}

// Name returns the vocabulary name of id.
func (c *Catalog) Name(id vocab.ID) string {
	name, _ := c.vocab.Name(id)
	return name
}

// IDs returns the identifiers present, ascending.
func (c *Catalog) IDs() []vocab.ID {
	out := make([]vocab.ID, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of animations.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Vocabulary returns the vocabulary the catalog was built against.
func (c *Catalog) Vocabulary() *vocab.Vocabulary {
	return c.vocab
}
