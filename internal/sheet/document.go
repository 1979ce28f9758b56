// Package sheet decodes sprite-sheet descriptor documents, as exported by
// Aseprite and similar tools, into typed records.
//
// Decoding only checks shape and types. Cross-field rules (frame lookups,
// padding, durations) belong to the catalog builder.
//
// A repeated filename in the list layout is a schema error. In the keyed
// layout JSON keeps the last entry for a repeated key, while YAML rejects it.
package sheet

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-sprites/internal/core"
)

// InfiniteDuration is the raw duration value that marks a frame as held
// forever.
const InfiniteDuration uint16 = math.MaxUint16

// Document is a decoded descriptor: the frame table plus metadata.
type Document struct {
	Frames map[string]FrameEntry
	Meta   Meta
}

// Meta carries the descriptor's metadata block.
type Meta struct {
	App       string
	Version   string
	Image     string
	Format    string
	Size      core.Size
	Scale     float64
	FrameTags []FrameTagEntry
	Slices    []SliceEntry
}

// FrameEntry is one raw frame record.
type FrameEntry struct {
	Frame            core.Rect // Atlas-space rectangle, padding included
	Rotated          bool
	Trimmed          bool
	SpriteSourceSize core.Rect
	SourceSize       core.Size
	Duration         uint16 // Milliseconds; 0 is invalid, InfiniteDuration holds
}

// FrameTagEntry names an inclusive range of frames and its playback
// direction.
type FrameTagEntry struct {
	Name      string
	From      int
	To        int
	Direction string
}

// Len returns the number of frames the tag spans, or 0 when From > To.
// Spans wider than math.MaxInt report math.MaxInt.
func (t FrameTagEntry) Len() int {
	if t.From > t.To {
		return 0
	}
	n := uint64(t.To) - uint64(t.From)
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n) + 1
}

// SliceEntry is a named sub-rectangle track. Each key's bounds apply from
// its frame offset until the next higher key.
type SliceEntry struct {
	Name  string
	Color string
	Keys  []SliceKey
}

// SliceKey is one keyframe of a slice.
type SliceKey struct {
	Frame  int
	Bounds core.Rect
}

// FrameKey returns the frame table key for the index-th frame of a tag.
func FrameKey(tag string, index int) string {
	return fmt.Sprintf("%s %d", tag, index)
}

// Frame looks up the index-th frame of the named tag.
func (d *Document) Frame(tag string, index int) (FrameEntry, bool) {
	f, ok := d.Frames[FrameKey(tag, index)]
	return f, ok
}

// SlicesNamed returns the slices whose name matches, in document order.
func (d *Document) SlicesNamed(name string) []SliceEntry {
	var out []SliceEntry
	for _, s := range d.Meta.Slices {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}
