package sheet

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sprites/internal/core"
)

// Parse decodes a JSON descriptor.
func Parse(data []byte) (*Document, error) {
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, asSchemaError(err)
	}
	return w.document()
}

// ParseYAML decodes a descriptor written in YAML with the same layout as the
// JSON export.
func ParseYAML(data []byte) (*Document, error) {
	var w wireDocument
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, asSchemaError(err)
	}
	return w.document()
}

// ParseFile routes already-read descriptor bytes to the parser matching the
// file extension.
func ParseFile(data []byte, ext string) (*Document, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return Parse(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, schemaErrorf("", "unsupported descriptor extension %q", ext)
	}
}

// FormatExtensions returns the supported descriptor file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

func (w *wireDocument) document() (*Document, error) {
	if w.Frames == nil {
		return nil, schemaErrorf("frames", "missing")
	}
	if w.Meta == nil {
		return nil, schemaErrorf("meta", "missing")
	}

	frames, err := convertFrames(*w.Frames)
	if err != nil {
		return nil, err
	}
	meta, err := w.Meta.meta()
	if err != nil {
		return nil, err
	}

	return &Document{Frames: frames, Meta: meta}, nil
}

func convertFrames(in wireFrames) (map[string]FrameEntry, error) {
	// Sorted so the first reported problem does not depend on map order.
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]FrameEntry, len(in))
	for _, k := range keys {
		entry, err := in[k].entry("frames[" + strconv.Quote(k) + "]")
		if err != nil {
			return nil, err
		}
		out[k] = entry
	}
	return out, nil
}

func (f wireFrame) entry(path string) (FrameEntry, error) {
	frame, err := f.Frame.rect(path + ".frame")
	if err != nil {
		return FrameEntry{}, err
	}
	source, err := f.SourceSize.size(path + ".sourceSize")
	if err != nil {
		return FrameEntry{}, err
	}
	if f.Duration == nil {
		return FrameEntry{}, schemaErrorf(path+".duration", "missing")
	}

	// Untrimmed exports may omit spriteSourceSize; it then covers the source.
	spriteSource := core.NewRect(0, 0, source.W, source.H)
	if f.SpriteSourceSize != nil {
		spriteSource, err = f.SpriteSourceSize.rect(path + ".spriteSourceSize")
		if err != nil {
			return FrameEntry{}, err
		}
	}

	return FrameEntry{
		Frame:            frame,
		Rotated:          f.Rotated,
		Trimmed:          f.Trimmed,
		SpriteSourceSize: spriteSource,
		SourceSize:       source,
		Duration:         *f.Duration,
	}, nil
}

func (m *wireMeta) meta() (Meta, error) {
	if m.FrameTags == nil {
		return Meta{}, schemaErrorf("meta.frameTags", "missing")
	}

	meta := Meta{
		App:     m.App,
		Version: m.Version,
		Image:   m.Image,
		Format:  m.Format,
		Scale:   float64(m.Scale),
	}
	if m.Size != nil {
		size, err := m.Size.size("meta.size")
		if err != nil {
			return Meta{}, err
		}
		meta.Size = size
	}

	meta.FrameTags = make([]FrameTagEntry, 0, len(*m.FrameTags))
	for i, t := range *m.FrameTags {
		tag, err := t.entry(fmt.Sprintf("meta.frameTags[%d]", i))
		if err != nil {
			return Meta{}, err
		}
		meta.FrameTags = append(meta.FrameTags, tag)
	}

	meta.Slices = make([]SliceEntry, 0, len(m.Slices))
	for i, s := range m.Slices {
		slice, err := s.entry(fmt.Sprintf("meta.slices[%d]", i))
		if err != nil {
			return Meta{}, err
		}
		meta.Slices = append(meta.Slices, slice)
	}

	return meta, nil
}

func (t wireFrameTag) entry(path string) (FrameTagEntry, error) {
	if t.Name == nil {
		return FrameTagEntry{}, schemaErrorf(path+".name", "missing")
	}
	if t.From == nil {
		return FrameTagEntry{}, schemaErrorf(path+".from", "missing")
	}
	if t.To == nil {
		return FrameTagEntry{}, schemaErrorf(path+".to", "missing")
	}
	if t.Direction == nil {
		return FrameTagEntry{}, schemaErrorf(path+".direction", "missing")
	}
	if *t.From < 0 {
		return FrameTagEntry{}, schemaErrorf(path+".from", "negative frame index %d", *t.From)
	}
	if *t.To < 0 {
		return FrameTagEntry{}, schemaErrorf(path+".to", "negative frame index %d", *t.To)
	}

	return FrameTagEntry{
		Name:      *t.Name,
		From:      *t.From,
		To:        *t.To,
		Direction: *t.Direction,
	}, nil
}

func (s wireSlice) entry(path string) (SliceEntry, error) {
	if s.Name == nil {
		return SliceEntry{}, schemaErrorf(path+".name", "missing")
	}

	slice := SliceEntry{
		Name:  *s.Name,
		Color: s.Color,
		Keys:  make([]SliceKey, 0, len(s.Keys)),
	}
	for i, k := range s.Keys {
		keyPath := fmt.Sprintf("%s.keys[%d]", path, i)
		if k.Frame == nil {
			return SliceEntry{}, schemaErrorf(keyPath+".frame", "missing")
		}
		if *k.Frame < 0 {
			return SliceEntry{}, schemaErrorf(keyPath+".frame", "negative frame offset %d", *k.Frame)
		}
		bounds, err := k.Bounds.rect(keyPath + ".bounds")
		if err != nil {
			return SliceEntry{}, err
		}
		slice.Keys = append(slice.Keys, SliceKey{Frame: *k.Frame, Bounds: bounds})
	}
	return slice, nil
}
