package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sprites/internal/core"
)

// Wire structures mirror the descriptor layout. Required members are
// pointers so a missing member can be told apart from a zero value.

type wireDocument struct {
	Frames *wireFrames `json:"frames" yaml:"frames"`
	Meta   *wireMeta   `json:"meta" yaml:"meta"`
}

type wireMeta struct {
	App       string          `json:"app" yaml:"app"`
	Version   string          `json:"version" yaml:"version"`
	Image     string          `json:"image" yaml:"image"`
	Format    string          `json:"format" yaml:"format"`
	Size      *wireSize       `json:"size" yaml:"size"`
	Scale     scaleValue      `json:"scale" yaml:"scale"`
	FrameTags *[]wireFrameTag `json:"frameTags" yaml:"frameTags"`
	Slices    []wireSlice     `json:"slices" yaml:"slices"`
}

type wireSize struct {
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

type wireRect struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

type wireFrame struct {
	Frame            *wireRect `json:"frame" yaml:"frame"`
	Rotated          bool      `json:"rotated" yaml:"rotated"`
	Trimmed          bool      `json:"trimmed" yaml:"trimmed"`
	SpriteSourceSize *wireRect `json:"spriteSourceSize" yaml:"spriteSourceSize"`
	SourceSize       *wireSize `json:"sourceSize" yaml:"sourceSize"`
	Duration         *uint16   `json:"duration" yaml:"duration"`
}

// wireArrayFrame is a frame in the "array" export, which carries its key.
type wireArrayFrame struct {
	Filename  *string `json:"filename" yaml:"filename"`
	wireFrame `yaml:",inline"`
}

type wireFrameTag struct {
	Name      *string `json:"name" yaml:"name"`
	From      *int    `json:"from" yaml:"from"`
	To        *int    `json:"to" yaml:"to"`
	Direction *string `json:"direction" yaml:"direction"`
}

type wireSlice struct {
	Name  *string        `json:"name" yaml:"name"`
	Color string         `json:"color" yaml:"color"`
	Keys  []wireSliceKey `json:"keys" yaml:"keys"`
}

type wireSliceKey struct {
	Frame  *int      `json:"frame" yaml:"frame"`
	Bounds *wireRect `json:"bounds" yaml:"bounds"`
}

// wireFrames accepts both the keyed ("hash") and the list ("array") layout
// of the frame table.
type wireFrames map[string]wireFrame

func (f *wireFrames) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []wireArrayFrame
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return prefixSchemaError("frames", asSchemaError(err))
		}
		return f.fromList(list)
	}

	var m map[string]wireFrame
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return prefixSchemaError("frames", asSchemaError(err))
	}
	*f = m
	return nil
}

func (f *wireFrames) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []wireArrayFrame
		if err := value.Decode(&list); err != nil {
			return prefixSchemaError("frames", asSchemaError(err))
		}
		return f.fromList(list)
	case yaml.MappingNode:
		var m map[string]wireFrame
		if err := value.Decode(&m); err != nil {
			return prefixSchemaError("frames", asSchemaError(err))
		}
		*f = m
		return nil
	default:
		return schemaErrorf("frames", "expected a mapping or a list, got %s", nodeKind(value))
	}
}

func (f *wireFrames) fromList(list []wireArrayFrame) error {
	m := make(map[string]wireFrame, len(list))
	for i, entry := range list {
		path := fmt.Sprintf("frames[%d].filename", i)
		if entry.Filename == nil {
			return schemaErrorf(path, "missing")
		}
		if _, dup := m[*entry.Filename]; dup {
			return schemaErrorf(path, "duplicate frame %q", *entry.Filename)
		}
		m[*entry.Filename] = entry.wireFrame
	}
	*f = m
	return nil
}

// scaleValue accepts a number or a numeric string; Aseprite writes "1".
type scaleValue float64

func (s *scaleValue) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = scaleValue(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return schemaErrorf("meta.scale", "expected a number or numeric string")
	}
	return s.parse(str)
}

func (s *scaleValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return schemaErrorf("meta.scale", "expected a number or numeric string")
	}
	return s.parse(value.Value)
}

func (s *scaleValue) parse(str string) error {
	if str == "" {
		*s = 0
		return nil
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return schemaErrorf("meta.scale", "not a number: %q", str)
	}
	*s = scaleValue(f)
	return nil
}

func (r *wireRect) rect(path string) (core.Rect, error) {
	if r == nil {
		return core.Rect{}, schemaErrorf(path, "missing")
	}
	if r.W < 0 || r.H < 0 {
		return core.Rect{}, schemaErrorf(path, "negative size %dx%d", r.W, r.H)
	}
	return core.NewRect(r.X, r.Y, r.W, r.H), nil
}

func (s *wireSize) size(path string) (core.Size, error) {
	if s == nil {
		return core.Size{}, schemaErrorf(path, "missing")
	}
	if s.W < 0 || s.H < 0 {
		return core.Size{}, schemaErrorf(path, "negative size %dx%d", s.W, s.H)
	}
	return core.Size{W: s.W, H: s.H}, nil
}

func prefixSchemaError(prefix string, err error) error {
	se, ok := err.(*SchemaError)
	if !ok {
		return err
	}
	switch {
	case se.Path == "":
		se.Path = prefix
	case se.Path[0] == '[':
		se.Path = prefix + se.Path
	default:
		se.Path = prefix + "." + se.Path
	}
	return se
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.SequenceNode:
		return "a list"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.AliasNode:
		return "an alias"
	default:
		return "nothing"
	}
}
