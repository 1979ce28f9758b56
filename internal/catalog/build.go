package catalog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sprites/internal/anim"
	"github.com/vovakirdan/tui-sprites/internal/core"
	"github.com/vovakirdan/tui-sprites/internal/sheet"
	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

type options struct {
	requireComplete bool
	logger          *log.Logger
}

// Option configures a Builder.
type Option func(*options)

// RequireComplete makes Build fail with an IncompleteCatalogError unless
// every vocabulary identifier has an animation. By default a catalog may
// cover any subset of the vocabulary.
func RequireComplete() Option {
	return func(o *options) { o.requireComplete = true }
}

// WithLogger sets the logger used for debug output while building.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Builder accumulates animations from one or more descriptor documents into
// a single catalog. The first error is sticky: once Add or Build fails, every
// later call returns the same error.
type Builder struct {
	vocab *vocab.Vocabulary
	opts  options
	anims map[vocab.ID]*anim.Animation
	err   error
}

// NewBuilder returns an empty Builder resolving tag names through v.
func NewBuilder(v *vocab.Vocabulary, opts ...Option) *Builder {
	b := &Builder{
		vocab: v,
		anims: make(map[vocab.ID]*anim.Animation),
	}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Add builds one animation per frame tag of doc, in tag order, and stops at
// the first invalid tag.
func (b *Builder) Add(doc *sheet.Document) error {
	if b.err != nil {
		return b.err
	}
	for _, tag := range doc.Meta.FrameTags {
		id, a, err := buildAnimation(doc, tag, b.vocab)
		if err != nil {
			b.err = err
			return err
		}
		if _, dup := b.anims[id]; dup {
			b.err = &DuplicateAnimationError{Tag: tag.Name, ID: id}
			return b.err
		}
		b.anims[id] = a
		b.debug("built animation",
			"tag", tag.Name,
			"id", id,
			"cels", a.Len(),
			"size", a.Size(),
			"direction", a.Direction(),
			"duration", a.Duration(),
		)
	}
	return nil
}

// Build returns the catalog of everything added so far. The Builder may keep
// accepting documents afterwards; the returned catalog does not change.
func (b *Builder) Build() (*Catalog, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.opts.requireComplete {
		var missing []string
		for _, id := range b.vocab.IDs() {
			if _, ok := b.anims[id]; !ok {
				name, _ := b.vocab.Name(id)
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			b.err = &IncompleteCatalogError{Missing: missing}
			return nil, b.err
		}
	}
	c := newCatalog(b.vocab, b.anims)
	b.debug("catalog ready", "animations", c.Len())
	return c, nil
}

// Build builds a catalog from a single document.
func Build(doc *sheet.Document, v *vocab.Vocabulary, opts ...Option) (*Catalog, error) {
	b := NewBuilder(v, opts...)
	if err := b.Add(doc); err != nil {
		return nil, err
	}
	return b.Build()
}

func (b *Builder) debug(msg string, keyvals ...interface{}) {
	if b.opts.logger == nil {
		return
	}
	b.opts.logger.Debug(msg, keyvals...)
}

func buildAnimation(doc *sheet.Document, tag sheet.FrameTagEntry, v *vocab.Vocabulary) (vocab.ID, *anim.Animation, error) {
	id, ok := v.Lookup(tag.Name)
	if !ok {
		return 0, nil, &UnknownIdentifierError{Tag: tag.Name}
	}

	// The range comes from the document and may be far larger than the
	// frame table; every resolved frame needs its own entry.
	frames := make([]sheet.FrameEntry, 0, min(tag.Len(), len(doc.Frames)))
	for i := tag.From; i <= tag.To; i++ {
		f, ok := doc.Frame(tag.Name, i)
		if !ok {
			return 0, nil, &MissingFrameError{Tag: tag.Name, Index: i, Key: sheet.FrameKey(tag.Name, i)}
		}
		frames = append(frames, f)
		if i == tag.To {
			break // i++ would overflow when To is math.MaxInt
		}
	}
	if len(frames) == 0 {
		return 0, nil, &EmptyAnimationError{Tag: tag.Name, From: tag.From, To: tag.To}
	}

	size := frames[0].SourceSize
	for pos, f := range frames[1:] {
		if f.SourceSize != size {
			return 0, nil, &SizeMismatchError{
				Tag:      tag.Name,
				Index:    tag.From + pos + 1,
				Expected: size,
				Got:      f.SourceSize,
			}
		}
	}

	slices := doc.SlicesNamed(tag.Name)
	cels := make([]anim.Cel, len(frames))
	for pos, f := range frames {
		index := tag.From + pos

		pad := f.Frame.Size().Sub(f.SourceSize)
		if pad.W < 0 || pad.H < 0 || pad.W%2 != 0 || pad.H%2 != 0 {
			return 0, nil, &InvalidPaddingError{Tag: tag.Name, Index: index, Padding: pad}
		}

		var d anim.Duration
		switch f.Duration {
		case 0:
			return 0, nil, &ZeroDurationError{Tag: tag.Name, Index: index}
		case sheet.InfiniteDuration:
			d = anim.Infinite
		default:
			d = anim.Duration(f.Duration)
		}

		var rects []core.Rect
		if len(slices) > 0 {
			rects = make([]core.Rect, 0, len(slices))
		}
		for si, s := range slices {
			r, ok := sliceAt(s, pos)
			if !ok {
				return 0, nil, &MissingSliceKeyError{Tag: tag.Name, Slice: si, Position: pos}
			}
			rects = append(rects, r)
		}

		cels[pos] = anim.Cel{
			Bounds:   core.NewRect(f.Frame.X+pad.W/2, f.Frame.Y+pad.H/2, size.W, size.H),
			Duration: d,
			Slices:   rects,
		}
	}

	// The total depends on the direction, but an unknown direction is only
	// reported once the durations have been checked.
	dir, dirOK := anim.ParseDirection(tag.Direction)
	if !dirOK {
		dir = anim.Forward
	}
	if anim.TotalDuration(cels, dir) == 0 {
		return 0, nil, &ZeroTotalDurationError{Tag: tag.Name}
	}

	if i := misplacedInfinite(cels); i >= 0 {
		return 0, nil, &MisplacedInfiniteDurationError{Tag: tag.Name, Index: tag.From + i}
	}

	if !dirOK {
		return 0, nil, &InvalidDirectionError{Tag: tag.Name, Direction: tag.Direction}
	}

	a, err := anim.New(size.W, size.H, dir, cels)
	if err != nil {
		return 0, nil, err
	}
	return id, a, nil
}

// sliceAt returns the bounds of the key with the greatest frame offset not
// after pos. Keys need not be sorted; on equal offsets the later key wins.
func sliceAt(s sheet.SliceEntry, pos int) (core.Rect, bool) {
	best := -1
	for i, k := range s.Keys {
		if k.Frame > pos {
			continue
		}
		if best < 0 || k.Frame >= s.Keys[best].Frame {
			best = i
		}
	}
	if best < 0 {
		return core.Rect{}, false
	}
	return s.Keys[best].Bounds, true
}

// misplacedInfinite returns the position of the first finite cel that
// follows an infinite one, or -1. Infinite cels may only form a trailing run.
func misplacedInfinite(cels []anim.Cel) int {
	held := false
	for i, c := range cels {
		if c.Duration.IsInfinite() {
			held = true
			continue
		}
		if held {
			return i
		}
	}
	return -1
}
