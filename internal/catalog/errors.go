package catalog

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sprites/internal/core"
	"github.com/vovakirdan/tui-sprites/internal/vocab"
)

// Error is implemented by every failure the builder reports. Callers match
// concrete types with errors.As.
type Error interface {
	error
	Code() string
}

// UnknownIdentifierError reports a frame tag whose name is not in the
// vocabulary.
type UnknownIdentifierError struct {
	Tag string
}

func (e *UnknownIdentifierError) Code() string { return "UNKNOWN_IDENTIFIER" }
func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("[%s] tag %q is not a known animation identifier", e.Code(), e.Tag)
}

// DuplicateAnimationError reports two tags that resolve to the same
// identifier.
type DuplicateAnimationError struct {
	Tag string
	ID  vocab.ID
}

func (e *DuplicateAnimationError) Code() string { return "DUPLICATE_ANIMATION" }
func (e *DuplicateAnimationError) Error() string {
	return fmt.Sprintf("[%s] tag %q (id %d) is defined more than once", e.Code(), e.Tag, e.ID)
}

// MissingFrameError reports a frame index of a tag with no frame table entry.
type MissingFrameError struct {
	Tag   string
	Index int
	Key   string
}

func (e *MissingFrameError) Code() string { return "MISSING_FRAME" }
func (e *MissingFrameError) Error() string {
	return fmt.Sprintf("[%s] tag %q: frame %d has no entry %q", e.Code(), e.Tag, e.Index, e.Key)
}

// EmptyAnimationError reports a tag that spans no frames.
type EmptyAnimationError struct {
	Tag      string
	From, To int
}

func (e *EmptyAnimationError) Code() string { return "EMPTY_ANIMATION" }
func (e *EmptyAnimationError) Error() string {
	return fmt.Sprintf("[%s] tag %q: range %d..%d has no frames", e.Code(), e.Tag, e.From, e.To)
}

// SizeMismatchError reports a frame whose source size differs from the
// tag's first frame.
type SizeMismatchError struct {
	Tag      string
	Index    int
	Expected core.Size
	Got      core.Size
}

func (e *SizeMismatchError) Code() string { return "SIZE_MISMATCH" }
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("[%s] tag %q: frame %d is %v, expected %v", e.Code(), e.Tag, e.Index, e.Got, e.Expected)
}

// InvalidPaddingError reports a frame whose padding is odd or negative on
// either axis.
type InvalidPaddingError struct {
	Tag     string
	Index   int
	Padding core.Size
}

func (e *InvalidPaddingError) Code() string { return "INVALID_PADDING" }
func (e *InvalidPaddingError) Error() string {
	return fmt.Sprintf("[%s] tag %q: frame %d padding %v must be even and non-negative",
		e.Code(), e.Tag, e.Index, e.Padding)
}

// ZeroDurationError reports a frame with a zero duration.
type ZeroDurationError struct {
	Tag   string
	Index int
}

func (e *ZeroDurationError) Code() string { return "ZERO_DURATION" }
func (e *ZeroDurationError) Error() string {
	return fmt.Sprintf("[%s] tag %q: frame %d has zero duration", e.Code(), e.Tag, e.Index)
}

// ZeroTotalDurationError reports an animation whose cycle takes no time.
type ZeroTotalDurationError struct {
	Tag string
}

func (e *ZeroTotalDurationError) Code() string { return "ZERO_TOTAL_DURATION" }
func (e *ZeroTotalDurationError) Error() string {
	return fmt.Sprintf("[%s] tag %q: total duration is zero", e.Code(), e.Tag)
}

// MisplacedInfiniteDurationError reports a finite frame that follows an
// infinite one. Infinite frames may only form the trailing run of a tag.
type MisplacedInfiniteDurationError struct {
	Tag   string
	Index int // First finite frame after an infinite one
}

func (e *MisplacedInfiniteDurationError) Code() string { return "MISPLACED_INFINITE_DURATION" }
func (e *MisplacedInfiniteDurationError) Error() string {
	return fmt.Sprintf("[%s] tag %q: frame %d is finite but follows an infinite frame",
		e.Code(), e.Tag, e.Index)
}

// InvalidDirectionError reports an unsupported direction string.
type InvalidDirectionError struct {
	Tag       string
	Direction string
}

func (e *InvalidDirectionError) Code() string { return "INVALID_DIRECTION" }
func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("[%s] tag %q: direction %q is not forward, reverse or pingpong",
		e.Code(), e.Tag, e.Direction)
}

// MissingSliceKeyError reports a slice with no key at or before a frame's
// position in its tag.
type MissingSliceKeyError struct {
	Tag      string
	Slice    int // Position among the slices named like the tag
	Position int // Frame position within the tag
}

func (e *MissingSliceKeyError) Code() string { return "MISSING_SLICE_KEY" }
func (e *MissingSliceKeyError) Error() string {
	return fmt.Sprintf("[%s] tag %q: slice %d has no key at or before position %d",
		e.Code(), e.Tag, e.Slice, e.Position)
}

// IncompleteCatalogError reports vocabulary identifiers with no animation
// when completeness is required.
type IncompleteCatalogError struct {
	Missing []string
}

func (e *IncompleteCatalogError) Code() string { return "INCOMPLETE_CATALOG" }
func (e *IncompleteCatalogError) Error() string {
	const shown = 5
	names := e.Missing
	suffix := ""
	if len(names) > shown {
		suffix = fmt.Sprintf(" and %d more", len(names)-shown)
		names = names[:shown]
	}
	return fmt.Sprintf("[%s] %d identifiers have no animation: %s%s",
		e.Code(), len(e.Missing), strings.Join(names, ", "), suffix)
}
