// Package anim defines validated animations and the cursor that plays them.
//
// An Animation is immutable once built and may be shared by any number of
// cursors without synchronization. A Cursor is owned by a single animated
// instance and is advanced once per simulation tick.
package anim

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-sprites/internal/core"
)

// ErrInvalidAnimation is wrapped by every error returned from New.
var ErrInvalidAnimation = errors.New("anim: invalid animation")

// Duration is a display time in milliseconds, or Infinite.
type Duration int64

// Infinite marks a cel, or a whole animation, that never finishes.
const Infinite Duration = -1

// IsInfinite reports whether d is the Infinite sentinel.
func (d Duration) IsInfinite() bool {
	return d == Infinite
}

// Milliseconds returns the finite length of d. ok is false for Infinite.
func (d Duration) Milliseconds() (ms int64, ok bool) {
	if d.IsInfinite() {
		return 0, false
	}
	return int64(d), true
}

func (d Duration) String() string {
	if d.IsInfinite() {
		return "inf"
	}
	return strconv.FormatInt(int64(d), 10) + "ms"
}

// Direction is a playback policy.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
	PingPong
)

// ParseDirection maps a descriptor direction string to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "forward":
		return Forward, true
	case "reverse":
		return Reverse, true
	case "pingpong":
		return PingPong, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case PingPong:
		return "pingpong"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Cel is one frame of an animation.
type Cel struct {
	Bounds   core.Rect   // Atlas-space rectangle with padding removed
	Duration Duration    // Positive milliseconds or Infinite
	Slices   []core.Rect // Cel-local rectangles; read-only
}

// Animation is a validated, immutable sequence of equally sized cels.
type Animation struct {
	width, height int
	cels          []Cel
	total         Duration
	direction     Direction
}

// New validates cels and builds an Animation. Every cel must be
// width x height, last a positive or infinite time, and there must be at
// least one cel.
func New(width, height int, direction Direction, cels []Cel) (*Animation, error) {
	if len(cels) == 0 {
		return nil, fmt.Errorf("%w: no cels", ErrInvalidAnimation)
	}
	if direction > PingPong {
		return nil, fmt.Errorf("%w: unknown direction %d", ErrInvalidAnimation, direction)
	}
	for i, c := range cels {
		if c.Bounds.W != width || c.Bounds.H != height {
			return nil, fmt.Errorf("%w: cel %d is %v, expected %dx%d",
				ErrInvalidAnimation, i, c.Bounds.Size(), width, height)
		}
		if c.Duration <= 0 && !c.Duration.IsInfinite() {
			return nil, fmt.Errorf("%w: cel %d has non-positive duration %d",
				ErrInvalidAnimation, i, int64(c.Duration))
		}
	}

	owned := make([]Cel, len(cels))
	copy(owned, cels)

	return &Animation{
		width:     width,
		height:    height,
		cels:      owned,
		total:     TotalDuration(owned, direction),
		direction: direction,
	}, nil
}

// TotalDuration returns the time of one full playback cycle. A ping-pong
// cycle over more than two cels plays every interior cel twice and each
// endpoint once. Any infinite cel makes the total infinite.
func TotalDuration(cels []Cel, direction Direction) Duration {
	var total int64
	for _, c := range cels {
		if c.Duration.IsInfinite() {
			return Infinite
		}
		total = saturatingAdd(total, int64(c.Duration))
	}
	if direction == PingPong && len(cels) > 2 {
		bounce := total - int64(cels[0].Duration) - int64(cels[len(cels)-1].Duration)
		total = saturatingAdd(total, bounce)
	}
	return Duration(total)
}

// Width returns the shared cel width.
func (a *Animation) Width() int { return a.width }

// Height returns the shared cel height.
func (a *Animation) Height() int { return a.height }

// Size returns the shared cel size.
func (a *Animation) Size() core.Size { return core.Size{W: a.width, H: a.height} }

// Len returns the number of cels.
func (a *Animation) Len() int { return len(a.cels) }

// Cels returns the cels in playback order. The slice must not be modified.
func (a *Animation) Cels() []Cel { return a.cels }

// Cel returns the i-th cel.
func (a *Animation) Cel(i int) (Cel, bool) {
	if i < 0 || i >= len(a.cels) {
		return Cel{}, false
	}
	return a.cels[i], true
}

// Duration returns the length of one full cycle.
func (a *Animation) Duration() Duration { return a.total }

// Direction returns the playback policy.
func (a *Animation) Direction() Direction { return a.direction }

// Animated reports whether the animation has enough cels to be played by a
// Cursor.
func (a *Animation) Animated() bool { return len(a.cels) >= 2 }

func saturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
