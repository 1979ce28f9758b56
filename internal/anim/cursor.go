package anim

// Cursor tracks playback position within one Animation.
//
// period is an unbounded oscillation counter that is only normalized when
// read, so each step stays a plain increment, decrement or wrap. exposure is
// the time already spent on the current cel.
type Cursor struct {
	anim     *Animation
	period   int32
	exposure int64
}

// NewCursor creates a cursor at period 0. It returns false when a is nil or
// has fewer than two cels; such animations are static and need no cursor.
func NewCursor(a *Animation) (*Cursor, bool) {
	if a == nil || !a.Animated() {
		return nil, false
	}
	return &Cursor{anim: a}, true
}

// Animation returns the animation being played.
func (c *Cursor) Animation() *Animation { return c.anim }

// Period returns the raw oscillation counter.
func (c *Cursor) Period() int32 { return c.period }

// Exposure returns the milliseconds spent on the current cel.
func (c *Cursor) Exposure() int64 { return c.exposure }

// Index returns the current cel index, |period rem n|, always in [0, n).
func (c *Cursor) Index() int {
	r := int64(c.period) % int64(len(c.anim.cels))
	if r < 0 {
		r = -r
	}
	return int(r)
}

// Cel returns the currently visible cel.
func (c *Cursor) Cel() Cel {
	return c.anim.cels[c.Index()]
}

// Holding reports whether the current cel has infinite duration, in which
// case Advance never moves past it.
func (c *Cursor) Holding() bool {
	return c.Cel().Duration.IsInfinite()
}

// Reset rewinds to period 0 with no exposure.
func (c *Cursor) Reset() {
	c.period = 0
	c.exposure = 0
}

// Set forces the period and clears exposure.
func (c *Cursor) Set(period int32) {
	c.period = period
	c.exposure = 0
}

// Retarget binds the cursor to another animation and resets it. It returns
// false and leaves the cursor untouched when a cannot be animated.
func (c *Cursor) Retarget(a *Animation) bool {
	if a == nil || !a.Animated() {
		return false
	}
	c.anim = a
	c.Reset()
	return true
}

// Advance adds elapsed milliseconds and steps through every cel whose
// duration has been fully consumed. Negative elapsed time is ignored.
func (c *Cursor) Advance(elapsed int64) {
	if elapsed > 0 {
		c.exposure = saturatingAdd(c.exposure, elapsed)
	}

	// A full cycle takes exactly the total duration in every direction, so
	// whole cycles can be dropped without stepping through them.
	if total, ok := c.anim.total.Milliseconds(); ok {
		c.exposure %= total
	}

	for {
		d := c.Cel().Duration
		if d.IsInfinite() || c.exposure < int64(d) {
			return
		}
		c.exposure -= int64(d)
		c.step()
	}
}

// Step moves to the next cel in playback order regardless of exposure,
// which is cleared. Infinite cels are stepped past as well.
func (c *Cursor) Step() {
	c.step()
	c.exposure = 0
}

// StepBack undoes one Step and clears exposure.
func (c *Cursor) StepBack() {
	n := int32(len(c.anim.cels))
	switch c.anim.direction {
	case Forward:
		c.period--
	case Reverse:
		c.period++
	case PingPong:
		c.period = wrap(c.period+1, 2-n, n)
	}
	c.exposure = 0
}

func (c *Cursor) step() {
	n := int32(len(c.anim.cels))
	switch c.anim.direction {
	case Forward:
		c.period++
	case Reverse:
		c.period--
	case PingPong:
		c.period = wrap(c.period-1, 2-n, n)
	}
}

// wrap maps v cyclically into [lo, hi).
func wrap(v, lo, hi int32) int32 {
	return int32(int64(lo) + nonNegativeMod(int64(v)-int64(lo), int64(hi)-int64(lo)))
}

func nonNegativeMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
