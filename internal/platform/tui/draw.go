package tui

import (
	"math"

	"github.com/vovakirdan/tui-sprites/internal/anim"
	"github.com/vovakirdan/tui-sprites/internal/core"
)

// cellAspect is how many columns one sprite pixel takes so that a square
// sprite looks square in a terminal.
const cellAspect = 2

// fitCel returns the largest screen rectangle with the cel's aspect ratio
// that fits area, centered, and the pixel-to-row scale used.
func fitCel(cel, area core.Size) (core.Rect, float64) {
	if cel.W <= 0 || cel.H <= 0 || area.W <= 0 || area.H <= 0 {
		return core.Rect{}, 0
	}
	scale := math.Min(
		float64(area.W)/float64(cel.W*cellAspect),
		float64(area.H)/float64(cel.H),
	)
	w := core.Clamp(int(math.Round(float64(cel.W*cellAspect)*scale)), 1, area.W)
	h := core.Clamp(int(math.Round(float64(cel.H)*scale)), 1, area.H)
	return core.NewRect((area.W-w)/2, (area.H-h)/2, w, h), scale
}

// project maps a cel-local rectangle onto the screen rectangle box.
func project(r core.Rect, box core.Rect, scale float64) core.Rect {
	x := box.X + int(float64(r.X*cellAspect)*scale)
	y := box.Y + int(float64(r.Y)*scale)
	w := core.Max(int(math.Round(float64(r.W*cellAspect)*scale)), 1)
	h := core.Max(int(math.Round(float64(r.H)*scale)), 1)
	return core.NewRect(x, y, w, h)
}

// drawCel clears s and draws the outline of the cel with the slices that
// overlap it.
func drawCel(s *core.Screen, a *anim.Animation, cel anim.Cel) {
	s.Clear()
	if a == nil {
		return
	}
	box, scale := fitCel(a.Size(), core.Size{W: s.Width(), H: s.Height()})
	if box.Empty() {
		return
	}
	s.DrawBox(box, core.ColorCyan)

	local := core.NewRect(0, 0, a.Width(), a.Height())
	for i, r := range cel.Slices {
		// Slices lying wholly outside the cel have nothing to show.
		if !r.Intersects(local) {
			continue
		}
		c := core.SliceColors[i%len(core.SliceColors)]
		s.DrawBox(project(r, box, scale), c)
	}

	label := cel.Bounds.String()
	if len(label) < box.W-2 && box.H > 2 {
		s.DrawTextColored(box.X+(box.W-len(label))/2, box.Bottom()-2, label, core.ColorGray)
	}
}
