package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for preview elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
)

// SliceColors is the palette cycled through when drawing slice rectangles.
var SliceColors = []Color{ColorRed, ColorGreen, ColorYellow, ColorMagenta, ColorBlue}
