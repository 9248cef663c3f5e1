package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Terminal renderers use its ANSI 256-color code, pixel renderers its RGBA.
type Color uint8

// Palette shared by the runner renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray

	numColors
)

type swatch struct {
	ansi string
	rgba color.RGBA
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// The RGBA values follow the xterm defaults of each ANSI code.
var palette = [numColors]swatch{
	ColorDefault:       {"", rgb(229, 229, 229)},
	ColorRed:           {"1", rgb(205, 0, 0)},
	ColorGreen:         {"2", rgb(0, 205, 0)},
	ColorYellow:        {"3", rgb(205, 205, 0)},
	ColorBlue:          {"4", rgb(0, 0, 238)},
	ColorMagenta:       {"5", rgb(205, 0, 205)},
	ColorCyan:          {"6", rgb(0, 205, 205)},
	ColorWhite:         {"7", rgb(229, 229, 229)},
	ColorBrightRed:     {"9", rgb(255, 0, 0)},
	ColorBrightGreen:   {"10", rgb(0, 255, 0)},
	ColorBrightYellow:  {"11", rgb(255, 255, 0)},
	ColorBrightBlue:    {"12", rgb(92, 92, 255)},
	ColorBrightMagenta: {"13", rgb(255, 0, 255)},
	ColorBrightCyan:    {"14", rgb(0, 255, 255)},
	ColorBrightWhite:   {"15", rgb(255, 255, 255)},
	ColorOrange:        {"208", rgb(255, 135, 0)},
	ColorGray:          {"245", rgb(138, 138, 138)},
	ColorDarkGray:      {"238", rgb(68, 68, 68)},
}

// ANSI returns the 256-color code of c, or "" for the terminal's default.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return palette[c].ansi
}

// RGBA returns c as an opaque pixel color. Unknown colors map to the default.
func (c Color) RGBA() color.RGBA {
	if c >= numColors {
		c = ColorDefault
	}
	return palette[c].rgba
}

// Colors returns every palette entry in order.
func Colors() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
