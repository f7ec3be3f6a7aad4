package core

import "image/color"

// Color is a terminal palette entry for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette entries available to terminal frontends.
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
)

// Palette lists every non-default palette entry.
var Palette = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
	ColorBrightRed, ColorBrightGreen, ColorBrightYellow, ColorBrightBlue,
	ColorBrightMagenta, ColorBrightCyan, ColorBrightWhite, ColorOrange, ColorGray,
}

// paletteRGBA holds the xterm reference value of each palette entry.
var paletteRGBA = map[Color]color.RGBA{
	ColorDefault:       {R: 229, G: 229, B: 229, A: 255},
	ColorRed:           {R: 205, G: 0, B: 0, A: 255},
	ColorGreen:         {R: 0, G: 205, B: 0, A: 255},
	ColorYellow:        {R: 205, G: 205, B: 0, A: 255},
	ColorBlue:          {R: 0, G: 0, B: 238, A: 255},
	ColorMagenta:       {R: 205, G: 0, B: 205, A: 255},
	ColorCyan:          {R: 0, G: 205, B: 205, A: 255},
	ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	ColorBrightRed:     {R: 255, G: 0, B: 0, A: 255},
	ColorBrightGreen:   {R: 0, G: 255, B: 0, A: 255},
	ColorBrightYellow:  {R: 255, G: 255, B: 0, A: 255},
	ColorBrightBlue:    {R: 92, G: 92, B: 255, A: 255},
	ColorBrightMagenta: {R: 255, G: 0, B: 255, A: 255},
	ColorBrightCyan:    {R: 0, G: 255, B: 255, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 135, B: 0, A: 255},
	ColorGray:          {R: 138, G: 138, B: 138, A: 255},
}

// RGBA returns the reference colour of the palette entry.
func (c Color) RGBA() color.RGBA {
	if v, ok := paletteRGBA[c]; ok {
		return v
	}
	return paletteRGBA[ColorDefault]
}
