package core

import "image/color"

// Renderer is the drawing surface a game issues its per-tick requests to.
// Coordinates are world units; the implementation decides how pixels or
// cells are produced.
type Renderer interface {
	// Clear fills the whole surface with the background colour.
	Clear(bg color.RGBA)

	// FillRect draws a filled rectangle. The alpha channel is honoured
	// where the surface supports it.
	FillRect(r Rect, c color.RGBA)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(x, y int, text string, c color.RGBA)

	// MeasureText returns the width of text in world units.
	MeasureText(text string) int

	// Present finishes the frame.
	Present()
}
