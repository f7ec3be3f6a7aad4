package tui

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Shade glyphs from most to least opaque.
const (
	GlyphSolid  = '█'
	GlyphDense  = '▓'
	GlyphMedium = '▒'
	GlyphLight  = '░'
)

// Canvas is a core.Renderer that rasterizes world coordinates onto a
// terminal cell buffer. Every non-empty box covers at least one cell.
// Background colour is left to the terminal.
type Canvas struct {
	screen         *core.Screen
	worldW, worldH int
	palette        map[color.RGBA]core.Color
	frames         int
}

// NewCanvas creates a canvas mapping a worldW x worldH playfield onto screen.
func NewCanvas(screen *core.Screen, worldW, worldH int) *Canvas {
	return &Canvas{
		screen:  screen,
		worldW:  core.Max(1, worldW),
		worldH:  core.Max(1, worldH),
		palette: make(map[color.RGBA]core.Color),
	}
}

// Frames returns the number of presented frames.
func (c *Canvas) Frames() int {
	return c.frames
}

// Clear blanks every cell.
func (c *Canvas) Clear(color.RGBA) {
	c.screen.Clear()
}

// FillRect covers the cells under r with a glyph chosen by opacity.
func (c *Canvas) FillRect(r core.Rect, col color.RGBA) {
	glyph, ok := shadeGlyph(col.A)
	if !ok || r.W <= 0 || r.H <= 0 {
		return
	}

	x0, x1 := c.span(r.X, r.Right(), c.worldW, c.screen.Width())
	y0, y1 := c.span(r.Y, r.Bottom(), c.worldH, c.screen.Height())
	cell := core.Cell{Rune: glyph, Color: c.Nearest(col)}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetCell(x, y, cell)
		}
	}
}

// span converts a world interval to a half-open cell interval of at
// least one cell.
func (c *Canvas) span(from, to, world, cells int) (int, int) {
	a := from * cells / world
	b := (to*cells + world - 1) / world
	if b <= a {
		b = a + 1
	}
	return a, b
}

// DrawText writes text starting at the cell under (x, y).
func (c *Canvas) DrawText(x, y int, text string, col color.RGBA) {
	cx := x * c.screen.Width() / c.worldW
	cy := y * c.screen.Height() / c.worldH
	c.screen.DrawText(cx, cy, text, c.Nearest(col))
}

// MeasureText returns the world width of text, one cell per rune.
func (c *Canvas) MeasureText(text string) int {
	n := len([]rune(text))
	if c.screen.Width() == 0 {
		return 0
	}
	return n * c.worldW / c.screen.Width()
}

// Present finishes the frame.
func (c *Canvas) Present() {
	c.frames++
}

// shadeGlyph picks a glyph for an alpha value. Fully transparent fills
// are not drawn.
func shadeGlyph(a uint8) (rune, bool) {
	switch {
	case a == 0:
		return 0, false
	case a >= 192:
		return GlyphSolid, true
	case a >= 128:
		return GlyphDense, true
	case a >= 64:
		return GlyphMedium, true
	default:
		return GlyphLight, true
	}
}

// Nearest returns the palette entry closest to col in Lab space.
// Results are cached per colour.
func (c *Canvas) Nearest(col color.RGBA) core.Color {
	if v, ok := c.palette[col]; ok {
		return v
	}

	target, ok := colorful.MakeColor(col)
	if !ok {
		return core.ColorDefault
	}

	best, bestDist := core.ColorDefault, math.MaxFloat64
	for _, p := range core.Palette {
		pc, _ := colorful.MakeColor(p.RGBA())
		if d := target.DistanceLab(pc); d < bestDist {
			best, bestDist = p, d
		}
	}
	c.palette[col] = best
	return best
}
