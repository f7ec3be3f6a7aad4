package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// textScale enlarges the 7x13 bitmap font to suit an 800x600 playfield.
const textScale = 2

// Canvas is a core.Renderer drawing onto an ebiten image in world units.
// The target is swapped in by Draw every frame.
type Canvas struct {
	dst    *ebiten.Image
	face   text.Face
	frames int
}

// NewCanvas creates a canvas using the basic bitmap font.
func NewCanvas() *Canvas {
	return &Canvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetTarget selects the image the next frame is drawn on.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Clear fills the target with bg.
func (c *Canvas) Clear(bg color.RGBA) {
	c.dst.Fill(bg)
}

// FillRect draws a filled rectangle, blending by the colour's alpha.
func (c *Canvas) FillRect(r core.Rect, col color.RGBA) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, col color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.dst, s, c.face, op)
}

// MeasureText returns the drawn width of s.
func (c *Canvas) MeasureText(s string) int {
	return int(math.Ceil(text.Advance(s, c.face) * textScale))
}

// Present finishes the frame. ebiten shows the image once Draw returns.
func (c *Canvas) Present() {
	c.frames++
}

// Frames returns the number of presented frames.
func (c *Canvas) Frames() int {
	return c.frames
}
