package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var (
	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueGreen = color.RGBA{G: 255, A: 255}
)

func TestCanvasFillRectScales(t *testing.T) {
	// 800x600 world on an 80x30 buffer: 10 x 20 world units per cell
	s := core.NewScreen(80, 30)
	c := NewCanvas(s, 800, 600)

	c.FillRect(core.NewRect(100, 100, 40, 30), opaqueGreen)

	for y, limit := 0, s.Height(); y < limit; y++ {
		for x, end := 0, s.Width(); x < end; x++ {
			inside := x >= 10 && x < 14 && y >= 5 && y < 7
			got := s.Get(x, y)
			if inside && got != GlyphSolid {
				t.Errorf("cell (%d,%d) = %q, expected %q", x, y, got, GlyphSolid)
			}
			if !inside && got != ' ' {
				t.Errorf("cell (%d,%d) = %q, expected blank", x, y, got)
			}
		}
	}
}

func TestCanvasTinyBoxCoversOneCell(t *testing.T) {
	s := core.NewScreen(80, 30)
	c := NewCanvas(s, 800, 600)

	c.FillRect(core.NewRect(401, 301, 4, 5), opaqueRed)

	if got := s.Get(40, 15); got != GlyphSolid {
		t.Errorf("cell (40,15) = %q, expected %q", got, GlyphSolid)
	}
	if strings.Count(s.String(), string(GlyphSolid)) != 1 {
		t.Errorf("tiny box covered more than one cell:\n%s", s.String())
	}
}

func TestCanvasClipsOffscreen(t *testing.T) {
	s := core.NewScreen(10, 10)
	c := NewCanvas(s, 100, 100)

	c.FillRect(core.NewRect(-50, 95, 40, 50), opaqueRed)
	c.FillRect(core.NewRect(200, 200, 10, 10), opaqueRed)

	if strings.ContainsRune(s.String(), GlyphSolid) {
		t.Errorf("offscreen boxes should be clipped:\n%s", s.String())
	}
}

func TestShadeGlyph(t *testing.T) {
	tests := []struct {
		alpha uint8
		want  rune
		draw  bool
	}{
		{255, GlyphSolid, true},
		{192, GlyphSolid, true},
		{191, GlyphDense, true},
		{128, GlyphDense, true},
		{100, GlyphMedium, true},
		{10, GlyphLight, true},
		{0, 0, false},
	}
	for _, tc := range tests {
		got, ok := shadeGlyph(tc.alpha)
		if got != tc.want || ok != tc.draw {
			t.Errorf("shadeGlyph(%d) = %q, %v, expected %q, %v", tc.alpha, got, ok, tc.want, tc.draw)
		}
	}
}

func TestCanvasNearest(t *testing.T) {
	c := NewCanvas(core.NewScreen(1, 1), 1, 1)

	tests := []struct {
		in   color.RGBA
		want core.Color
	}{
		{color.RGBA{R: 255, A: 255}, core.ColorBrightRed},
		{color.RGBA{G: 255, A: 255}, core.ColorBrightGreen},
		{color.RGBA{G: 255, B: 255, A: 255}, core.ColorBrightCyan},
		{color.RGBA{R: 255, G: 255, B: 255, A: 255}, core.ColorBrightWhite},
		// Premultiplied half-transparent cyan keeps its hue
		{color.RGBA{G: 128, B: 128, A: 128}, core.ColorBrightCyan},
		{color.RGBA{}, core.ColorDefault},
	}
	for _, tc := range tests {
		if got := c.Nearest(tc.in); got != tc.want {
			t.Errorf("Nearest(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestCanvasTextCentring(t *testing.T) {
	s := core.NewScreen(80, 30)
	c := NewCanvas(s, 800, 600)

	text := "GAME OVER"
	if got := c.MeasureText(text); got != 90 {
		t.Errorf("MeasureText() = %d, expected 90", got)
	}

	x := (800 - c.MeasureText(text)) / 2
	c.DrawText(x, 300, text, opaqueRed)
	if row := s.Row(15); !strings.Contains(row, text) {
		t.Errorf("row 15 = %q, expected it to contain %q", row, text)
	}
	if cell := s.GetCell(35, 15); cell.Rune != 'G' || cell.Color != core.ColorBrightRed {
		t.Errorf("cell (35,15) = %+v, expected red 'G'", cell)
	}
}

func TestCanvasClearAndPresent(t *testing.T) {
	s := core.NewScreen(10, 5)
	c := NewCanvas(s, 10, 5)
	c.FillRect(core.NewRect(0, 0, 10, 5), opaqueRed)

	c.Clear(color.RGBA{})
	c.Present()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("Clear() left content:\n%s", s.String())
	}
	if c.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", c.Frames())
	}
}
