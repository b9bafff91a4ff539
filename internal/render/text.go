package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	glyphWidth  = 7  // basicfont.Face7x13 advance
	glyphHeight = 13 // basicfont.Face7x13 height
	firstGlyph  = ' '
	lastGlyph   = '~'
)

// Text renders HUD strings from a cached ASCII glyph atlas. Glyphs are
// rasterized once at startup with basicfont.Face7x13 and tinted per draw
// call via the color scale.
type Text struct {
	glyphs [lastGlyph - firstGlyph + 1]*ebiten.Image
}

// NewText rasterizes the printable ASCII range into the glyph cache.
func NewText() *Text {
	t := &Text{}
	face := basicfont.Face7x13

	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		img := image.NewNRGBA(image.Rect(0, 0, glyphWidth, glyphHeight))
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(0, glyphHeight-2), // baseline near the cell bottom
		}
		d.DrawString(string(r))
		t.glyphs[r-firstGlyph] = ebiten.NewImageFromImage(img)
	}
	return t
}

// Draw writes s at pixel position (x, y) with the given scale and color.
// Runes outside the cached range render as '?'.
func (t *Text) Draw(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	offset := 0.0
	for _, r := range s {
		if r < firstGlyph || r > lastGlyph {
			r = '?'
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+offset, y)
		op.ColorScale.ScaleWithColor(clr)
		dst.DrawImage(t.glyphs[r-firstGlyph], &op)
		offset += glyphWidth * scale
	}
}

// Width returns the rendered width of s at the given scale.
func (t *Text) Width(s string, scale float64) float64 {
	return float64(len(s)) * glyphWidth * scale
}

// LineHeight returns the rendered line height at the given scale.
func (t *Text) LineHeight(scale float64) float64 {
	return glyphHeight * scale
}
