package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/cosmicfolio/cosmicfolio/internal/view"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
	atlasRows   = 16
)

// FontAtlas holds one white 16x16 glyph per overlay byte.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas bakes the glyph atlas at startup.
// Printable ASCII and Latin-1 come from basicfont.Face7x13; the frame and
// meter glyphs are drawn by hand and take precedence.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, atlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % atlasCols) * GlyphWidth
		cy := (code / atlasCols) * GlyphHeight

		if bc, ok := boxChars[byte(code)]; ok {
			drawBoxGlyph(img, cx, cy, bc[0], bc[1], bc[2], bc[3])
			continue
		}
		if drawBlockGlyph(img, cx, cy, byte(code)) {
			continue
		}
		if (code >= 32 && code <= 126) || code >= 0xA1 {
			drawFontGlyph(img, face, cx, cy, rune(code))
		}
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % atlasCols) * GlyphWidth
		y := (code / atlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a glyph code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph centers a 7x13 basicfont glyph in its cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// boxChars maps frame glyphs to their connections: {left, right, top, bottom}.
var boxChars = map[byte][4]bool{
	view.GlyphVLine:    {false, false, true, true},
	view.GlyphTopRight: {true, false, false, true},
	view.GlyphBotLeft:  {false, true, true, false},
	view.GlyphHLine:    {true, true, false, false},
	view.GlyphBotRight: {true, false, true, false},
	view.GlyphTopLeft:  {false, true, false, true},
}

// drawBoxGlyph draws a 2 pixel wide single-line frame piece.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	w := color.NRGBA{255, 255, 255, 255}
	cx := cellX + 7
	cy := cellY + 7

	if left {
		for x := cellX; x < cx+2; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if right {
		for x := cx; x < cellX+GlyphWidth; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if top {
		for y := cellY; y < cy+2; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
	if bottom {
		for y := cy; y < cellY+GlyphHeight; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
}

// drawBlockGlyph draws the meter and bullet glyphs, reporting whether code is one of them.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) bool {
	var on func(x, y int) bool
	switch code {
	case view.GlyphShadeLight:
		on = func(x, y int) bool { return (x+y)%4 == 0 }
	case view.GlyphShadeDark:
		on = func(x, y int) bool { return (x+y)%4 != 0 }
	case view.GlyphBlock:
		on = func(x, y int) bool { return y >= 2 && y < GlyphHeight-2 }
	case view.GlyphSquare:
		on = func(x, y int) bool { return x >= 4 && x < 12 && y >= 4 && y < 12 }
	default:
		return false
	}

	w := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if on(x, y) {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
	return true
}
