package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cosmicfolio/cosmicfolio/internal/view"
)

// GridRenderer draws the text overlay on top of the scene.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for cell backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// DrawBackdrops darkens cell rectangles so panel text stays readable over the scene.
func (r *GridRenderer) DrawBackdrops(screen *ebiten.Image, rects []image.Rectangle) {
	for _, rc := range rects {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(rc.Dx()*r.CellW), float64(rc.Dy()*r.CellH))
		op.GeoM.Translate(float64(rc.Min.X*r.CellW), float64(rc.Min.Y*r.CellH))
		op.ColorScale.ScaleWithColor(color.NRGBA{0, 0, 10, 200})
		screen.DrawImage(r.bgPixel, &op)
	}
}

// Draw renders the overlay. Black backgrounds are left transparent.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *view.CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != view.ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(view.Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(view.Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}
