package shade

import (
	"image"
	"image/color"
	"math"
)

// RasterizeDisc paints the visible hemisphere of a shaded sphere into dst.
// The view direction is +z; spin rotates the surface around the vertical axis.
// Pixels outside the disc are cleared to transparent.
func RasterizeDisc(dst *image.RGBA, p Planet, t, spin float64) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		ny := 1 - (float64(y-b.Min.Y)+0.5)/h*2
		for x := b.Min.X; x < b.Max.X; x++ {
			nx := (float64(x-b.Min.X)+0.5)/w*2 - 1
			r2 := nx*nx + ny*ny
			if r2 > 1 {
				dst.SetRGBA(x, y, color.RGBA{})
				continue
			}
			nz := math.Sqrt(1 - r2)

			lon := math.Atan2(nx, nz) + spin
			lat := math.Asin(ny)
			u := fract(lon / (2 * math.Pi))
			v := lat/math.Pi + 0.5

			c := p.Color(u, v, t, nz)
			r, g, bl := c.RGB255()
			dst.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
}
