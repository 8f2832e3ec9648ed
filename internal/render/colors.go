package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	spaceColor = color.NRGBA{5, 6, 15, 255}
	starColor  = colorful.Color{R: 0.8, G: 0.85, B: 1}
	white      = colorful.Color{R: 1, G: 1, B: 1}
)

// nrgba converts a scene color with straight alpha a in 0-1.
func nrgba(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// emit brightens c toward white by its emissive strength.
func emit(c colorful.Color, emissive float64) colorful.Color {
	k := emissive * 0.3
	if k > 0.6 {
		k = 0.6
	}
	return c.BlendRgb(white, k).Clamped()
}
