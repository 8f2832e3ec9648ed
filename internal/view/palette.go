package view

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Text palette indices.
const (
	ColorBlack        = 0 // transparent in the overlay
	ColorBlue         = 1
	ColorGreen        = 2
	ColorCyan         = 3
	ColorRed          = 4
	ColorMagenta      = 5
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightBlue    = 9
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette is the 16-color text palette of the HUD overlay.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},
	{0, 0, 170, 255},
	{0, 170, 0, 255},
	{0, 170, 170, 255},
	{170, 0, 0, 255},
	{170, 0, 170, 255},
	{170, 85, 0, 255},
	{170, 170, 170, 255},
	{85, 85, 85, 255},
	{85, 85, 255, 255},
	{85, 255, 85, 255},
	{85, 255, 255, 255},
	{255, 85, 85, 255},
	{255, 85, 255, 255},
	{255, 255, 85, 255},
	{255, 255, 255, 255},
}

// Nearest returns the palette index closest to c, never black.
func Nearest(c colorful.Color) uint8 {
	best, bestDist := uint8(ColorWhite), 1e9
	for i := 1; i < len(Palette); i++ {
		p, _ := colorful.MakeColor(Palette[i])
		if d := c.DistanceRgb(p); d < bestDist {
			best, bestDist = uint8(i), d
		}
	}
	return best
}
