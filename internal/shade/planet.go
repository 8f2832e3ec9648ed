// Package shade holds the procedural surface and orbit shading used for planet sprites.
// Everything here is pure: the same inputs always produce the same color.
package shade

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ojrac/opensimplex-go"
)

// MinNoiseScale replaces zero, negative or NaN noise scales.
const MinNoiseScale = 1e-3

// Drift rates of the noise octaves, in uv units per second.
const (
	octave1DriftU = 0.1
	octave2DriftV = 0.05
	detailDriftU  = 0.2
	detailDriftV  = 0.1
)

// Planet shades a sphere surface. Build it with NewPlanet.
type Planet struct {
	Base          colorful.Color
	Glow          colorful.Color // rim color, complementary to Base
	NoiseScale    float64
	GlowIntensity float64 // 0-1 weight of the rim term

	noise opensimplex.Noise
}

// NewPlanet builds a shader for base with its complementary rim glow.
// Degenerate parameters are clamped.
func NewPlanet(base colorful.Color, noiseScale, glowIntensity float64, seed int64) Planet {
	if math.IsNaN(noiseScale) || noiseScale <= 0 {
		noiseScale = MinNoiseScale
	}
	if math.IsNaN(glowIntensity) {
		glowIntensity = 0
	}
	glowIntensity = clamp01(glowIntensity)

	return Planet{
		Base:          base,
		Glow:          Complement(base),
		NoiseScale:    noiseScale,
		GlowIntensity: glowIntensity,
		noise:         opensimplex.New(seed),
	}
}

// Complement rotates the hue by 180 degrees and floors saturation at 0.5 and lightness at 0.7.
func Complement(c colorful.Color) colorful.Color {
	h, s, l := c.Hsl()
	return colorful.Hsl(math.Mod(h+180, 360), math.Max(0.5, s), math.Max(0.7, l)).Clamped()
}

// Color returns the surface color at uv for time t.
// facing is dot(viewDir, normal); 1 faces the viewer, 0 is the silhouette.
func (p Planet) Color(u, v, t, facing float64) colorful.Color {
	scale := p.NoiseScale
	if math.IsNaN(scale) || scale <= 0 {
		scale = MinNoiseScale
	}

	n1 := p.sample(u*scale+t*octave1DriftU, v*scale)
	n2 := p.sample(u*scale*2, v*scale*2+t*octave2DriftV)
	combined := (n1*0.5+n2*0.5)*0.5 + 0.5

	texture := scaled(p.Base, 0.7).BlendRgb(p.Base, clamp01(combined))

	detail := p.sample(u*scale*4+t*detailDriftU, v*scale*4+t*detailDriftV)
	detail = (detail*0.5 + 0.5) * 0.3
	texture = texture.BlendRgb(scaled(p.Base, 1.2), clamp01(detail))

	rim := math.Pow(1-clamp01(facing), 3)
	return texture.BlendRgb(p.Glow, rim*p.GlowIntensity).Clamped()
}

func (p Planet) sample(x, y float64) float64 {
	if p.noise == nil {
		return 0
	}
	return p.noise.Eval2(x, y)
}

func scaled(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
