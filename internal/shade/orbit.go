package shade

import "math"

// Dash describes the animated dash pattern along an orbit ring.
type Dash struct {
	Scale  float64 // dashes per unit of arc parameter
	Size   float64 // fraction of each period that is gap, 0-1
	Offset float64
}

// DashAlpha returns the opacity and brightness boost of a ring sample at arc parameter s.
// Opacity falls to 0 in the gaps; boost peaks at 1.5 in the middle of each period.
func DashAlpha(s, t float64, d Dash) (alpha, boost float64) {
	pattern := fract((s + d.Offset + t*0.2) * d.Scale)
	alpha = smoothstep(d.Size, d.Size+0.05, pattern) * smoothstep(1.0, 0.95, pattern)
	glow := smoothstep(0.5, 0.0, math.Abs(pattern-0.5)) * 0.5
	return alpha, 1 + glow
}

// RingDash returns the dash settings for the ring of planet i at time t.
func RingDash(i int, t float64) Dash {
	return Dash{
		Scale:  10,
		Size:   0.5 + math.Mod(float64(i)*0.1, 0.3),
		Offset: t * (0.05 + float64(i)*0.01),
	}
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// smoothstep accepts reversed edges, yielding a falling ramp.
func smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	k := clamp01((x - edge0) / (edge1 - edge0))
	return k * k * (3 - 2*k)
}
