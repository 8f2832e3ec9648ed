// Package view turns the scene into backend-neutral screen data: projected
// positions, picked bodies and text cells.
package view

import (
	"math"

	"github.com/cosmicfolio/cosmicfolio/internal/game"
)

// Camera distance limits and defaults.
const (
	MinDistance = 20.0
	MaxDistance = 200.0

	defaultDistance = 110.0
	defaultPitch    = 0.38 // looking from about [0, 20, 50]
	defaultFOV      = 60 * math.Pi / 180
	maxPitch        = 1.45
	nearPlane       = 0.1

	// MinPickRadius keeps tiny stars clickable.
	MinPickRadius = 6.0
)

// Camera orbits a target point. Yaw is measured from +X toward +Z.
type Camera struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	Target   game.Vec3
	FOV      float64 // vertical, radians

	Width, Height float64 // viewport in pixels
}

// NewCamera looks at the origin from +Z, slightly above the orbital plane.
func NewCamera(width, height int) Camera {
	return Camera{
		Yaw:      math.Pi / 2,
		Pitch:    defaultPitch,
		Distance: defaultDistance,
		FOV:      defaultFOV,
		Width:    float64(width),
		Height:   float64(height),
	}
}

// Eye returns the camera position.
func (c *Camera) Eye() game.Vec3 {
	cp := math.Cos(c.Pitch)
	return c.Target.Add(game.Vec3{
		X: c.Distance * cp * math.Cos(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cp * math.Sin(c.Yaw),
	})
}

func (c *Camera) basis() (forward, right, up game.Vec3) {
	forward = c.Target.Sub(c.Eye()).Normalize()
	right = forward.Cross(game.Vec3{Y: 1}).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

func (c *Camera) focal() float64 {
	return (c.Height / 2) / math.Tan(c.FOV/2)
}

// Project maps a scene point to screen pixels. ok is false behind the camera.
// depth is the distance along the view axis.
func (c *Camera) Project(p game.Vec3) (x, y, depth float64, ok bool) {
	forward, right, up := c.basis()
	d := p.Sub(c.Eye())
	depth = d.Dot(forward)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}
	f := c.focal() / depth
	x = c.Width/2 + d.Dot(right)*f
	y = c.Height/2 - d.Dot(up)*f
	return x, y, depth, true
}

// ProjectRadius returns the on-screen radius of a sphere of radius r at depth.
func (c *Camera) ProjectRadius(r, depth float64) float64 {
	if depth <= nearPlane {
		return 0
	}
	return r * c.focal() / depth
}

// Rotate turns the camera by screen-space drag deltas in pixels.
func (c *Camera) Rotate(dx, dy float64) {
	c.Yaw += dx * 0.005
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dy*0.005))
}

// Zoom moves toward (positive steps) or away from the target.
func (c *Camera) Zoom(steps float64) {
	c.Distance = clampDistance(c.Distance * math.Pow(0.9, steps))
}

// Pan shifts the target in the orbital plane relative to where the camera faces.
func (c *Camera) Pan(strafe, advance float64) {
	forward, right, _ := c.basis()
	flat := game.Vec3{X: forward.X, Z: forward.Z}.Normalize()
	c.Target = c.Target.Add(right.Scale(strafe)).Add(flat.Scale(advance))
}

func clampDistance(d float64) float64 {
	return math.Max(MinDistance, math.Min(MaxDistance, d))
}

// Pick returns the primitive under the screen point, nearest to the camera.
func (c *Camera) Pick(prims []game.Primitive, sx, sy float64) (game.Primitive, bool) {
	var (
		best      game.Primitive
		bestDepth = math.Inf(1)
		found     bool
	)
	for _, p := range prims {
		x, y, depth, ok := c.Project(p.Position)
		if !ok {
			continue
		}
		r := math.Max(c.ProjectRadius(p.Radius, depth), MinPickRadius)
		if math.Hypot(sx-x, sy-y) > r {
			continue
		}
		if depth < bestDepth {
			best, bestDepth, found = p, depth, true
		}
	}
	return best, found
}
