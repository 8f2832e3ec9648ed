package game

import (
	"math"

	"github.com/pkg/errors"

	"github.com/cosmicfolio/cosmicfolio/internal/config"
)

// Orbit is a circular path around the vertical axis through the origin.
// A zero Radius pins the body at (0, Y, 0).
type Orbit struct {
	Radius float64
	Phase  float64 // angle at t=0, radians
	Speed  float64 // radians per second
	Y      float64 // height above the orbital plane
}

// At returns the position on the orbit at time t.
func (o Orbit) At(t float64) Vec3 {
	angle := o.Phase + t*o.Speed
	return Vec3{
		X: o.Radius * math.Cos(angle),
		Y: o.Y,
		Z: o.Radius * math.Sin(angle),
	}
}

// RingOrbits lays out n bodies evenly spaced in angle on rings of growing radius:
// radius_i = base + i*step, phase_i = i*2π/n, speed_i = speed/(i+1).
// With step > 0 the radii are strictly increasing, so no two bodies ever coincide.
func RingOrbits(n int, base, step, speed float64) []Orbit {
	orbits := make([]Orbit, n)
	for i := range orbits {
		orbits[i] = Orbit{
			Radius: base + float64(i)*step,
			Phase:  float64(i) * (2 * math.Pi / float64(n)),
			Speed:  speed / float64(i+1),
		}
	}
	return orbits
}

// OrbitThrough returns the orbit that passes through p at t=0.
func OrbitThrough(p Vec3, speed float64) Orbit {
	return Orbit{
		Radius: math.Hypot(p.X, p.Z),
		Phase:  math.Atan2(p.Z, p.X),
		Speed:  speed,
		Y:      p.Y,
	}
}

// Positions evaluates every body's orbit at time t.
// The result is indexed like bodies; the bodies themselves are not modified.
func Positions(bodies []Body, t float64) []Vec3 {
	out := make([]Vec3, len(bodies))
	for i := range bodies {
		out[i] = bodies[i].Orbit.At(t)
	}
	return out
}

// orbitEpsilon is how close two radii, heights or phases must be to count as equal.
const orbitEpsilon = 1e-9

// CheckOrbits returns an error naming the first two bodies whose paths meet.
// Bodies on the same circle meet unless they move at one speed from different phases.
func CheckOrbits(bodies []Body) error {
	for i := range bodies {
		a := bodies[i].Orbit
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j].Orbit
			if math.Abs(a.Radius-b.Radius) > orbitEpsilon || math.Abs(a.Y-b.Y) > orbitEpsilon {
				continue
			}
			if a.Radius > orbitEpsilon && a.Speed == b.Speed &&
				math.Abs(math.Remainder(a.Phase-b.Phase, 2*math.Pi)) > orbitEpsilon {
				continue
			}
			return errors.Errorf("%s and %s share an orbit and meet", bodies[i].ID, bodies[j].ID)
		}
	}
	return nil
}

// RingPoints samples a circle of the given radius in the plane at height y.
// Sampling never drops below config.MinRingSamples.
func RingPoints(radius, y float64, samples int) []Vec3 {
	if samples < config.MinRingSamples {
		samples = config.MinRingSamples
	}
	pts := make([]Vec3, samples)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / float64(samples)
		pts[i] = Vec3{X: radius * math.Cos(a), Y: y, Z: radius * math.Sin(a)}
	}
	return pts
}

// MoonOffsets places n moons on a circle of the given radius in the planet's local XY plane.
func MoonOffsets(n int, radius float64) []Vec3 {
	out := make([]Vec3, n)
	for k := range out {
		a := float64(k) * 2 * math.Pi / float64(n)
		out[k] = Vec3{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return out
}
