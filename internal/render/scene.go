// Package render draws the scene and its text overlay with Ebitengine.
package render

import (
	"image"
	"math"
	"math/rand"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cosmicfolio/cosmicfolio/internal/config"
	"github.com/cosmicfolio/cosmicfolio/internal/game"
	"github.com/cosmicfolio/cosmicfolio/internal/shade"
	"github.com/cosmicfolio/cosmicfolio/internal/view"
)

const (
	backgroundStars = 600
	skyRadius       = 800.0
	ringWidth       = 1.5
	ringAlpha       = 0.7
	edgeAlpha       = 0.6
	sunHaloScale    = 1.6
)

// planetSprite is the shaded disc of one job planet, redrawn every frame.
type planetSprite struct {
	shader shade.Planet
	pixels *image.RGBA
	image  *ebiten.Image
}

// SceneRenderer draws bodies, orbit rings and constellation lines.
type SceneRenderer struct {
	sprites map[string]*planetSprite
	sky     []game.Vec3 // unit directions of the background stars
	samples int
}

// NewSceneRenderer prepares a planet sprite per job planet.
func NewSceneRenderer(s *game.Scene, cfg config.Config) *SceneRenderer {
	size := cfg.Shader.SpriteSize
	r := &SceneRenderer{
		sprites: make(map[string]*planetSprite),
		samples: cfg.Orbit.RingSamples,
	}
	for i, b := range s.Bodies() {
		if b.Kind != game.KindJobPlanet {
			continue
		}
		r.sprites[b.ID] = &planetSprite{
			shader: shade.NewPlanet(b.Color, b.Surface.NoiseScale, b.Surface.GlowIntensity, cfg.Shader.Seed+int64(i)),
			pixels: image.NewRGBA(image.Rect(0, 0, size, size)),
			image:  ebiten.NewImage(size, size),
		}
	}

	rng := rand.New(rand.NewSource(cfg.Shader.Seed))
	r.sky = make([]game.Vec3, backgroundStars)
	for i := range r.sky {
		// uniform on the sphere
		z := rng.Float64()*2 - 1
		a := rng.Float64() * 2 * math.Pi
		k := math.Sqrt(1 - z*z)
		r.sky[i] = game.Vec3{X: k * math.Cos(a), Y: z, Z: k * math.Sin(a)}
	}
	return r
}

// Draw renders one frame of the scene as seen by cam.
func (r *SceneRenderer) Draw(screen *ebiten.Image, s *game.Scene, cam *view.Camera) {
	screen.Fill(spaceColor)
	r.drawSky(screen, cam)
	r.drawRings(screen, s, cam)
	r.drawSegments(screen, s, cam)
	r.drawBodies(screen, s, cam)
}

func (r *SceneRenderer) drawSky(screen *ebiten.Image, cam *view.Camera) {
	eye := cam.Eye()
	for i, dir := range r.sky {
		x, y, _, ok := cam.Project(eye.Add(dir.Scale(skyRadius)))
		if !ok {
			continue
		}
		a := 0.3 + 0.5*float64(i%5)/4
		vector.DrawFilledCircle(screen, float32(x), float32(y), 1, nrgba(starColor, a), false)
	}
}

func (r *SceneRenderer) drawRings(screen *ebiten.Image, s *game.Scene, cam *view.Camera) {
	t := s.Clock()
	for _, ring := range s.Rings() {
		pts := game.RingPoints(ring.Radius, 0, r.samples)
		dash := shade.RingDash(ring.Index, t)
		n := len(pts)
		for k := range pts {
			alpha, boost := shade.DashAlpha(float64(k)/float64(n), t, dash)
			if alpha < 0.01 {
				continue
			}
			x0, y0, _, ok0 := cam.Project(pts[k])
			x1, y1, _, ok1 := cam.Project(pts[(k+1)%n])
			if !ok0 || !ok1 {
				continue
			}
			c := ring.Color.BlendRgb(white, (boost-1)*0.5)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), ringWidth, nrgba(c, alpha*ringAlpha), true)
		}
	}
}

func (r *SceneRenderer) drawSegments(screen *ebiten.Image, s *game.Scene, cam *view.Camera) {
	for _, seg := range s.Segments() {
		x0, y0, _, ok0 := cam.Project(seg.From)
		x1, y1, _, ok1 := cam.Project(seg.To)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, nrgba(seg.Color, edgeAlpha), true)
	}
}

type projected struct {
	prim   game.Primitive
	x, y   float64
	depth  float64
	radius float64
}

func (r *SceneRenderer) drawBodies(screen *ebiten.Image, s *game.Scene, cam *view.Camera) {
	var visible []projected
	for _, p := range s.Primitives() {
		x, y, depth, ok := cam.Project(p.Position)
		if !ok {
			continue
		}
		visible = append(visible, projected{p, x, y, depth, cam.ProjectRadius(p.Radius, depth)})
	}
	// far to near
	sort.Slice(visible, func(i, j int) bool { return visible[i].depth > visible[j].depth })

	t := s.Clock()
	for _, v := range visible {
		p := v.prim
		switch {
		case p.Kind == game.KindJobPlanet && p.Project < 0:
			r.drawPlanet(screen, v, t)
		case p.Kind == game.KindSun:
			vector.DrawFilledCircle(screen, float32(v.x), float32(v.y), float32(v.radius*sunHaloScale), nrgba(p.Color, 0.2), true)
			vector.DrawFilledCircle(screen, float32(v.x), float32(v.y), float32(v.radius), nrgba(emit(p.Color, p.Emissive), 1), true)
		default:
			rad := math.Max(v.radius, 1)
			vector.DrawFilledCircle(screen, float32(v.x), float32(v.y), float32(rad), nrgba(emit(p.Color, p.Emissive), 1), true)
		}
	}
}

func (r *SceneRenderer) drawPlanet(screen *ebiten.Image, v projected, t float64) {
	sp, ok := r.sprites[v.prim.BodyID]
	if !ok || v.radius < 0.5 {
		return
	}
	shade.RasterizeDisc(sp.pixels, sp.shader, t, v.prim.Rotation)
	sp.image.WritePixels(sp.pixels.Pix)

	size := float64(sp.pixels.Bounds().Dx())
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(2*v.radius/size, 2*v.radius/size)
	op.GeoM.Translate(v.x-v.radius, v.y-v.radius)
	bright := float32(1 + (v.prim.Emissive-0.2)*0.6)
	op.ColorScale.Scale(bright, bright, bright, 1)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sp.image, &op)
}
