package game

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/cosmicfolio/cosmicfolio/internal/config"
	"github.com/cosmicfolio/cosmicfolio/internal/world"
)

// BodyKind identifies what a body in the scene represents.
type BodyKind uint8

const (
	KindSun BodyKind = iota
	KindJobPlanet
	KindSkillNode
)

// Body radii in scene units.
const (
	SunRadius    = 5.0
	PlanetRadius = 3.0
	MoonRadius   = 0.5
)

// SunID is the id of the single central body.
const SunID = "sun"

// Body is one renderable, pickable entity. Bodies are created once per session
// and addressed by their index in the arena slice.
type Body struct {
	ID    string
	Kind  BodyKind
	Orbit Orbit

	SelfRotationSpeed float64 // radians per second
	Color             colorful.Color
	Surface           Surface // only for KindJobPlanet

	Job   *world.JobRecord   // only for KindJobPlanet
	Skill *world.SkillRecord // only for KindSkillNode
}

// Surface holds the procedural shading parameters of a planet.
type Surface struct {
	NoiseScale    float64
	GlowIntensity float64
}

// BasePosition is where the body sits at t=0.
func (b *Body) BasePosition() Vec3 { return b.Orbit.At(0) }

// Name returns the label shown next to the body.
func (b *Body) Name() string {
	switch b.Kind {
	case KindJobPlanet:
		return b.Job.Company
	case KindSkillNode:
		return b.Skill.Name
	default:
		return "Sun"
	}
}

// JobBodyID returns the body id of the i-th job planet.
func JobBodyID(i int) string { return fmt.Sprintf("job-%d", i) }

// SkillBodyID returns the body id of a skill star.
func SkillBodyID(skillID string) string { return "skill-" + skillID }

// SunColor is the color of the central star.
var SunColor = colorful.Color{R: 0xFD / 255.0, G: 0xB8 / 255.0, B: 0x13 / 255.0}

// CategoryColor returns the star color of a skill category.
func CategoryColor(c world.Category) colorful.Color {
	switch c {
	case world.CategoryFrontend:
		return colorful.Color{R: 0, G: 1, B: 1}
	case world.CategoryBackend:
		return colorful.Color{R: 1, G: 0, B: 1}
	case world.CategoryDevOps:
		return colorful.Color{R: 1, G: 1, B: 0}
	case world.CategoryGraphics:
		return colorful.Color{R: 0, G: 1, B: 0}
	default:
		return colorful.Color{R: 1, G: 1, B: 1}
	}
}

// LanguageColor resolves a language to its brand color, white when unknown or malformed.
func LanguageColor(content *world.Content, lang string) colorful.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	hex, ok := content.LanguageColors[lang]
	if !ok {
		return white
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return white
	}
	return c
}

// NewBodies builds the arena: the sun first, then one planet per job, then one star per skill.
func NewBodies(content *world.Content, cfg config.Orbit) []Body {
	bodies := make([]Body, 0, 1+len(content.Jobs)+len(content.Skills))

	bodies = append(bodies, Body{
		ID:                SunID,
		Kind:              KindSun,
		SelfRotationSpeed: cfg.SunSpin,
		Color:             SunColor,
	})

	orbits := RingOrbits(len(content.Jobs), cfg.BaseRadius, cfg.Step, cfg.Speed)
	for i := range content.Jobs {
		job := &content.Jobs[i]
		bodies = append(bodies, Body{
			ID:                JobBodyID(i),
			Kind:              KindJobPlanet,
			Orbit:             orbits[i],
			SelfRotationSpeed: cfg.PlanetSpin,
			Color:             LanguageColor(content, job.PrimaryLanguage()),
			Surface: Surface{
				NoiseScale:    2 + float64(len(job.Company)%5),
				GlowIntensity: 0.3 + float64(len(job.Position))/100,
			},
			Job: job,
		})
	}

	for i := range content.Skills {
		skill := &content.Skills[i]
		p := Vec3{X: skill.Position[0], Y: skill.Position[1], Z: skill.Position[2]}
		bodies = append(bodies, Body{
			ID:    SkillBodyID(skill.ID),
			Kind:  KindSkillNode,
			Orbit: OrbitThrough(p, cfg.ConstellationDrift),
			Color: CategoryColor(skill.Category),
			Skill: skill,
		})
	}

	return bodies
}

// BodyKindName returns a label for a body kind.
func BodyKindName(k BodyKind) string {
	switch k {
	case KindSun:
		return "Sun"
	case KindJobPlanet:
		return "Job planet"
	case KindSkillNode:
		return "Skill star"
	default:
		return "Unknown"
	}
}
