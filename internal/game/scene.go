package game

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mlange-42/ark/ecs"
	"github.com/pkg/errors"

	"github.com/cosmicfolio/cosmicfolio/internal/config"
	"github.com/cosmicfolio/cosmicfolio/internal/world"
)

// Wiring errors returned by NewScene.
var (
	ErrNoContent  = errors.New("scene: content is required")
	ErrNoNotifier = errors.New("scene: notified store is required")
)

// Hover and emphasis visuals.
const (
	hoverScale       = 1.2
	emissiveIdle     = 0.2
	emissiveHover    = 0.5
	emissiveSun      = 2.0
	undiscoveredSize = 0.4
)

// Notified remembers which achievement banners have already been shown.
type Notified interface {
	Contains(id string) bool
	Add(id string)
}

// Transform is a body's placement for the current frame.
type Transform struct {
	Position Vec3
	Rotation float64 // self rotation around the vertical axis, radians
	Scale    float64
}

// Appearance is how a body is drawn for the current frame.
type Appearance struct {
	Color    colorful.Color
	Emissive float64
	Radius   float64 // unscaled
}

// Primitive is one positioned, colored sphere handed to the render surface.
type Primitive struct {
	BodyID   string
	Kind     BodyKind
	Project  int // project index for moons, -1 otherwise
	Position Vec3
	Radius   float64 // scaled
	Rotation float64
	Color    colorful.Color
	Emissive float64
	Surface  Surface
	Label    string
}

// Segment is a straight line between two scene points.
type Segment struct {
	From, To Vec3
	Color    colorful.Color
}

// Ring is the orbit path of a job planet.
type Ring struct {
	Index  int
	Radius float64
	Color  colorful.Color
}

// Banner is the achievement announcement on screen.
type Banner struct {
	Achievement AchievementState
	Remaining   float64 // seconds
}

// Focus is the selected entity with its full record, for the detail panel.
type Focus struct {
	Body         *Body
	Skill        *SkillState
	Project      *world.ProjectRecord
	ProjectIndex int
}

var (
	moonColor     = colorful.Color{R: 0, G: 1, B: 1}
	moonOpenColor = colorful.Color{R: 1, G: 1, B: 1}
	edgeColor     = colorful.Color{R: 0x33 / 255.0, G: 0x88 / 255.0, B: 1}
)

// Scene composes the bodies, the exploration state and the selection.
// It is driven from a single loop: Tick once per frame, pointer events in between.
type Scene struct {
	content  *world.Content
	cfg      config.Config
	bodies   []Body
	index    map[string]int
	graph    *SkillGraph
	tracker  *Tracker
	sel      Selection
	notified Notified
	Log      *MessageLog

	clock   float64
	running bool
	banner  *Banner
	section Section

	registry   *ecs.World
	entities   []ecs.Entity
	transforms *ecs.Map[Transform]
	looks      *ecs.Map[Appearance]
}

// NewScene builds the arena and render entities from content.
// Missing collaborators are wiring bugs and are reported immediately.
func NewScene(content *world.Content, cfg config.Config, notified Notified) (*Scene, error) {
	if content == nil {
		return nil, ErrNoContent
	}
	if notified == nil {
		return nil, ErrNoNotifier
	}
	if err := content.Validate(); err != nil {
		return nil, errors.Wrap(err, "scene")
	}

	bodies := NewBodies(content, cfg.Orbit)
	if err := CheckOrbits(bodies); err != nil {
		return nil, errors.Wrap(err, "scene")
	}
	index := make(map[string]int, len(bodies))
	for i := range bodies {
		index[bodies[i].ID] = i
	}

	w := ecs.NewWorld(len(bodies))
	builder := ecs.NewMap2[Transform, Appearance](w)
	entities := make([]ecs.Entity, len(bodies))
	for i := range bodies {
		entities[i] = builder.NewEntity(
			&Transform{Position: bodies[i].BasePosition(), Scale: 1},
			&Appearance{Color: bodies[i].Color},
		)
	}

	log := NewMessageLog(40)
	log.Add(fmt.Sprintf("Welcome aboard. %d planets, %d uncharted stars.", len(content.Jobs), len(content.Skills)), MsgInfo)
	log.Add("Click a star to discover a skill. Click a planet for its story.", MsgHint)

	s := &Scene{
		content:    content,
		cfg:        cfg,
		bodies:     bodies,
		index:      index,
		graph:      NewSkillGraph(content),
		tracker:    NewTracker(content),
		notified:   notified,
		Log:        log,
		running:    true,
		registry:   w,
		entities:   entities,
		transforms: ecs.NewMap[Transform](w),
		looks:      ecs.NewMap[Appearance](w),
	}
	s.updateEntities()
	return s, nil
}

// Tick advances the scene clock by dt seconds and refreshes every body.
func (s *Scene) Tick(dt float64) {
	if !s.running {
		return
	}
	s.clock += dt
	s.updateEntities()
	s.tickBanner(dt)
}

// Close stops the frame loop. Further ticks, pointer events and state changes are ignored.
func (s *Scene) Close() {
	s.running = false
}

// Running reports whether the scene still accepts ticks.
func (s *Scene) Running() bool { return s.running }

// Clock returns the scene time in seconds.
func (s *Scene) Clock() float64 { return s.clock }

func (s *Scene) updateEntities() {
	positions := Positions(s.bodies, s.clock)
	skillIdx := 0
	for i := range s.bodies {
		b := &s.bodies[i]
		xf := s.transforms.Get(s.entities[i])
		look := s.looks.Get(s.entities[i])

		xf.Position = positions[i]
		xf.Rotation = math.Mod(s.clock*b.SelfRotationSpeed, 2*math.Pi)
		xf.Scale = 1
		look.Color = b.Color
		look.Emissive = emissiveIdle

		switch b.Kind {
		case KindSun:
			look.Radius = SunRadius
			look.Emissive = emissiveSun
		case KindJobPlanet:
			look.Radius = PlanetRadius
		case KindSkillNode:
			look.Radius = s.starSize(b.Skill, skillIdx)
			skillIdx++
		}

		if s.sel.Emphasized(b.ID) {
			xf.Scale = hoverScale
			look.Emissive = emissiveHover
		}
	}
}

// starSize pulses discovered stars and twinkles undiscovered ones.
func (s *Scene) starSize(skill *world.SkillRecord, i int) float64 {
	t := s.clock
	if s.tracker.State().Skills[skill.ID].Discovered {
		pulse := math.Sin(t*2+float64(i))*0.1 + 0.9
		return float64(skill.Level) * 0.3 * pulse
	}
	twinkle := math.Sin(t*3+float64(i)*1.5)*0.3 + 0.7
	return undiscoveredSize * twinkle
}

func (s *Scene) tickBanner(dt float64) {
	if s.banner != nil {
		s.banner.Remaining -= dt
		if s.banner.Remaining > 0 {
			return
		}
		s.banner = nil
	}

	pending := s.PendingAchievements()
	if len(pending) == 0 {
		return
	}
	next := pending[0]
	s.banner = &Banner{Achievement: next, Remaining: s.cfg.Banner}
	s.notified.Add(next.ID)
	s.Log.Add("Achievement unlocked: "+next.Title, MsgAchievement)
}

// PendingAchievements returns unlocked achievements whose banner has never been shown.
func (s *Scene) PendingAchievements() []AchievementState {
	var out []AchievementState
	for _, a := range s.tracker.UnlockedAchievements() {
		if !s.notified.Contains(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// Banner returns the achievement banner currently on screen.
func (s *Scene) Banner() (Banner, bool) {
	if s.banner == nil {
		return Banner{}, false
	}
	return *s.banner, true
}

// PointerOver routes a pointer-enter event. Unknown ids are ignored.
func (s *Scene) PointerOver(id string) {
	if _, ok := s.index[id]; !ok || !s.running {
		return
	}
	s.sel.PointerOver(id)
}

// PointerOut routes a pointer-leave event.
func (s *Scene) PointerOut(id string) {
	if !s.running {
		return
	}
	s.sel.PointerOut(id)
}

// Click routes a click on a body. Selecting a skill star discovers it.
func (s *Scene) Click(id string) {
	i, ok := s.index[id]
	if !ok || !s.running {
		return
	}
	s.sel.Click(id)
	if s.sel.Selected() != id {
		return
	}
	if b := &s.bodies[i]; b.Kind == KindSkillNode {
		s.discover(b.Skill)
	}
}

// ClickProject routes a click on project index of planet id.
func (s *Scene) ClickProject(id string, index int) {
	i, ok := s.index[id]
	if !ok || !s.running {
		return
	}
	b := &s.bodies[i]
	if b.Kind != KindJobPlanet || index < 0 || index >= len(b.Job.Projects) {
		return
	}
	s.sel.ClickProject(id, index)
}

// ClearSelection closes the detail panel.
func (s *Scene) ClearSelection() {
	if s.running {
		s.sel.Clear()
	}
}

func (s *Scene) discover(skill *world.SkillRecord) {
	discovered, _ := s.tracker.DiscoverSkill(skill.ID)
	if !discovered {
		return
	}
	st := s.tracker.State()
	s.Log.Add(fmt.Sprintf("Discovered %s (Lv.%d %s). %d of %d skills charted.",
		skill.Name, skill.Level, skill.Category, st.DiscoveredCount, st.TotalSkills), MsgDiscovery)
}

// DiscoverSkill discovers a skill directly, as a star click would.
func (s *Scene) DiscoverSkill(skillID string) {
	i, ok := s.index[SkillBodyID(skillID)]
	if !ok || !s.running {
		return
	}
	s.discover(s.bodies[i].Skill)
}

// Selection returns a snapshot of the interaction state.
func (s *Scene) Selection() Selection { return s.sel }

// Selected returns the selected entity and its record.
func (s *Scene) Selected() (Focus, bool) {
	i, ok := s.index[s.sel.Selected()]
	if !ok {
		return Focus{}, false
	}
	f := Focus{Body: &s.bodies[i], ProjectIndex: -1}
	switch f.Body.Kind {
	case KindSkillNode:
		sk := s.tracker.State().Skills[f.Body.Skill.ID]
		f.Skill = &sk
	case KindJobPlanet:
		if p, ok := s.sel.Project(); ok {
			f.Project = &f.Body.Job.Projects[p]
			f.ProjectIndex = p
		}
	}
	return f, true
}

// Hovered returns the hovered body.
func (s *Scene) Hovered() (*Body, bool) {
	i, ok := s.index[s.sel.Hovered()]
	if !ok {
		return nil, false
	}
	return &s.bodies[i], true
}

// Body looks up a body by id.
func (s *Scene) Body(id string) (*Body, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.bodies[i], true
}

// Bodies returns the arena.
func (s *Scene) Bodies() []Body { return s.bodies }

// Content returns the static feed the scene was built from.
func (s *Scene) Content() *world.Content { return s.content }

// Graph returns the skill constellation.
func (s *Scene) Graph() *SkillGraph { return s.graph }

// Tracker returns the exploration state owner.
func (s *Scene) Tracker() *Tracker { return s.tracker }

// State returns the current exploration state.
func (s *Scene) State() State { return s.tracker.State() }

// Section returns the side panel page.
func (s *Scene) Section() Section { return s.section }

// SetSection switches the side panel page.
func (s *Scene) SetSection(sec Section) {
	if sec < SectionCount && s.running {
		s.section = sec
	}
}

// SetFocus records where the camera looks.
func (s *Scene) SetFocus(p Vec3) {
	if !s.running {
		return
	}
	s.tracker.Dispatch(UpdatePlayerPosition{Position: p})
}

// Primitives returns every sphere to draw this frame: bodies in arena order, then project moons.
func (s *Scene) Primitives() []Primitive {
	if !s.running {
		return nil
	}
	out := make([]Primitive, 0, len(s.bodies)*2)
	for i := range s.bodies {
		b := &s.bodies[i]
		xf := s.transforms.Get(s.entities[i])
		look := s.looks.Get(s.entities[i])
		out = append(out, Primitive{
			BodyID:   b.ID,
			Kind:     b.Kind,
			Project:  -1,
			Position: xf.Position,
			Radius:   look.Radius * xf.Scale,
			Rotation: xf.Rotation,
			Color:    look.Color,
			Emissive: look.Emissive,
			Surface:  b.Surface,
			Label:    b.Name(),
		})
	}

	openProject, hasProject := s.sel.Project()
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Kind != KindJobPlanet {
			continue
		}
		center := s.transforms.Get(s.entities[i]).Position
		for k, off := range MoonOffsets(len(b.Job.Projects), s.cfg.Orbit.MoonRadius) {
			c := moonColor
			if hasProject && s.sel.Selected() == b.ID && openProject == k {
				c = moonOpenColor
			}
			out = append(out, Primitive{
				BodyID:   b.ID,
				Kind:     KindJobPlanet,
				Project:  k,
				Position: center.Add(off),
				Radius:   MoonRadius,
				Color:    c,
				Emissive: emissiveIdle,
				Label:    b.Job.Projects[k].Name,
			})
		}
	}
	return out
}

// Segments returns the revealed constellation lines at their current positions.
func (s *Scene) Segments() []Segment {
	if !s.running {
		return nil
	}
	var out []Segment
	for _, e := range s.graph.VisibleEdges(s.tracker.State()) {
		from, okFrom := s.index[SkillBodyID(e.From)]
		to, okTo := s.index[SkillBodyID(e.To)]
		if !okFrom || !okTo {
			continue
		}
		out = append(out, Segment{
			From:  s.transforms.Get(s.entities[from]).Position,
			To:    s.transforms.Get(s.entities[to]).Position,
			Color: edgeColor,
		})
	}
	return out
}

// Rings returns the orbit paths of the job planets.
func (s *Scene) Rings() []Ring {
	var out []Ring
	n := 0
	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Kind != KindJobPlanet {
			continue
		}
		out = append(out, Ring{Index: n, Radius: b.Orbit.Radius, Color: b.Color})
		n++
	}
	return out
}
