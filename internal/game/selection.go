package game

// Mode is the interaction state derived from the hover and selection axes.
type Mode uint8

const (
	ModeIdle               Mode = iota // nothing hovered or selected
	ModeHovered                        // pointer over a body, nothing selected
	ModeSelected                       // a body's detail panel is open
	ModeSelectedWithDetail             // a project of the selected planet is open too
)

// Selection tracks the hovered body and the single selected body.
// The zero value is idle.
type Selection struct {
	hovered  string
	selected string
	project  int // project index + 1; 0 means none
}

// Hovered returns the hovered body id, or "".
func (s *Selection) Hovered() string { return s.hovered }

// Selected returns the selected body id, or "".
func (s *Selection) Selected() string { return s.selected }

// Project returns the selected project index of the selected planet.
func (s *Selection) Project() (int, bool) {
	if s.project == 0 {
		return 0, false
	}
	return s.project - 1, true
}

// Mode reports the current interaction state.
func (s *Selection) Mode() Mode {
	switch {
	case s.selected != "" && s.project != 0:
		return ModeSelectedWithDetail
	case s.selected != "":
		return ModeSelected
	case s.hovered != "":
		return ModeHovered
	default:
		return ModeIdle
	}
}

// PointerOver starts hovering id.
func (s *Selection) PointerOver(id string) {
	s.hovered = id
}

// PointerOut stops hovering id. Leaving a body that is not hovered changes nothing.
func (s *Selection) PointerOut(id string) {
	if s.hovered == id {
		s.hovered = ""
	}
}

// Click selects id, replacing any previous selection and project.
// Clicking the selected body again closes its panel.
func (s *Selection) Click(id string) {
	if s.selected == id {
		s.selected = ""
		s.project = 0
		return
	}
	s.selected = id
	s.project = 0
}

// ClickProject opens project index of planet id, selecting the planet if needed.
func (s *Selection) ClickProject(id string, index int) {
	if index < 0 {
		return
	}
	s.selected = id
	s.project = index + 1
}

// Clear closes any panel. Hover is left alone.
func (s *Selection) Clear() {
	s.selected = ""
	s.project = 0
}

// Emphasized reports whether id gets hover visuals: it is hovered and no other body's panel is open.
func (s *Selection) Emphasized(id string) bool {
	if id == "" || s.hovered != id {
		return false
	}
	return s.selected == "" || s.selected == id
}

// ModeName returns a label for an interaction mode.
func ModeName(m Mode) string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeHovered:
		return "Hovered"
	case ModeSelected:
		return "Selected"
	case ModeSelectedWithDetail:
		return "SelectedWithDetail"
	default:
		return "Unknown"
	}
}
