package view

import (
	"fmt"
	"strings"

	"github.com/cosmicfolio/cosmicfolio/internal/game"
	"github.com/cosmicfolio/cosmicfolio/internal/world"
)

// Line is one row of panel text.
type Line struct {
	Text string
	FG   uint8
}

// PanelTextWidth is the wrap width inside the side panel frame.
const PanelTextWidth = panelW - 4

type panelBuilder func(s *game.Scene) []Line

var panelBuilders = map[game.Section]panelBuilder{
	game.SectionAbout:        aboutPanel,
	game.SectionSkills:       skillsPanel,
	game.SectionExperience:   experiencePanel,
	game.SectionProjects:     projectsPanel,
	game.SectionAchievements: achievementsPanel,
	game.SectionContact:      contactPanel,
}

// BuildPanel returns the side panel text of a section.
func BuildPanel(sec game.Section, s *game.Scene) []Line {
	build, ok := panelBuilders[sec]
	if !ok {
		return nil
	}
	return build(s)
}

func wrap(text string, fg uint8) []Line {
	var out []Line
	for _, l := range game.WrapText(text, PanelTextWidth) {
		out = append(out, Line{Text: l, FG: fg})
	}
	return out
}

func gap() Line { return Line{} }

func aboutPanel(s *game.Scene) []Line {
	p := s.Content().Profile
	lines := []Line{{p.Name, ColorWhite}}
	lines = append(lines, wrap(p.Title, ColorLightCyan)...)
	if p.Motto != "" {
		lines = append(lines, gap())
		lines = append(lines, wrap(p.Motto, ColorLightGray)...)
	}
	lines = append(lines, gap())
	lines = append(lines, wrap("Planets are jobs, moons are their projects and the stars are skills waiting to be charted.", ColorDarkGray)...)
	return lines
}

func skillsPanel(s *game.Scene) []Line {
	st := s.State()
	var lines []Line
	for _, id := range st.SkillIDs() {
		sk := st.Skills[id]
		if !sk.Discovered {
			lines = append(lines, Line{"  ??? uncharted", ColorDarkGray})
			continue
		}
		lines = append(lines, Line{fmt.Sprintf("%c %s %s", GlyphSquare, sk.Name, LevelStars(sk.Level)), categoryInk(sk.Category)})
	}
	lines = append(lines, gap(), Line{fmt.Sprintf("%d of %d charted", st.DiscoveredCount, st.TotalSkills), ColorLightGray})
	return lines
}

func experiencePanel(s *game.Scene) []Line {
	content := s.Content()
	var lines []Line
	for i := range content.Jobs {
		j := &content.Jobs[i]
		if i > 0 {
			lines = append(lines, gap())
		}
		lines = append(lines, Line{j.Company, Nearest(game.LanguageColor(content, j.PrimaryLanguage()))})
		lines = append(lines, wrap(j.Position, ColorLightGray)...)
		lines = append(lines, Line{j.Period, ColorDarkGray})
	}
	return lines
}

func projectsPanel(s *game.Scene) []Line {
	var lines []Line
	for _, j := range s.Content().Jobs {
		lines = append(lines, Line{j.Company, ColorLightCyan})
		for _, p := range j.Projects {
			lines = append(lines, wrap("- "+p.Name, ColorLightGray)...)
		}
	}
	return lines
}

func achievementsPanel(s *game.Scene) []Line {
	st := s.State()
	var lines []Line
	for _, id := range st.AchievementIDs() {
		a := st.Achievements[id]
		switch {
		case a.Unlocked:
			lines = append(lines, Line{AchievementMarker(a.Type) + " " + a.Title, achievementInk(a.Type)})
			lines = append(lines, wrap("    "+a.Description, ColorLightGray)...)
		case a.Type == world.AchievementSecret:
			lines = append(lines, Line{"[ ] ???", ColorDarkGray})
		default:
			lines = append(lines, Line{"[ ] " + a.Title, ColorDarkGray})
		}
	}
	return lines
}

func contactPanel(s *game.Scene) []Line {
	var lines []Line
	for _, c := range s.Content().Profile.Contact {
		lines = append(lines, Line{c.Label, ColorLightCyan})
		lines = append(lines, wrap("  "+c.Value, ColorWhite)...)
	}
	if len(lines) == 0 {
		lines = append(lines, Line{"No contact listed.", ColorDarkGray})
	}
	return lines
}

// DetailPanel returns the title and text of the selected entity's panel.
func DetailPanel(s *game.Scene) (title string, lines []Line, ok bool) {
	f, ok := s.Selected()
	if !ok {
		return "", nil, false
	}
	switch f.Body.Kind {
	case game.KindJobPlanet:
		return f.Body.Name(), jobDetail(f), true
	case game.KindSkillNode:
		return f.Body.Name(), skillDetail(s, f), true
	default:
		return f.Body.Name(), aboutPanel(s), true
	}
}

func jobDetail(f game.Focus) []Line {
	j := f.Body.Job
	lines := wrap(j.Position, ColorWhite)
	lines = append(lines, Line{j.Period, ColorDarkGray})
	if len(j.Languages) > 0 {
		lines = append(lines, wrap("Languages: "+strings.Join(j.Languages, ", "), ColorLightGray)...)
	}

	lines = append(lines, gap(), Line{"Projects (click a moon):", ColorLightCyan})
	for i, p := range j.Projects {
		fg := uint8(ColorLightGray)
		if i == f.ProjectIndex {
			fg = ColorYellow
		}
		lines = append(lines, wrap(fmt.Sprintf("%d. %s", i+1, p.Name), fg)...)
	}
	if f.Project != nil {
		lines = append(lines, gap(), Line{f.Project.Name, ColorYellow})
		lines = append(lines, wrap(f.Project.Description, ColorLightGray)...)
		if len(f.Project.Technologies) > 0 {
			lines = append(lines, wrap("Tech: "+strings.Join(f.Project.Technologies, ", "), ColorCyan)...)
		}
	}

	if len(j.Achievements) > 0 {
		lines = append(lines, gap(), Line{"Highlights:", ColorLightCyan})
		for _, a := range j.Achievements {
			lines = append(lines, wrap("- "+a, ColorLightGray)...)
		}
	}
	return lines
}

func skillDetail(s *game.Scene, f game.Focus) []Line {
	sk := f.Skill
	lines := []Line{
		{"Category: " + string(sk.Category), categoryInk(sk.Category)},
		{fmt.Sprintf("Level: %s (%d/5)", LevelStars(sk.Level), sk.Level), ColorWhite},
	}
	if sk.Description != "" {
		lines = append(lines, gap())
		lines = append(lines, wrap(sk.Description, ColorLightGray)...)
	}
	if n := s.Graph().Neighbors(sk.ID); len(n) > 0 {
		lines = append(lines, gap())
		lines = append(lines, wrap("Linked: "+strings.Join(n, ", "), ColorLightBlue)...)
	}
	return lines
}

// ProgressHUD returns the exploration summary shown in the top-left corner.
// The second line is a placeholder row for the meter.
func ProgressHUD(s *game.Scene) []Line {
	st := s.State()
	lines := []Line{
		{fmt.Sprintf("Exploration Progress: %.0f%%", st.Progress), ColorLightCyan},
		gap(),
		{fmt.Sprintf("%d of %d skills discovered", st.DiscoveredCount, st.TotalSkills), ColorLightGray},
	}
	for _, sk := range s.Tracker().DiscoveredSkills() {
		lines = append(lines, Line{fmt.Sprintf("%c %s Lv.%d", GlyphSquare, sk.Name, sk.Level), categoryInk(sk.Category)})
	}
	if st.ChallengesWon+st.ChallengesLost > 0 {
		lines = append(lines, Line{fmt.Sprintf("Challenges: %d won, %d lost", st.ChallengesWon, st.ChallengesLost), ColorDarkGray})
	}
	return lines
}

// BannerLines returns the achievement banner text.
func BannerLines(b game.Banner) []Line {
	a := b.Achievement
	lines := wrap(AchievementMarker(a.Type)+" Achievement Unlocked!", achievementInk(a.Type))
	lines = append(lines, wrap(a.Title, ColorWhite)...)
	return append(lines, wrap(a.Description, ColorLightGray)...)
}

// AchievementMarker returns the banner prefix of an achievement type.
func AchievementMarker(t world.AchievementType) string {
	switch t {
	case world.AchievementFailure:
		return "[!]"
	case world.AchievementSecret:
		return "[?]"
	default:
		return "[+]"
	}
}

// LevelStars draws a 1-5 level as a five character meter.
func LevelStars(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("*", level) + strings.Repeat(".", 5-level)
}

func achievementInk(t world.AchievementType) uint8 {
	switch t {
	case world.AchievementFailure:
		return ColorLightRed
	case world.AchievementSecret:
		return ColorLightMagenta
	default:
		return ColorYellow
	}
}

func categoryInk(c world.Category) uint8 {
	return Nearest(game.CategoryColor(c))
}

func messageInk(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgDiscovery:
		return ColorLightGreen
	case game.MsgAchievement:
		return ColorYellow
	case game.MsgHint:
		return ColorDarkGray
	default:
		return ColorLightCyan
	}
}
