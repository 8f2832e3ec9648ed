package world

// Category groups skills for mastery achievements and star color.
type Category string

const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDevOps   Category = "devops"
	CategoryGraphics Category = "graphics"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryFrontend, CategoryBackend, CategoryDevOps, CategoryGraphics}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryDevOps, CategoryGraphics:
		return true
	default:
		return false
	}
}

// AchievementType picks the banner marker.
type AchievementType string

const (
	AchievementSuccess AchievementType = "success"
	AchievementFailure AchievementType = "failure"
	AchievementSecret  AchievementType = "secret"
)

// Content is the static portfolio feed. It is read-only once loaded.
type Content struct {
	Profile        Profile             `yaml:"profile"`
	LanguageColors map[string]string   `yaml:"languageColors"`
	Jobs           []JobRecord         `yaml:"jobs"`
	Skills         []SkillRecord       `yaml:"skills"`
	Connections    [][]string          `yaml:"connections"`
	Achievements   []AchievementRecord `yaml:"achievements"`
}

// Profile is the biography shown in the About and Contact sections.
type Profile struct {
	Name    string        `yaml:"name"`
	Title   string        `yaml:"title"`
	Motto   string        `yaml:"motto"`
	Contact []ContactLink `yaml:"contact"`
}

// ContactLink is one labelled contact line.
type ContactLink struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// JobRecord is one employer, rendered as a planet.
type JobRecord struct {
	Company      string          `yaml:"company"`
	Position     string          `yaml:"position"`
	Period       string          `yaml:"period"`
	Projects     []ProjectRecord `yaml:"projects"`
	Languages    []string        `yaml:"languages"`
	Achievements []string        `yaml:"achievements"`
}

// PrimaryLanguage returns the first listed language, or "".
func (j *JobRecord) PrimaryLanguage() string {
	if len(j.Languages) == 0 {
		return ""
	}
	return j.Languages[0]
}

// ProjectRecord is one project, rendered as a moon of its job planet.
type ProjectRecord struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

// SkillRecord is the static part of a skill star. Discovery state lives in the game state.
type SkillRecord struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Category    Category  `yaml:"category"`
	Level       int       `yaml:"level"` // 1-5
	Description string    `yaml:"description"`
	Position    []float64 `yaml:"position"` // x, y, z
}

// AchievementRecord is the static part of an achievement.
type AchievementRecord struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Type        AchievementType `yaml:"type"`
}

// MasteryID returns the achievement id unlocked by discovering every skill of a category.
func MasteryID(c Category) string {
	return string(c) + "-master"
}

// FirstDiscoveryID is unlocked by the very first skill discovery.
const FirstDiscoveryID = "first-discovery"
