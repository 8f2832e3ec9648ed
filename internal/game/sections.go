package game

// Section is one of the side panel pages.
type Section uint8

const (
	SectionAbout Section = iota
	SectionSkills
	SectionExperience
	SectionProjects
	SectionAchievements
	SectionContact
	SectionCount // sentinel
)

var sectionNames = [SectionCount]string{
	SectionAbout:        "About",
	SectionSkills:       "Skills",
	SectionExperience:   "Experience",
	SectionProjects:     "Projects",
	SectionAchievements: "Achievements",
	SectionContact:      "Contact",
}

// SectionName returns the navigation label of a section.
func SectionName(s Section) string {
	if s >= SectionCount {
		return "Unknown"
	}
	return sectionNames[s]
}

// SectionForKey maps the digit keys 1-6 to sections.
func SectionForKey(r rune) (Section, bool) {
	if r < '1' || r >= '1'+rune(SectionCount) {
		return 0, false
	}
	return Section(r - '1'), true
}
