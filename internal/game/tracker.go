package game

import "github.com/cosmicfolio/cosmicfolio/internal/world"

// Tracker owns the State and is the only place it changes.
type Tracker struct {
	state State
}

// NewTracker starts a fresh session for content.
func NewTracker(content *world.Content) *Tracker {
	return &Tracker{state: NewState(content)}
}

// State returns the current state.
func (t *Tracker) State() State { return t.state }

// Dispatch reduces a single action into the owned state.
func (t *Tracker) Dispatch(a Action) State {
	t.state = Reduce(t.state, a)
	return t.state
}

// DiscoverSkill discovers a skill and unlocks whatever the discovery earned.
// It reports whether the skill was newly discovered and which achievements were newly unlocked.
func (t *Tracker) DiscoverSkill(skillID string) (discovered bool, unlocked []string) {
	before := t.state.DiscoveredCount
	post := t.Dispatch(DiscoverSkill{SkillID: skillID})
	if post.DiscoveredCount == before {
		return false, nil
	}

	for _, id := range DiscoveryTriggers(post, skillID) {
		if t.UnlockAchievement(id) {
			unlocked = append(unlocked, id)
		}
	}
	return true, unlocked
}

// UnlockAchievement unlocks an achievement, reporting whether it was newly unlocked.
func (t *Tracker) UnlockAchievement(id string) bool {
	ach, ok := t.state.Achievements[id]
	if !ok || ach.Unlocked {
		return false
	}
	t.Dispatch(UnlockAchievement{AchievementID: id})
	return true
}

// Progress returns the discovery percentage.
func (t *Tracker) Progress() float64 { return t.state.Progress }

// DiscoveredSkills returns discovered skills in content order.
func (t *Tracker) DiscoveredSkills() []SkillState {
	var out []SkillState
	for _, id := range t.state.SkillIDs() {
		if sk := t.state.Skills[id]; sk.Discovered {
			out = append(out, sk)
		}
	}
	return out
}

// UnlockedAchievements returns unlocked achievements in content order.
func (t *Tracker) UnlockedAchievements() []AchievementState {
	var out []AchievementState
	for _, id := range t.state.AchievementIDs() {
		if a := t.state.Achievements[id]; a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}
