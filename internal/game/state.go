package game

import "github.com/cosmicfolio/cosmicfolio/internal/world"

// SkillState is a skill plus its one-way discovery flag.
type SkillState struct {
	world.SkillRecord
	Discovered bool
}

// AchievementState is an achievement plus its one-way unlock flag.
type AchievementState struct {
	world.AchievementRecord
	Unlocked bool
}

// State is the visitor's exploration progress. Treat it as a value:
// Reduce never modifies the maps of the state it is given.
type State struct {
	Skills       map[string]SkillState
	Achievements map[string]AchievementState

	DiscoveredCount int
	TotalSkills     int     // fixed at creation
	Progress        float64 // 100 * DiscoveredCount / TotalSkills

	ActiveChallenge string
	ChallengesWon   int
	ChallengesLost  int

	PlayerPosition Vec3 // camera focus

	skillOrder       []string
	achievementOrder []string
}

// NewState builds the initial state from content: nothing discovered, nothing unlocked.
func NewState(content *world.Content) State {
	s := State{
		Skills:           make(map[string]SkillState, len(content.Skills)),
		Achievements:     make(map[string]AchievementState, len(content.Achievements)),
		TotalSkills:      len(content.Skills),
		skillOrder:       make([]string, 0, len(content.Skills)),
		achievementOrder: make([]string, 0, len(content.Achievements)),
	}
	for _, sk := range content.Skills {
		s.Skills[sk.ID] = SkillState{SkillRecord: sk}
		s.skillOrder = append(s.skillOrder, sk.ID)
	}
	for _, a := range content.Achievements {
		s.Achievements[a.ID] = AchievementState{AchievementRecord: a}
		s.achievementOrder = append(s.achievementOrder, a.ID)
	}
	return s
}

// SkillIDs returns skill ids in content order.
func (s State) SkillIDs() []string { return s.skillOrder }

// AchievementIDs returns achievement ids in content order.
func (s State) AchievementIDs() []string { return s.achievementOrder }

// Action is a state transition request. See Reduce.
type Action interface {
	isAction()
}

// DiscoverSkill marks a skill discovered. Unknown or already discovered ids are no-ops.
type DiscoverSkill struct{ SkillID string }

// UnlockAchievement marks an achievement unlocked. Unknown or already unlocked ids are no-ops.
type UnlockAchievement struct{ AchievementID string }

// StartChallenge sets the active challenge.
type StartChallenge struct{ ChallengeID string }

// CompleteChallenge clears the active challenge and tallies the outcome.
type CompleteChallenge struct{ Success bool }

// UpdatePlayerPosition moves the camera focus.
type UpdatePlayerPosition struct{ Position Vec3 }

func (DiscoverSkill) isAction()        {}
func (UnlockAchievement) isAction()    {}
func (StartChallenge) isAction()       {}
func (CompleteChallenge) isAction()    {}
func (UpdatePlayerPosition) isAction() {}

// Reduce applies an action and returns the next state.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case DiscoverSkill:
		sk, ok := s.Skills[a.SkillID]
		if !ok || sk.Discovered {
			return s
		}
		sk.Discovered = true
		s.Skills = cloneMap(s.Skills)
		s.Skills[a.SkillID] = sk
		s.DiscoveredCount++
		s.Progress = progress(s.DiscoveredCount, s.TotalSkills)
		return s

	case UnlockAchievement:
		ach, ok := s.Achievements[a.AchievementID]
		if !ok || ach.Unlocked {
			return s
		}
		ach.Unlocked = true
		s.Achievements = cloneMap(s.Achievements)
		s.Achievements[a.AchievementID] = ach
		return s

	case StartChallenge:
		s.ActiveChallenge = a.ChallengeID
		return s

	case CompleteChallenge:
		if s.ActiveChallenge == "" {
			return s
		}
		s.ActiveChallenge = ""
		if a.Success {
			s.ChallengesWon++
		} else {
			s.ChallengesLost++
		}
		return s

	case UpdatePlayerPosition:
		s.PlayerPosition = a.Position
		return s

	default:
		return s
	}
}

// DiscoveryTriggers returns the achievement ids earned by discovering skillID.
// It must be given the state returned by the DiscoverSkill reduction, not the one before it.
func DiscoveryTriggers(post State, skillID string) []string {
	sk, ok := post.Skills[skillID]
	if !ok || !sk.Discovered {
		return nil
	}

	var ids []string
	if post.DiscoveredCount == 1 {
		ids = append(ids, world.FirstDiscoveryID)
	}

	mastered := true
	for _, other := range post.Skills {
		if other.Category == sk.Category && !other.Discovered {
			mastered = false
			break
		}
	}
	if mastered {
		ids = append(ids, world.MasteryID(sk.Category))
	}
	return ids
}

func progress(discovered, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(discovered) / float64(total)
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
