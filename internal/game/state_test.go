package game

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/cosmicfolio/cosmicfolio/internal/world"
)

func TestNewStateEmpty(t *testing.T) {
	s := NewState(loadPortfolio(t))
	if s.DiscoveredCount != 0 || s.Progress != 0 {
		t.Errorf("fresh state should have no progress:\n%s", spew.Sdump(s))
	}
	if s.TotalSkills != 4 {
		t.Errorf("expected 4 skills, got %d", s.TotalSkills)
	}
	want := []string{"react", "typescript", "nodejs", "python"}
	if !reflect.DeepEqual(s.SkillIDs(), want) {
		t.Errorf("skill order: want %v, got %v", want, s.SkillIDs())
	}
}

func TestReduceDiscoverIdempotent(t *testing.T) {
	s0 := NewState(loadPortfolio(t))
	s1 := Reduce(s0, DiscoverSkill{SkillID: "react"})
	s2 := Reduce(s1, DiscoverSkill{SkillID: "react"})

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("second discovery changed state:\n%s\nvs\n%s", spew.Sdump(s1), spew.Sdump(s2))
	}
	if s1.DiscoveredCount != 1 || s1.Progress != 25 {
		t.Errorf("expected 1 discovered at 25%%, got %d at %f", s1.DiscoveredCount, s1.Progress)
	}
	if s0.Skills["react"].Discovered {
		t.Error("reduce modified the input state")
	}
}

func TestReduceMissingIDsAreNoOps(t *testing.T) {
	s0 := NewState(loadPortfolio(t))
	for _, a := range []Action{
		DiscoverSkill{SkillID: "cobol"},
		UnlockAchievement{AchievementID: "nope"},
		CompleteChallenge{Success: true},
	} {
		if got := Reduce(s0, a); !reflect.DeepEqual(got, s0) {
			t.Errorf("%T changed state:\n%s", a, spew.Sdump(got))
		}
	}
}

func TestReduceProgressInvariant(t *testing.T) {
	s := NewState(loadPortfolio(t))
	last := s.Progress
	for _, id := range []string{"python", "react", "python", "nodejs", "typescript"} {
		s = Reduce(s, DiscoverSkill{SkillID: id})

		count := 0
		for _, sk := range s.Skills {
			if sk.Discovered {
				count++
			}
		}
		if count != s.DiscoveredCount {
			t.Fatalf("count %d does not match discovered flags %d", s.DiscoveredCount, count)
		}
		if want := 100 * float64(count) / float64(s.TotalSkills); s.Progress != want {
			t.Fatalf("progress %f, want %f", s.Progress, want)
		}
		if s.Progress < last {
			t.Fatalf("progress went down from %f to %f", last, s.Progress)
		}
		last = s.Progress
	}
	if s.Progress != 100 {
		t.Errorf("expected 100%% after discovering everything, got %f", s.Progress)
	}
}

func TestReduceZeroSkills(t *testing.T) {
	s := NewState(&world.Content{})
	s = Reduce(s, DiscoverSkill{SkillID: "react"})
	if s.Progress != 0 || s.TotalSkills != 0 {
		t.Errorf("expected zero progress with no skills:\n%s", spew.Sdump(s))
	}
}

func TestReduceChallenges(t *testing.T) {
	s := NewState(loadPortfolio(t))
	s = Reduce(s, StartChallenge{ChallengeID: "trivia"})
	if s.ActiveChallenge != "trivia" {
		t.Fatalf("expected active challenge, got %q", s.ActiveChallenge)
	}
	s = Reduce(s, CompleteChallenge{Success: true})
	s = Reduce(s, StartChallenge{ChallengeID: "speedrun"})
	s = Reduce(s, CompleteChallenge{Success: false})
	s = Reduce(s, CompleteChallenge{Success: false})

	if s.ActiveChallenge != "" || s.ChallengesWon != 1 || s.ChallengesLost != 1 {
		t.Errorf("unexpected challenge tally:\n%s", spew.Sdump(s))
	}
}

func TestReducePlayerPosition(t *testing.T) {
	s := Reduce(NewState(loadPortfolio(t)), UpdatePlayerPosition{Position: Vec3{1, 2, 3}})
	if s.PlayerPosition != (Vec3{1, 2, 3}) {
		t.Errorf("got %+v", s.PlayerPosition)
	}
}

func TestTrackerFrontendMastery(t *testing.T) {
	tr := NewTracker(loadPortfolio(t))

	ok, unlocked := tr.DiscoverSkill("react")
	if !ok || !reflect.DeepEqual(unlocked, []string{"first-discovery"}) {
		t.Fatalf("first discovery: ok=%v unlocked=%v", ok, unlocked)
	}

	ok, unlocked = tr.DiscoverSkill("typescript")
	if !ok || !reflect.DeepEqual(unlocked, []string{"frontend-master"}) {
		t.Fatalf("second frontend skill: ok=%v unlocked=%v", ok, unlocked)
	}

	ok, unlocked = tr.DiscoverSkill("typescript")
	if ok || unlocked != nil {
		t.Errorf("repeat discovery should do nothing, got ok=%v unlocked=%v", ok, unlocked)
	}

	st := tr.State()
	if !st.Achievements["frontend-master"].Unlocked || st.Achievements["backend-master"].Unlocked {
		t.Errorf("unexpected achievements:\n%s", spew.Sdump(st.Achievements))
	}
	if tr.Progress() != 50 {
		t.Errorf("expected 50%% progress, got %f", tr.Progress())
	}

	got := tr.UnlockedAchievements()
	if len(got) != 2 || got[0].ID != "first-discovery" || got[1].ID != "frontend-master" {
		t.Errorf("unlocked order:\n%s", spew.Sdump(got))
	}
	if ds := tr.DiscoveredSkills(); len(ds) != 2 || ds[0].ID != "react" {
		t.Errorf("discovered skills:\n%s", spew.Sdump(ds))
	}
}

func TestTrackerUnlockUnknown(t *testing.T) {
	tr := NewTracker(loadPortfolio(t))
	if tr.UnlockAchievement("mystery") {
		t.Error("unknown achievement should not unlock")
	}
	if !tr.UnlockAchievement("backend-master") || tr.UnlockAchievement("backend-master") {
		t.Error("expected exactly one successful unlock")
	}
}

func TestDiscoveryTriggersNeedPostState(t *testing.T) {
	pre := NewState(loadPortfolio(t))
	if ids := DiscoveryTriggers(pre, "react"); ids != nil {
		t.Errorf("pre-discovery state should earn nothing, got %v", ids)
	}
	post := Reduce(pre, DiscoverSkill{SkillID: "react"})
	if ids := DiscoveryTriggers(post, "react"); !reflect.DeepEqual(ids, []string{"first-discovery"}) {
		t.Errorf("got %v", ids)
	}
}
