package game

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestSkillGraphEdges(t *testing.T) {
	content := loadPortfolio(t)
	g := NewSkillGraph(content)

	if got := g.Nodes(); len(got) != 4 {
		t.Fatalf("expected 4 nodes, got %v", got)
	}
	if got := g.Neighbors("react"); !reflect.DeepEqual(got, []string{"typescript", "nodejs"}) {
		t.Errorf("react neighbors: %v", got)
	}

	s := NewState(content)
	if len(g.VisibleEdges(s)) != 0 {
		t.Error("no edges should be visible before any discovery")
	}
	if edges := g.Edges(s); len(edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(edges))
	}

	s = Reduce(s, DiscoverSkill{SkillID: "nodejs"})
	visible := g.VisibleEdges(s)
	if len(visible) != 2 {
		t.Fatalf("nodejs touches two edges, got:\n%s", spew.Sdump(visible))
	}
	for _, e := range visible {
		if e.Kind != EdgeDiscovered {
			t.Errorf("visible edge %s-%s has kind %d", e.From, e.To, e.Kind)
		}
		if e.From != "nodejs" && e.To != "nodejs" {
			t.Errorf("edge %s-%s should not be visible", e.From, e.To)
		}
	}
}
