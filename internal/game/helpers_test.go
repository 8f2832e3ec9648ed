package game

import (
	"testing"

	"github.com/cosmicfolio/cosmicfolio/assets"
	"github.com/cosmicfolio/cosmicfolio/internal/config"
	"github.com/cosmicfolio/cosmicfolio/internal/world"
)

func loadPortfolio(t *testing.T) *world.Content {
	t.Helper()
	content, err := world.LoadContent(assets.Portfolio)
	if err != nil {
		t.Fatalf("load embedded content: %v", err)
	}
	return content
}

// memNotified is an in-memory notified set that counts additions.
type memNotified struct {
	ids  map[string]bool
	adds []string
}

func newMemNotified(ids ...string) *memNotified {
	n := &memNotified{ids: make(map[string]bool)}
	for _, id := range ids {
		n.ids[id] = true
	}
	return n
}

func (n *memNotified) Contains(id string) bool { return n.ids[id] }

func (n *memNotified) Add(id string) {
	n.ids[id] = true
	n.adds = append(n.adds, id)
}

func newTestScene(t *testing.T, notified Notified) *Scene {
	t.Helper()
	s, err := NewScene(loadPortfolio(t), config.Default(), notified)
	if err != nil {
		t.Fatalf("new scene: %v", err)
	}
	return s
}
