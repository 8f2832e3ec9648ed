package game

import "github.com/cosmicfolio/cosmicfolio/internal/world"

// EdgeKind tells whether a connection is revealed.
type EdgeKind uint8

const (
	EdgeUndiscovered EdgeKind = iota // neither endpoint discovered; hidden
	EdgeDiscovered                   // at least one endpoint discovered; drawn
)

// Edge is a typed connection between two skills.
type Edge struct {
	From, To string
	Kind     EdgeKind
}

// SkillGraph is the static constellation: skill nodes and their connections.
type SkillGraph struct {
	nodes []string
	links [][2]string
	adj   map[string][]string
}

// NewSkillGraph builds the graph from content. Connections are assumed validated.
func NewSkillGraph(content *world.Content) *SkillGraph {
	g := &SkillGraph{
		nodes: make([]string, 0, len(content.Skills)),
		adj:   make(map[string][]string, len(content.Skills)),
	}
	for _, sk := range content.Skills {
		g.nodes = append(g.nodes, sk.ID)
	}
	for _, c := range content.Connections {
		if len(c) != 2 {
			continue
		}
		from, to := c[0], c[1]
		g.links = append(g.links, [2]string{from, to})
		g.adj[from] = append(g.adj[from], to)
		g.adj[to] = append(g.adj[to], from)
	}
	return g
}

// Nodes returns skill ids in content order.
func (g *SkillGraph) Nodes() []string { return g.nodes }

// Neighbors returns the skills connected to id.
func (g *SkillGraph) Neighbors(id string) []string { return g.adj[id] }

// Edges types every connection against the discovery state.
func (g *SkillGraph) Edges(s State) []Edge {
	out := make([]Edge, 0, len(g.links))
	for _, l := range g.links {
		kind := EdgeUndiscovered
		if s.Skills[l[0]].Discovered || s.Skills[l[1]].Discovered {
			kind = EdgeDiscovered
		}
		out = append(out, Edge{From: l[0], To: l[1], Kind: kind})
	}
	return out
}

// VisibleEdges returns only the revealed connections.
func (g *SkillGraph) VisibleEdges(s State) []Edge {
	var out []Edge
	for _, e := range g.Edges(s) {
		if e.Kind == EdgeDiscovered {
			out = append(out, e)
		}
	}
	return out
}
