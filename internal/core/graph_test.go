package core

import (
	"math"
	"testing"
)

func TestAddEdge_Symmetric(t *testing.T) {
	g := NewGraph()
	g.AddNode("a", nil)
	g.AddNode("b", nil)
	g.AddEdge("a", "b", 3.0)

	forward, backward := false, false
	for _, e := range g.Neighbors("a") {
		if e.To == "b" && e.Cost == 3.0 {
			forward = true
		}
	}
	for _, e := range g.Neighbors("b") {
		if e.To == "a" && e.Cost == 3.0 {
			backward = true
		}
	}
	if !forward || !backward {
		t.Errorf("bidirectional edge not symmetric: forward=%v backward=%v", forward, backward)
	}
}

func TestHeuristic_MissingPositions(t *testing.T) {
	g := NewGraph()
	g.AddNode("a", &Pos{X: 0, Y: 0})
	g.AddNode("b", nil)

	if h := g.Heuristic("a", "b"); h != 0 {
		t.Errorf("expected zero heuristic without positions, got %v", h)
	}
	if h := g.Heuristic("a", "missing"); h != 0 {
		t.Errorf("expected zero heuristic for unknown node, got %v", h)
	}
}

func TestHeuristic_Euclidean(t *testing.T) {
	g := NewGraph()
	g.AddNode("a", &Pos{X: 0, Y: 0})
	g.AddNode("b", &Pos{X: 3, Y: 4})

	if h := g.Heuristic("a", "b"); math.Abs(h-5.0) > 1e-9 {
		t.Errorf("expected heuristic 5, got %v", h)
	}
}

func TestClosestNode(t *testing.T) {
	g := DefaultGraph()

	n, ok := g.ClosestNode(Pos{X: 4.2, Y: 3.9})
	if !ok || n != NodeStorage {
		t.Errorf("expected storage, got %s (ok=%v)", n, ok)
	}
}

func TestClosestNode_TieBreaksFirstInOrder(t *testing.T) {
	g := NewGraph()
	g.AddNode("zz", &Pos{X: 1, Y: 0})
	g.AddNode("aa", &Pos{X: -1, Y: 0})

	// Both are distance 1 from the origin; the first in sorted order wins.
	n, ok := g.ClosestNode(Pos{X: 0, Y: 0})
	if !ok || n != "aa" {
		t.Errorf("expected aa, got %s (ok=%v)", n, ok)
	}
}

func TestClosestNode_NoPositions(t *testing.T) {
	g := NewGraph()
	g.AddNode("a", nil)

	if _, ok := g.ClosestNode(Pos{X: 0, Y: 0}); ok {
		t.Error("expected no closest node when nothing has a position")
	}
}

// The default topology must honor the authoring constraint the heuristic
// relies on: no edge cheaper than the straight-line distance it spans.
func TestDefaultGraph_EdgeCostsCoverDistance(t *testing.T) {
	g := DefaultGraph()

	if len(g.Nodes) != 6 {
		t.Fatalf("expected 6 nodes, got %d", len(g.Nodes))
	}
	for from, edges := range g.Edges {
		for _, e := range edges {
			a, b := g.Nodes[from], g.Nodes[e.To]
			if a.Pos == nil || b.Pos == nil {
				t.Fatalf("default graph node without position")
			}
			if d := a.Pos.Dist(*b.Pos); e.Cost < d-1e-9 {
				t.Errorf("edge %s->%s cost %v below distance %v", from, e.To, e.Cost, d)
			}
		}
	}
}

func TestScenarioValidate(t *testing.T) {
	sc := NewScenario()
	sc.Tasks = []*Task{
		{ID: "a", Priority: 1, Duration: 1},
		{ID: "a", Priority: 2, Duration: 2},
	}
	if err := sc.Validate(); err == nil {
		t.Error("expected duplicate task id to fail validation")
	}

	sc = NewScenario()
	sc.Tasks = []*Task{{ID: "a", Priority: 1, Duration: -1}}
	if err := sc.Validate(); err == nil {
		t.Error("expected negative duration to fail validation")
	}

	sc = NewScenario()
	sc.Graph.AddDirectedEdge(NodeStorage, NodeEngineering, -1)
	if err := sc.Validate(); err == nil {
		t.Error("expected negative edge cost to fail validation")
	}
}

func TestAgentStartNode(t *testing.T) {
	g := DefaultGraph()

	cases := []struct {
		name  string
		agent Agent
		want  NodeID
	}{
		{"named node", Agent{ID: 0, Node: NodeStorage}, NodeStorage},
		{"coordinates", Agent{ID: 1, Pos: &Pos{X: 7.8, Y: 2.1}}, NodeSectionAlpha},
		{"unknown node name", Agent{ID: 2, Node: "nowhere"}, NodeCommandCenter},
		{"no location", Agent{ID: 3}, NodeCommandCenter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.agent.StartNode(g, NodeCommandCenter); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}
