package algo

import (
	"fmt"
	"math"
	"testing"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// createGrid creates an n x n grid graph with unit edges.
func createGrid(n int) *core.Graph {
	g := core.NewGraph()

	id := func(x, y int) core.NodeID {
		return core.NodeID(fmt.Sprintf("n_%d_%d", x, y))
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			g.AddNode(id(x, y), &core.Pos{X: float64(x), Y: float64(y)})
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x < n-1 {
				g.AddEdge(id(x, y), id(x+1, y), 1.0)
			}
			if y < n-1 {
				g.AddEdge(id(x, y), id(x, y+1), 1.0)
			}
		}
	}
	return g
}

// pathEdgeSum recomputes a path's cost from edge weights.
func pathEdgeSum(t *testing.T, g *core.Graph, path []core.NodeID) float64 {
	t.Helper()
	sum := 0.0
	for i := 0; i < len(path)-1; i++ {
		found := false
		for _, e := range g.Neighbors(path[i]) {
			if e.To == path[i+1] {
				sum += e.Cost
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("path uses nonexistent edge %s->%s", path[i], path[i+1])
		}
	}
	return sum
}

func TestAStarPath_SameNode(t *testing.T) {
	g := core.DefaultGraph()
	res := AStarPath(g, core.NodeStorage, core.NodeStorage)

	if !res.Found {
		t.Fatal("expected trivial path to be found")
	}
	if len(res.Path) != 1 || res.Path[0] != core.NodeStorage {
		t.Errorf("expected path [storage], got %v", res.Path)
	}
	if res.Cost != 0 {
		t.Errorf("expected zero cost, got %v", res.Cost)
	}
}

func TestAStarPath_MissingNode(t *testing.T) {
	g := core.DefaultGraph()

	if res := AStarPath(g, "nonexistent", core.NodeStorage); res.Found {
		t.Error("expected not-found for missing start")
	}
	if res := AStarPath(g, core.NodeStorage, "nonexistent"); res.Found {
		t.Error("expected not-found for missing goal")
	}
}

func TestAStarPath_IsolatedNode(t *testing.T) {
	g := core.DefaultGraph()
	g.AddNode("isolated", &core.Pos{X: 100, Y: 100})

	res := AStarPath(g, "isolated", core.NodeStorage)
	if res.Found {
		t.Error("expected not-found from isolated node")
	}
	if len(res.Path) != 0 || res.Cost != 0 {
		t.Errorf("expected empty zero-cost result, got %+v", res)
	}
}

func TestAStarPath_CostEqualsEdgeSum(t *testing.T) {
	g := core.DefaultGraph()
	ids := []core.NodeID{
		core.NodeCommandCenter, core.NodeLifeSupport, core.NodeEngineering,
		core.NodeStorage, core.NodeSectionAlpha, core.NodeSectionBeta,
	}

	for _, from := range ids {
		for _, to := range ids {
			res := AStarPath(g, from, to)
			if !res.Found {
				t.Fatalf("no path %s->%s on connected default graph", from, to)
			}
			if sum := pathEdgeSum(t, g, res.Path); math.Abs(sum-res.Cost) > 1e-9 {
				t.Errorf("%s->%s: cost %v != edge sum %v", from, to, res.Cost, sum)
			}
		}
	}
}

func TestAStarAndIDAStarAgree(t *testing.T) {
	graphs := map[string]*core.Graph{
		"default": core.DefaultGraph(),
		"grid4":   createGrid(4),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			ids := g.Nodes
			for from := range ids {
				for to := range ids {
					a := AStarPath(g, from, to)
					b := IDAStarPath(g, from, to)

					if a.Found != b.Found {
						t.Fatalf("%s->%s: A* found=%v, IDA* found=%v", from, to, a.Found, b.Found)
					}
					if a.Found && math.Abs(a.Cost-b.Cost) > 1e-9 {
						t.Errorf("%s->%s: A* cost %v, IDA* cost %v", from, to, a.Cost, b.Cost)
					}
				}
			}
		})
	}
}

func TestHeuristicNeverOverestimates(t *testing.T) {
	g := core.DefaultGraph()
	for from := range g.Nodes {
		for to := range g.Nodes {
			res := AStarPath(g, from, to)
			if !res.Found {
				continue
			}
			if h := g.Heuristic(from, to); h > res.Cost+1e-9 {
				t.Errorf("heuristic %s->%s = %v exceeds true cost %v", from, to, h, res.Cost)
			}
		}
	}
}

func TestAStarPath_DirectedEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a", nil)
	g.AddNode("b", nil)
	g.AddDirectedEdge("a", "b", 2.0)

	if res := AStarPath(g, "a", "b"); !res.Found || res.Cost != 2.0 {
		t.Errorf("expected forward path at cost 2, got %+v", res)
	}
	if res := AStarPath(g, "b", "a"); res.Found {
		t.Error("expected no reverse path over a directed edge")
	}
}

func TestAStarPath_Deterministic(t *testing.T) {
	g := createGrid(5)
	first := AStarPath(g, "n_0_0", "n_4_4")

	for i := 0; i < 10; i++ {
		next := AStarPath(g, "n_0_0", "n_4_4")
		if len(next.Path) != len(first.Path) {
			t.Fatalf("run %d: path length changed", i)
		}
		for j := range next.Path {
			if next.Path[j] != first.Path[j] {
				t.Fatalf("run %d: path diverged at %d: %v vs %v", i, j, next.Path, first.Path)
			}
		}
	}
}
