package algo

import (
	"math"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// IDAStarPath finds the cheapest path between two nodes by iterative
// deepening on the f-score bound. It returns the same-cost result as
// AStarPath on any graph, trading repeated expansion for O(path) memory.
// Recursion depth is bounded by path length; Go stacks grow on demand.
func IDAStarPath(g *core.Graph, start, goal core.NodeID) core.PathResult {
	if !g.HasNode(start) || !g.HasNode(goal) {
		return core.NotFound()
	}
	if start == goal {
		return core.TrivialPath(start)
	}

	bound := g.Heuristic(start, goal)
	path := []core.NodeID{start}
	onPath := map[core.NodeID]bool{start: true}

	for {
		found, cost, next := idaSearch(g, goal, path[len(path)-1], 0, bound, &path, onPath)
		if found {
			result := make([]core.NodeID, len(path))
			copy(result, path)
			return core.PathResult{Path: result, Cost: cost, Found: true}
		}
		if math.IsInf(next, 1) {
			return core.NotFound()
		}
		bound = next
	}
}

// idaSearch performs one depth-limited pass. It returns either the goal cost
// or the minimum f-score that exceeded the bound, to seed the next pass.
func idaSearch(
	g *core.Graph,
	goal core.NodeID,
	node core.NodeID,
	gCost, bound float64,
	path *[]core.NodeID,
	onPath map[core.NodeID]bool,
) (found bool, cost, nextBound float64) {
	f := gCost + g.Heuristic(node, goal)
	if f > bound {
		return false, 0, f
	}
	if node == goal {
		return true, gCost, 0
	}

	min := math.Inf(1)
	for _, e := range g.Neighbors(node) {
		if onPath[e.To] {
			continue // Cycle
		}

		*path = append(*path, e.To)
		onPath[e.To] = true

		found, cost, next := idaSearch(g, goal, e.To, gCost+e.Cost, bound, path, onPath)
		if found {
			return true, cost, 0
		}
		if next < min {
			min = next
		}

		*path = (*path)[:len(*path)-1]
		delete(onPath, e.To)
	}

	return false, 0, min
}
