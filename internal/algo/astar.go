// Package algo implements the colony logistics search algorithms: optimal
// pathfinding over the colony graph and task-to-agent assignment planning.
package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// pathNode for the pathfinding priority queue.
type pathNode struct {
	id     core.NodeID
	g      float64 // Cost so far
	f      float64 // g + h
	seq    int     // Insertion order, breaks remaining ties
	parent *pathNode
	index  int // heap index
}

// pathHeap orders by (f, g, insertion order) so expansion is deterministic.
type pathHeap []*pathNode

func (h pathHeap) Len() int { return len(h) }
func (h pathHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].g != h[j].g {
		return h[i].g < h[j].g
	}
	return h[i].seq < h[j].seq
}
func (h pathHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *pathHeap) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// AStarPath finds the cheapest path between two nodes. Missing endpoints
// yield a not-found result; start == goal yields a trivial zero-cost path.
func AStarPath(g *core.Graph, start, goal core.NodeID) core.PathResult {
	if !g.HasNode(start) || !g.HasNode(goal) {
		return core.NotFound()
	}
	if start == goal {
		return core.TrivialPath(start)
	}

	open := &pathHeap{}
	heap.Init(open)

	seq := 0
	heap.Push(open, &pathNode{id: start, g: 0, f: g.Heuristic(start, goal), seq: seq})

	gScore := map[core.NodeID]float64{start: 0}
	closed := make(map[core.NodeID]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)

		if current.id == goal {
			return core.PathResult{
				Path:  reconstructPath(current),
				Cost:  current.g,
				Found: true,
			}
		}

		if closed[current.id] {
			continue
		}
		closed[current.id] = true

		for _, e := range g.Neighbors(current.id) {
			if closed[e.To] {
				continue
			}
			tentative := current.g + e.Cost
			if best, ok := gScore[e.To]; ok && tentative >= best {
				continue
			}
			gScore[e.To] = tentative
			seq++
			heap.Push(open, &pathNode{
				id:     e.To,
				g:      tentative,
				f:      tentative + g.Heuristic(e.To, goal),
				seq:    seq,
				parent: current,
			})
		}
	}

	return core.NotFound()
}

func reconstructPath(node *pathNode) []core.NodeID {
	var path []core.NodeID
	for n := node; n != nil; n = n.parent {
		path = append([]core.NodeID{n.id}, path...)
	}
	return path
}
