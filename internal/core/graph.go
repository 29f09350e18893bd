// Package core defines domain models for colony logistics planning.
package core

import (
	"math"
	"sort"
)

// NodeID is a named location in the colony graph.
type NodeID string

// Pos is a 2D position in colony coordinates.
type Pos struct {
	X, Y float64
}

// Dist returns the Euclidean distance to another position.
func (p Pos) Dist(o Pos) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Node is a location in the colony graph. Pos is optional: nodes without a
// position still participate in pathfinding but contribute a zero heuristic.
type Node struct {
	ID  NodeID
	Pos *Pos
}

// Edge connects two nodes with a non-negative traversal cost.
type Edge struct {
	From, To NodeID
	Cost     float64
}

// Graph is the weighted colony map used for pathfinding.
//
// Data-authoring constraint: for the Euclidean heuristic to stay admissible,
// no edge may be cheaper than the straight-line distance between its
// endpoints. The graph does not enforce this; authors of topologies must.
type Graph struct {
	Nodes map[NodeID]*Node
	Edges map[NodeID][]Edge // Adjacency list
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[NodeID]*Node),
		Edges: make(map[NodeID][]Edge),
	}
}

// AddNode adds a node, optionally with a position.
func (g *Graph) AddNode(id NodeID, pos *Pos) {
	g.Nodes[id] = &Node{ID: id, Pos: pos}
	if g.Edges[id] == nil {
		g.Edges[id] = []Edge{}
	}
}

// AddEdge adds a bidirectional edge: two directed entries with equal cost.
func (g *Graph) AddEdge(from, to NodeID, cost float64) {
	g.Edges[from] = append(g.Edges[from], Edge{From: from, To: to, Cost: cost})
	g.Edges[to] = append(g.Edges[to], Edge{From: to, To: from, Cost: cost})
}

// AddDirectedEdge adds a one-way edge. Asymmetric costs are only possible
// through this method.
func (g *Graph) AddDirectedEdge(from, to NodeID, cost float64) {
	g.Edges[from] = append(g.Edges[from], Edge{From: from, To: to, Cost: cost})
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.Nodes[id]
	return ok
}

// Neighbors returns the outgoing edges of a node in insertion order.
func (g *Graph) Neighbors(id NodeID) []Edge {
	return g.Edges[id]
}

// Heuristic estimates the remaining cost from n to goal. It returns the
// Euclidean distance when both nodes carry positions and 0 otherwise; both
// are admissible under the edge-cost authoring constraint above.
func (g *Graph) Heuristic(n, goal NodeID) float64 {
	a := g.Nodes[n]
	b := g.Nodes[goal]
	if a == nil || b == nil || a.Pos == nil || b.Pos == nil {
		return 0
	}
	return a.Pos.Dist(*b.Pos)
}

// ClosestNode returns the positioned node nearest to pos. Ties break toward
// the first minimum in sorted node order so results are reproducible. The
// second return is false when no node has a position.
func (g *Graph) ClosestNode(pos Pos) (NodeID, bool) {
	ids := g.sortedNodeIDs()

	var best NodeID
	bestDist := math.Inf(1)
	found := false
	for _, id := range ids {
		n := g.Nodes[id]
		if n.Pos == nil {
			continue
		}
		d := n.Pos.Dist(pos)
		if d < bestDist {
			bestDist = d
			best = id
			found = true
		}
	}
	return best, found
}

// sortedNodeIDs returns node IDs in lexicographic order for deterministic
// iteration.
func (g *Graph) sortedNodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Default topology node names.
const (
	NodeCommandCenter NodeID = "command_center"
	NodeLifeSupport   NodeID = "life_support"
	NodeEngineering   NodeID = "engineering"
	NodeStorage       NodeID = "storage"
	NodeSectionAlpha  NodeID = "section_alpha"
	NodeSectionBeta   NodeID = "section_beta"
)

// DefaultGraph builds the fixed six-node colony topology used when the
// caller supplies none. Every edge cost is at least the Euclidean distance
// between its endpoints, keeping the heuristic admissible.
func DefaultGraph() *Graph {
	g := NewGraph()

	g.AddNode(NodeCommandCenter, &Pos{X: 0, Y: 0})
	g.AddNode(NodeLifeSupport, &Pos{X: 0, Y: 4})
	g.AddNode(NodeEngineering, &Pos{X: 4, Y: 0})
	g.AddNode(NodeStorage, &Pos{X: 4, Y: 4})
	g.AddNode(NodeSectionAlpha, &Pos{X: 8, Y: 2})
	g.AddNode(NodeSectionBeta, &Pos{X: -4, Y: 2})

	g.AddEdge(NodeCommandCenter, NodeLifeSupport, 4.0)
	g.AddEdge(NodeCommandCenter, NodeEngineering, 4.0)
	g.AddEdge(NodeCommandCenter, NodeStorage, 6.0)
	g.AddEdge(NodeLifeSupport, NodeStorage, 4.0)
	g.AddEdge(NodeEngineering, NodeStorage, 4.0)
	g.AddEdge(NodeEngineering, NodeSectionAlpha, 5.0)
	g.AddEdge(NodeStorage, NodeSectionAlpha, 5.0)
	g.AddEdge(NodeCommandCenter, NodeSectionBeta, 5.0)
	g.AddEdge(NodeLifeSupport, NodeSectionBeta, 5.0)

	return g
}
