package core

// Agent is a colonist as seen by the planner: an id plus a resolved or raw
// location. Exactly one of Node / Pos is normally set; both may be empty for
// agents the colony state could not place, which degrade to the scenario's
// default node.
type Agent struct {
	ID   int
	Node NodeID // Graph node, if the location maps to one
	Pos  *Pos   // Raw coordinates, if not
}

// StartNode resolves the agent's starting graph node. Agents with a raw
// position snap to the nearest positioned node; agents with no location at
// all fall back to def.
func (a *Agent) StartNode(g *Graph, def NodeID) NodeID {
	if a.Node != "" && g.HasNode(a.Node) {
		return a.Node
	}
	if a.Pos != nil {
		if n, ok := g.ClosestNode(*a.Pos); ok {
			return n
		}
	}
	return def
}
