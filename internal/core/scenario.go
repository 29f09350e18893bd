package core

import "fmt"

// Scenario bundles one planning call's inputs: the colony map, the agents
// with their current positions, and the tasks to assign. Planners read it
// and never mutate it.
type Scenario struct {
	Graph       *Graph
	Agents      []*Agent
	Tasks       []*Task
	DefaultNode NodeID // Where unplaceable agents are assumed to stand
}

// NewScenario creates a scenario over the default colony topology.
func NewScenario() *Scenario {
	return &Scenario{
		Graph:       DefaultGraph(),
		DefaultNode: NodeCommandCenter,
	}
}

// Validate checks scenario consistency: task ids unique per call, edge costs
// non-negative, default node present when agents need it.
func (sc *Scenario) Validate() error {
	seen := make(map[TaskID]bool, len(sc.Tasks))
	for _, t := range sc.Tasks {
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Duration < 0 {
			return fmt.Errorf("task %q has negative duration %d", t.ID, t.Duration)
		}
	}
	for from, edges := range sc.Graph.Edges {
		for _, e := range edges {
			if e.Cost < 0 {
				return fmt.Errorf("edge %s->%s has negative cost %v", from, e.To, e.Cost)
			}
		}
	}
	if len(sc.Agents) > 0 && sc.DefaultNode != "" && !sc.Graph.HasNode(sc.DefaultNode) {
		return fmt.Errorf("default node %q not in graph", sc.DefaultNode)
	}
	return nil
}

// TaskByID finds a task by id.
func (sc *Scenario) TaskByID(id TaskID) *Task {
	for _, t := range sc.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AgentByID finds an agent by id.
func (sc *Scenario) AgentByID(id int) *Agent {
	for _, a := range sc.Agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}
