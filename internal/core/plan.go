package core

import "github.com/google/uuid"

// Plan is an ordered assignment sequence produced by one planning call.
type Plan struct {
	ID          string
	Planner     string // Name of the strategy that produced it
	Assignments []TaskAssignment
	TotalCost   float64
	Fallback    bool // True when the greedy fallback substituted for search
}

// NewPlan creates an empty plan tagged with the producing strategy.
func NewPlan(planner string) *Plan {
	return &Plan{
		ID:          uuid.NewString(),
		Planner:     planner,
		Assignments: []TaskAssignment{},
	}
}

// Makespan returns the latest completion time across assignments.
func (p *Plan) Makespan() int {
	max := 0
	for _, a := range p.Assignments {
		if a.CompletionTime > max {
			max = a.CompletionTime
		}
	}
	return max
}

// ResourceTotals sums the per-assignment resource deltas.
func (p *Plan) ResourceTotals() ResourceDelta {
	totals := make(ResourceDelta)
	for _, a := range p.Assignments {
		for res, delta := range a.ResourceCost {
			totals[res] += delta
		}
	}
	return totals
}

// Covers reports whether the plan assigns every given task exactly once.
func (p *Plan) Covers(tasks []*Task) bool {
	if len(p.Assignments) != len(tasks) {
		return false
	}
	seen := make(map[TaskID]bool, len(p.Assignments))
	for _, a := range p.Assignments {
		if seen[a.Task.ID] {
			return false
		}
		seen[a.Task.ID] = true
	}
	for _, t := range tasks {
		if !seen[t.ID] {
			return false
		}
	}
	return true
}
