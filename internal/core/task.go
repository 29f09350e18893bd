package core

import "math"

// TaskID is a unique task identifier within one planning call.
type TaskID string

// Task represents work to be performed somewhere in the colony.
type Task struct {
	ID           TaskID
	Location     Pos
	Requirements map[string]any // Opaque payload, forwarded unchanged
	Priority     int            // Higher = more urgent
	Duration     int            // Estimated turns to complete
}

// ResourceDelta maps resource names to signed per-assignment changes.
type ResourceDelta map[string]float64

// Per-turn resource drain while an agent works a task.
const (
	OxygenPerTurn   = 0.5
	CaloriesPerTurn = 1.0
)

// Cost returns the resource delta for completing the task, scaled by its
// duration. Deltas are negative: the turn orchestrator deducts them.
func (t *Task) Cost() ResourceDelta {
	d := float64(t.Duration)
	return ResourceDelta{
		"oxygen":   -OxygenPerTurn * d,
		"calories": -CaloriesPerTurn * d,
	}
}

// TaskAssignment binds a task to an agent with execution details.
type TaskAssignment struct {
	Task           *Task
	AgentID        int
	StartTime      int
	CompletionTime int
	ResourceCost   ResourceDelta
	Path           []NodeID // Route the agent is modeled as traversing
}

// RoundTurns converts a fractional cost to whole turns. All start/completion
// arithmetic goes through here so rounding stays consistent.
func RoundTurns(cost float64) int {
	return int(math.Round(cost))
}
