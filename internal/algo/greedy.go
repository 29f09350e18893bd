package algo

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
	"github.com/elektrokombinacija/colony-logistics/internal/metrics"
)

// greedyAssign is the deterministic last-resort assignment: tasks in
// priority-descending order, each to whichever agent reaches it cheapest
// from its current modeled position. Always completes for a consistent
// task/agent set.
func greedyAssign(c *searchContext) *assignState {
	st := c.initialState()
	if len(c.sc.Agents) == 0 {
		return st
	}

	tasks := make([]*core.Task, len(c.sc.Tasks))
	copy(tasks, c.sc.Tasks)
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority > tasks[j].Priority
	})

	for _, t := range tasks {
		bestAgent := -1
		bestCost := math.Inf(1)
		var bestPath []core.NodeID

		for _, a := range c.sc.Agents {
			travelCost, path := c.travel(st.locs[a.ID], t)
			cost := travelCost + float64(t.Duration)
			if cost < bestCost {
				bestCost = cost
				bestAgent = a.ID
				bestPath = path
			}
		}

		start := core.RoundTurns(st.elapsed)
		completion := start + core.RoundTurns(bestCost)
		if completion < start {
			completion = start
		}

		st.assigned[t.ID] = true
		st.locs[bestAgent] = c.afterTask(t)
		st.elapsed += bestCost
		st.order = append(st.order, core.TaskAssignment{
			Task:           t,
			AgentID:        bestAgent,
			StartTime:      start,
			CompletionTime: completion,
			ResourceCost:   t.Cost(),
			Path:           bestPath,
		})
	}

	return st
}

// GreedyPlanner exposes the fallback assignment as a strategy of its own,
// mainly for benchmarking against the search planners.
type GreedyPlanner struct {
	PathAlgo PathAlgo
	Log      *slog.Logger

	met *metrics.Metrics
}

// NewGreedyPlanner creates a greedy planner.
func NewGreedyPlanner() *GreedyPlanner {
	return &GreedyPlanner{met: metrics.New()}
}

func (p *GreedyPlanner) Name() string { return "greedy" }

// Plan assigns every task greedily in one pass.
func (p *GreedyPlanner) Plan(sc *core.Scenario) *core.Plan {
	started := time.Now()
	plan := core.NewPlan(p.Name())
	defer func() {
		p.met.PlanDuration.WithLabelValues(p.Name()).Observe(time.Since(started).Seconds())
		p.met.PlanCost.WithLabelValues(p.Name()).Observe(plan.TotalCost)
	}()

	if len(sc.Tasks) == 0 || len(sc.Agents) == 0 {
		p.met.PlansTotal.WithLabelValues(p.Name(), "empty").Inc()
		return plan
	}

	c := newSearchContext(sc, p.PathAlgo, p.Log)
	p.met.PlansTotal.WithLabelValues(p.Name(), "ok").Inc()
	return finishPlan(plan, greedyAssign(c))
}
