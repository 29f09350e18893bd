package algo

import (
	"container/heap"
	"log/slog"
	"time"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
	"github.com/elektrokombinacija/colony-logistics/internal/metrics"
)

// AStarPlanner runs optimal A* over the assignment state space. Visited
// states are keyed including elapsed time, so time-diverged states stay
// distinct and optimality is preserved.
type AStarPlanner struct {
	PathAlgo      PathAlgo // Travel-cost pathfinder
	MaxExpansions int
	Log           *slog.Logger

	met *metrics.Metrics
}

// NewAStarPlanner creates an A* assignment planner with the default
// expansion budget.
func NewAStarPlanner() *AStarPlanner {
	return &AStarPlanner{
		MaxExpansions: DefaultMaxExpansions,
		met:           metrics.New(),
	}
}

func (p *AStarPlanner) Name() string { return "astar" }

// assignNode for the assignment priority queue.
type assignNode struct {
	state *assignState
	g     float64
	f     float64
	seq   int
	index int
}

// assignHeap orders by (f, g, insertion order).
type assignHeap []*assignNode

func (h assignHeap) Len() int { return len(h) }
func (h assignHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].g != h[j].g {
		return h[i].g < h[j].g
	}
	return h[i].seq < h[j].seq
}
func (h assignHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *assignHeap) Push(x any) {
	n := x.(*assignNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *assignHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// Plan assigns every task via A* search, falling back to the greedy
// assignment when the search exhausts its budget or state space.
func (p *AStarPlanner) Plan(sc *core.Scenario) *core.Plan {
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
	budget := p.MaxExpansions
	if budget <= 0 {
		budget = DefaultMaxExpansions
	}

	open := &assignHeap{}
	heap.Init(open)

	seq := 0
	start := c.initialState()
	heap.Push(open, &assignNode{state: start, g: 0, f: c.remaining(start), seq: seq})

	visited := make(map[string]bool)

	for open.Len() > 0 && c.expanded < budget {
		current := heap.Pop(open).(*assignNode)

		if current.state.isGoal(sc) {
			p.met.PlansTotal.WithLabelValues(p.Name(), "ok").Inc()
			p.met.NodesExpanded.WithLabelValues("assign-astar").Add(float64(c.expanded))
			c.log.Debug("plan found",
				"planner", p.Name(),
				"assignments", len(current.state.order),
				"cost", current.state.elapsed,
				"expanded", c.expanded)
			return finishPlan(plan, current.state)
		}

		key := current.state.key(true)
		if visited[key] {
			continue
		}
		visited[key] = true
		c.expanded++

		for _, t := range sc.Tasks {
			if current.state.assigned[t.ID] {
				continue
			}
			for _, a := range sc.Agents {
				seq++
				next, _ := c.step(current.state, t, a.ID, seq)
				if visited[next.key(true)] {
					continue
				}
				heap.Push(open, &assignNode{
					state: next,
					g:     next.elapsed,
					f:     next.elapsed + c.remaining(next),
					seq:   seq,
				})
			}
		}
	}

	// Search exhausted without a complete assignment. Should not happen for
	// a finite, fully-connected task/agent combination, but graph and
	// mapping edge cases land here.
	c.log.Warn("assignment search exhausted, using greedy fallback",
		"planner", p.Name(), "expanded", c.expanded)
	p.met.PlansTotal.WithLabelValues(p.Name(), "fallback").Inc()
	p.met.Fallbacks.WithLabelValues(p.Name()).Inc()
	p.met.NodesExpanded.WithLabelValues("assign-astar").Add(float64(c.expanded))

	plan.Fallback = true
	return finishPlan(plan, greedyAssign(c))
}

// PlanWithAStar assigns tasks with A* assignment search over A* travel
// costs.
func PlanWithAStar(sc *core.Scenario) *core.Plan {
	return NewAStarPlanner().Plan(sc)
}

// PlanWithIDAStar is PlanWithAStar with IDA* computing travel costs. Both
// pathfinders return equal-cost paths, so plans match; IDA* trades repeated
// expansion for constant memory per query.
func PlanWithIDAStar(sc *core.Scenario) *core.Plan {
	p := NewAStarPlanner()
	p.PathAlgo = PathIDAStar
	return p.Plan(sc)
}
