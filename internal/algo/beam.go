package algo

import (
	"log/slog"
	"sort"
	"time"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
	"github.com/elektrokombinacija/colony-logistics/internal/metrics"
)

// DefaultBeamWidth matches the planner's historical default.
const DefaultBeamWidth = 3

// BeamPlanner explores the assignment space ply by ply, keeping only the
// best Width states per ply. Memory stays bounded regardless of the
// tasks × agents branching factor, at the cost of optimality guarantees.
// Unlike the A* planner, state deduplication ignores elapsed time:
// time-diverged states with identical assignments and positions collapse.
type BeamPlanner struct {
	Width    int
	PathAlgo PathAlgo
	Log      *slog.Logger

	met *metrics.Metrics
}

// NewBeamPlanner creates a beam planner. Width < 1 falls back to the
// default.
func NewBeamPlanner(width int) *BeamPlanner {
	if width < 1 {
		width = DefaultBeamWidth
	}
	return &BeamPlanner{
		Width: width,
		met:   metrics.New(),
	}
}

func (p *BeamPlanner) Name() string { return "beam" }

// scoredState pairs a state with its g+h score for frontier sorting.
type scoredState struct {
	state *assignState
	score float64
}

// Plan assigns every task via beam search, falling back to the greedy
// assignment when no state survives pruning.
func (p *BeamPlanner) Plan(sc *core.Scenario) *core.Plan {
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
	frontier := []*assignState{c.initialState()}
	seq := 0

	for ply := 0; ply < len(sc.Tasks); ply++ {
		var candidates []scoredState
		for _, st := range frontier {
			c.expanded++
			for _, t := range sc.Tasks {
				if st.assigned[t.ID] {
					continue
				}
				for _, a := range sc.Agents {
					seq++
					next, _ := c.step(st, t, a.ID, seq)
					candidates = append(candidates, scoredState{
						state: next,
						score: next.elapsed + c.remaining(next),
					})
				}
			}
		}

		if len(candidates) == 0 {
			break
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].score != candidates[j].score {
				return candidates[i].score < candidates[j].score
			}
			return candidates[i].state.seq < candidates[j].state.seq
		})

		// Collapse states that differ only in elapsed time; the best-scored
		// survivor represents them all.
		seen := make(map[string]bool, len(candidates))
		frontier = frontier[:0]
		for _, cand := range candidates {
			key := cand.state.key(false)
			if seen[key] {
				continue
			}
			seen[key] = true

			if cand.state.isGoal(sc) {
				p.met.PlansTotal.WithLabelValues(p.Name(), "ok").Inc()
				p.met.NodesExpanded.WithLabelValues("assign-beam").Add(float64(c.expanded))
				c.log.Debug("plan found",
					"planner", p.Name(),
					"width", p.Width,
					"assignments", len(cand.state.order),
					"cost", cand.state.elapsed)
				return finishPlan(plan, cand.state)
			}

			frontier = append(frontier, cand.state)
			if len(frontier) == p.Width {
				break
			}
		}

		if len(frontier) == 0 {
			break
		}
	}

	c.log.Warn("beam frontier emptied, using greedy fallback",
		"planner", p.Name(), "width", p.Width)
	p.met.PlansTotal.WithLabelValues(p.Name(), "fallback").Inc()
	p.met.Fallbacks.WithLabelValues(p.Name()).Inc()
	p.met.NodesExpanded.WithLabelValues("assign-beam").Add(float64(c.expanded))

	plan.Fallback = true
	return finishPlan(plan, greedyAssign(c))
}

// PlanWithBeamSearch assigns tasks with bounded-memory beam search.
func PlanWithBeamSearch(sc *core.Scenario, width int) *core.Plan {
	return NewBeamPlanner(width).Plan(sc)
}
