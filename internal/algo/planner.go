package algo

import (
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// Planner is the interface for assignment strategies. Implementations read
// the scenario and never mutate it; every call returns a fresh plan.
type Planner interface {
	// Plan assigns every task in the scenario to an agent. An empty task or
	// agent list yields an empty plan, never an error.
	Plan(sc *core.Scenario) *core.Plan

	// Name returns the strategy name.
	Name() string
}

// PathAlgo selects which shortest-path algorithm computes travel costs.
type PathAlgo int

const (
	PathAStar PathAlgo = iota
	PathIDAStar
)

func (a PathAlgo) String() string {
	if a == PathIDAStar {
		return "idastar"
	}
	return "astar"
}

// FindPath runs the selected algorithm. Both return equal-cost paths.
func (a PathAlgo) FindPath(g *core.Graph, start, goal core.NodeID) core.PathResult {
	if a == PathIDAStar {
		return IDAStarPath(g, start, goal)
	}
	return AStarPath(g, start, goal)
}

// DefaultMaxExpansions bounds assignment-search work. The state space grows
// combinatorially in tasks and agents, so an explicit budget keeps a
// pathological scenario from stalling the turn loop.
const DefaultMaxExpansions = 200000

// priorityPenalty biases search toward urgent tasks without hard-ordering
// them.
func priorityPenalty(t *core.Task) float64 {
	return float64(10-t.Priority) * 0.1
}

// agentLoc is an agent's modeled location mid-plan: the graph node it
// occupies, if any, plus raw coordinates. Comparable so it can participate
// in state keys.
type agentLoc struct {
	node   core.NodeID
	x, y   float64
	hasPos bool
}

func (l agentLoc) pos() core.Pos { return core.Pos{X: l.x, Y: l.y} }

// assignState is a node in the assignment search space: which tasks are
// done, where every agent stands, elapsed time, and the assignment order
// built so far. seq is a tie-break counter only; it never enters the cost.
type assignState struct {
	assigned map[core.TaskID]bool
	locs     map[int]agentLoc
	elapsed  float64
	order    []core.TaskAssignment
	seq      int
}

func (st *assignState) isGoal(sc *core.Scenario) bool {
	return len(st.assigned) == len(sc.Tasks)
}

// key renders the state for deduplication. The A* variant includes elapsed
// time, treating time-diverged states as distinct; beam search omits it to
// collapse them and keep the frontier small.
func (st *assignState) key(withTime bool) string {
	taskIDs := make([]string, 0, len(st.assigned))
	for id := range st.assigned {
		taskIDs = append(taskIDs, string(id))
	}
	sort.Strings(taskIDs)

	agentIDs := make([]int, 0, len(st.locs))
	for id := range st.locs {
		agentIDs = append(agentIDs, id)
	}
	sort.Ints(agentIDs)

	var b strings.Builder
	b.WriteString(strings.Join(taskIDs, ","))
	b.WriteByte('|')
	for _, id := range agentIDs {
		l := st.locs[id]
		b.WriteString(strconv.Itoa(id))
		b.WriteByte('@')
		if l.node != "" {
			b.WriteString(string(l.node))
		} else if l.hasPos {
			b.WriteString(strconv.FormatFloat(l.x, 'f', 3, 64))
			b.WriteByte(':')
			b.WriteString(strconv.FormatFloat(l.y, 'f', 3, 64))
		}
		b.WriteByte(';')
	}
	if withTime {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(st.elapsed, 'f', 3, 64))
	}
	return b.String()
}

// searchContext carries per-call machinery shared by the A* and beam
// planners: resolved task nodes, the travel-cost pathfinder, and counters.
type searchContext struct {
	sc        *core.Scenario
	pathAlgo  PathAlgo
	taskNodes map[core.TaskID]core.NodeID // "" when unmappable
	log       *slog.Logger
	expanded  int
}

func newSearchContext(sc *core.Scenario, pathAlgo PathAlgo, log *slog.Logger) *searchContext {
	if log == nil {
		log = slog.Default()
	}
	c := &searchContext{
		sc:        sc,
		pathAlgo:  pathAlgo,
		taskNodes: make(map[core.TaskID]core.NodeID, len(sc.Tasks)),
		log:       log,
	}
	for _, t := range sc.Tasks {
		if n, ok := sc.Graph.ClosestNode(t.Location); ok {
			c.taskNodes[t.ID] = n
		}
	}
	return c
}

// initialState maps every agent onto its starting location.
func (c *searchContext) initialState() *assignState {
	st := &assignState{
		assigned: make(map[core.TaskID]bool),
		locs:     make(map[int]agentLoc, len(c.sc.Agents)),
	}
	for _, a := range c.sc.Agents {
		node := a.StartNode(c.sc.Graph, c.sc.DefaultNode)
		loc := agentLoc{node: node}
		if a.Pos != nil {
			loc.x, loc.y = a.Pos.X, a.Pos.Y
			loc.hasPos = true
		} else if n := c.sc.Graph.Nodes[node]; n != nil && n.Pos != nil {
			loc.x, loc.y = n.Pos.X, n.Pos.Y
			loc.hasPos = true
		}
		st.locs[a.ID] = loc
	}
	return st
}

// travel computes the cost and route from an agent's location to a task.
// Graph paths are preferred; missing node mappings degrade to straight-line
// distance, and absent location data degrades to zero cost.
func (c *searchContext) travel(loc agentLoc, t *core.Task) (float64, []core.NodeID) {
	tNode := c.taskNodes[t.ID]
	if loc.node != "" && tNode != "" {
		if res := c.pathAlgo.FindPath(c.sc.Graph, loc.node, tNode); res.Found {
			return res.Cost, res.Path
		}
	}
	if loc.hasPos {
		return loc.pos().Dist(t.Location), nil
	}
	return 0, nil
}

// afterTask is the agent's location once the task completes.
func (c *searchContext) afterTask(t *core.Task) agentLoc {
	return agentLoc{
		node:   c.taskNodes[t.ID],
		x:      t.Location.X,
		y:      t.Location.Y,
		hasPos: true,
	}
}

// step extends a state by assigning one task to one agent.
func (c *searchContext) step(st *assignState, t *core.Task, agentID int, seq int) (*assignState, float64) {
	loc := st.locs[agentID]
	travelCost, path := c.travel(loc, t)
	stepCost := travelCost + float64(t.Duration) + priorityPenalty(t)

	start := core.RoundTurns(st.elapsed)
	completion := start + core.RoundTurns(stepCost)
	if completion < start {
		completion = start
	}

	next := &assignState{
		assigned: make(map[core.TaskID]bool, len(st.assigned)+1),
		locs:     make(map[int]agentLoc, len(st.locs)),
		elapsed:  st.elapsed + stepCost,
		order:    make([]core.TaskAssignment, len(st.order), len(st.order)+1),
		seq:      seq,
	}
	for id := range st.assigned {
		next.assigned[id] = true
	}
	next.assigned[t.ID] = true
	for id, l := range st.locs {
		next.locs[id] = l
	}
	next.locs[agentID] = c.afterTask(t)
	copy(next.order, st.order)
	next.order = append(next.order, core.TaskAssignment{
		Task:           t,
		AgentID:        agentID,
		StartTime:      start,
		CompletionTime: completion,
		ResourceCost:   t.Cost(),
		Path:           path,
	})

	return next, stepCost
}

// remaining is the admissible lower bound on completing all unassigned
// tasks: each is optimistically served by its cheapest-reachable agent,
// ignoring contention.
func (c *searchContext) remaining(st *assignState) float64 {
	sum := 0.0
	for _, t := range c.sc.Tasks {
		if st.assigned[t.ID] {
			continue
		}
		best := math.Inf(1)
		tNode := c.taskNodes[t.ID]
		for _, a := range c.sc.Agents {
			loc := st.locs[a.ID]
			d := 0.0
			if loc.node != "" && tNode != "" {
				d = c.sc.Graph.Heuristic(loc.node, tNode)
			} else if loc.hasPos {
				d = loc.pos().Dist(t.Location)
			}
			if cost := d + float64(t.Duration); cost < best {
				best = cost
			}
		}
		if !math.IsInf(best, 1) {
			sum += best
		}
	}
	return sum
}

// finishPlan stamps the result of a completed search onto a plan.
func finishPlan(p *core.Plan, st *assignState) *core.Plan {
	p.Assignments = st.order
	p.TotalCost = st.elapsed
	return p
}
