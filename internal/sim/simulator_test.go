package sim

import (
	"testing"

	"github.com/elektrokombinacija/colony-logistics/internal/algo"
	"github.com/elektrokombinacija/colony-logistics/internal/colony"
	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

func simScenario() *core.Scenario {
	sc := core.NewScenario()
	sc.Agents = []*core.Agent{
		{ID: 1, Node: core.NodeCommandCenter},
		{ID: 2, Node: core.NodeEngineering},
	}
	sc.Tasks = []*core.Task{
		{ID: "repair_filter", Location: core.Pos{X: 0, Y: 4}, Priority: 8, Duration: 3},
		{ID: "restock_shelves", Location: core.Pos{X: 4, Y: 4}, Priority: 4, Duration: 2},
	}
	return sc
}

func TestRun_CompletesAllTasks(t *testing.T) {
	sc := simScenario()
	s, err := New(Config{Scenario: sc, Planner: algo.NewAStarPlanner()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m := s.Run()
	if m.TasksCompleted != len(sc.Tasks) {
		t.Fatalf("completed %d tasks, want %d", m.TasksCompleted, len(sc.Tasks))
	}
	if m.TasksPending != 0 {
		t.Fatalf("pending %d tasks, want 0", m.TasksPending)
	}
	if m.TurnsSimulated != s.Plan().Makespan() {
		t.Fatalf("simulated %d turns, makespan is %d", m.TurnsSimulated, s.Plan().Makespan())
	}
	if m.UsedFallback {
		t.Fatal("small scenario should not hit the fallback path")
	}
}

func TestRun_ResourceDrain(t *testing.T) {
	sc := simScenario()
	state := colony.NewState()
	start := state.Resources["oxygen"]
	s, err := New(Config{
		Scenario:        sc,
		State:           state,
		Planner:         algo.NewGreedyPlanner(),
		BaseConsumption: core.ResourceDelta{"oxygen": -1.0},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m := s.Run()
	// Base drain per turn plus each task's oxygen cost at completion.
	want := start - float64(m.TurnsSimulated)*1.0
	for _, a := range s.Plan().Assignments {
		want += a.ResourceCost["oxygen"]
	}
	if got := m.FinalResources["oxygen"]; got != want {
		t.Fatalf("oxygen = %v, want %v", got, want)
	}
}

func TestRun_DepletionClampsAtZero(t *testing.T) {
	sc := simScenario()
	state := colony.NewState()
	state.Resources["oxygen"] = 1.0
	s, err := New(Config{
		Scenario:        sc,
		State:           state,
		Planner:         algo.NewAStarPlanner(),
		BaseConsumption: core.ResourceDelta{"oxygen": -2.0},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m := s.Run()
	if m.FinalResources["oxygen"] != 0 {
		t.Fatalf("oxygen = %v, want 0", m.FinalResources["oxygen"])
	}
	if len(m.Depleted) != 1 || m.Depleted[0] != "oxygen" {
		t.Fatalf("depleted = %v, want [oxygen]", m.Depleted)
	}
}

func TestRun_MaxTurnsCap(t *testing.T) {
	sc := simScenario()
	s, err := New(Config{Scenario: sc, Planner: algo.NewAStarPlanner(), MaxTurns: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m := s.Run()
	if m.TurnsSimulated > 1 {
		t.Fatalf("simulated %d turns, cap is 1", m.TurnsSimulated)
	}
	if m.TasksPending == 0 {
		t.Fatal("expected pending tasks under a one turn cap")
	}
}

func TestNew_RequiresScenarioAndPlanner(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for empty config")
	}
	if _, err := New(Config{Scenario: core.NewScenario()}); err == nil {
		t.Fatal("expected error when planner is missing")
	}
}
