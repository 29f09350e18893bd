package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/colony-logistics/internal/algo"
	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every planner on the built-in demo scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sc := demoScenario()
			fmt.Fprintf(out, "Scenario: %d agents, %d tasks on the default colony graph\n",
				len(sc.Agents), len(sc.Tasks))

			planners := []algo.Planner{
				algo.NewAStarPlanner(),
				algo.NewBeamPlanner(algo.DefaultBeamWidth),
				algo.NewGreedyPlanner(),
			}

			for _, p := range planners {
				start := time.Now()
				plan := p.Plan(sc)
				elapsed := time.Since(start)

				fmt.Fprintf(out, "\n  %s: cost=%.2f makespan=%d fallback=%v time=%v\n",
					p.Name(), plan.TotalCost, plan.Makespan(), plan.Fallback, elapsed)
				for _, a := range plan.Assignments {
					fmt.Fprintf(out, "    %s -> agent %d  [%d, %d]  via %v\n",
						a.Task.ID, a.AgentID, a.StartTime, a.CompletionTime, a.Path)
				}
			}
			return nil
		},
	}
}

// demoScenario: two agents at opposite sections, one task at storage and
// one at engineering.
func demoScenario() *core.Scenario {
	sc := core.NewScenario()
	sc.Agents = []*core.Agent{
		{ID: 0, Node: core.NodeSectionAlpha},
		{ID: 1, Node: core.NodeSectionBeta},
	}
	sc.Tasks = []*core.Task{
		{ID: "T1", Location: core.Pos{X: 4, Y: 4}, Priority: 1, Duration: 2},
		{ID: "T2", Location: core.Pos{X: 4, Y: 0}, Priority: 2, Duration: 3},
	}
	return sc
}
