package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/colony-logistics/internal/algo"
	"github.com/elektrokombinacija/colony-logistics/internal/colony"
	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// planOutput is the JSON shape written for a completed plan.
type planOutput struct {
	PlanID      string             `json:"plan_id"`
	Planner     string             `json:"planner"`
	Fallback    bool               `json:"fallback"`
	TotalCost   float64            `json:"total_cost"`
	Makespan    int                `json:"makespan"`
	Resources   map[string]float64 `json:"resource_totals"`
	Assignments []assignmentOutput `json:"assignments"`
}

type assignmentOutput struct {
	TaskID         string             `json:"task_id"`
	AgentID        int                `json:"agent_id"`
	StartTime      int                `json:"start_time"`
	CompletionTime int                `json:"completion_time"`
	ResourceCost   map[string]float64 `json:"resource_cost"`
	Path           []string           `json:"path,omitempty"`
}

func newPlanCommand() *cobra.Command {
	var (
		plannerName string
		beamWidth   int
		useIDAStar  bool
	)

	cmd := &cobra.Command{
		Use:   "plan <scenario.yaml>",
		Short: "Plan task assignments for a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := colony.LoadScenario(args[0])
			if err != nil {
				return err
			}

			planner, err := buildPlanner(plannerName, beamWidth, useIDAStar)
			if err != nil {
				return err
			}

			plan := planner.Plan(sc)
			return writePlan(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().StringVarP(&plannerName, "planner", "p", "astar", "Strategy: astar, beam, greedy")
	cmd.Flags().IntVarP(&beamWidth, "beam-width", "w", algo.DefaultBeamWidth, "Beam width for the beam strategy")
	cmd.Flags().BoolVar(&useIDAStar, "idastar-paths", false, "Compute travel costs with IDA* instead of A*")

	return cmd
}

func buildPlanner(name string, beamWidth int, useIDAStar bool) (algo.Planner, error) {
	pathAlgo := algo.PathAStar
	if useIDAStar {
		pathAlgo = algo.PathIDAStar
	}

	switch name {
	case "astar":
		p := algo.NewAStarPlanner()
		p.PathAlgo = pathAlgo
		return p, nil
	case "beam":
		p := algo.NewBeamPlanner(beamWidth)
		p.PathAlgo = pathAlgo
		return p, nil
	case "greedy":
		p := algo.NewGreedyPlanner()
		p.PathAlgo = pathAlgo
		return p, nil
	default:
		return nil, fmt.Errorf("unknown planner %q (want astar, beam, or greedy)", name)
	}
}

func writePlan(w io.Writer, plan *core.Plan) error {
	out := planOutput{
		PlanID:    plan.ID,
		Planner:   plan.Planner,
		Fallback:  plan.Fallback,
		TotalCost: plan.TotalCost,
		Makespan:  plan.Makespan(),
		Resources: plan.ResourceTotals(),
	}
	for _, a := range plan.Assignments {
		ao := assignmentOutput{
			TaskID:         string(a.Task.ID),
			AgentID:        a.AgentID,
			StartTime:      a.StartTime,
			CompletionTime: a.CompletionTime,
			ResourceCost:   a.ResourceCost,
		}
		for _, n := range a.Path {
			ao.Path = append(ao.Path, string(n))
		}
		out.Assignments = append(out.Assignments, ao)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
