package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/colony-logistics/internal/algo"
	"github.com/elektrokombinacija/colony-logistics/internal/colony"
	"github.com/elektrokombinacija/colony-logistics/internal/sim"
)

type simulateOutput struct {
	Planner        string             `json:"planner"`
	PlanningTimeMs float64            `json:"planning_time_ms"`
	UsedFallback   bool               `json:"used_fallback"`
	TurnsSimulated int                `json:"turns_simulated"`
	TasksCompleted int                `json:"tasks_completed"`
	TasksPending   int                `json:"tasks_pending"`
	FinalResources map[string]float64 `json:"final_resources"`
	Depleted       []string           `json:"depleted,omitempty"`
}

func newSimulateCommand() *cobra.Command {
	var (
		plannerName string
		beamWidth   int
		useIDAStar  bool
		statePath   string
		maxTurns    int
	)

	cmd := &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Plan a scenario and execute the plan turn by turn",
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

			state := colony.NewState()
			if statePath != "" {
				state, err = colony.LoadState(statePath)
				if err != nil {
					return err
				}
			}

			s, err := sim.New(sim.Config{
				Scenario: sc,
				State:    state,
				Planner:  planner,
				MaxTurns: maxTurns,
			})
			if err != nil {
				return err
			}
			m := s.Run()

			out := simulateOutput{
				Planner:        planner.Name(),
				PlanningTimeMs: m.PlanningTimeMs,
				UsedFallback:   m.UsedFallback,
				TurnsSimulated: m.TurnsSimulated,
				TasksCompleted: m.TasksCompleted,
				TasksPending:   m.TasksPending,
				FinalResources: m.FinalResources,
				Depleted:       m.Depleted,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&plannerName, "planner", "p", "astar", "Strategy: astar, beam, greedy")
	cmd.Flags().IntVarP(&beamWidth, "beam-width", "w", algo.DefaultBeamWidth, "Beam width for the beam strategy")
	cmd.Flags().BoolVar(&useIDAStar, "idastar-paths", false, "Compute travel costs with IDA* instead of A*")
	cmd.Flags().StringVar(&statePath, "state", "", "Colony state file (defaults to a fresh colony)")
	cmd.Flags().IntVar(&maxTurns, "max-turns", 0, "Stop after this many turns (0 runs to completion)")

	return cmd
}
