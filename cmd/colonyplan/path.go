package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/colony-logistics/internal/algo"
	"github.com/elektrokombinacija/colony-logistics/internal/colony"
	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

func newPathCommand() *cobra.Command {
	var (
		scenarioPath string
		useIDAStar   bool
	)

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Find the cheapest route between two colony locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := core.DefaultGraph()
			if scenarioPath != "" {
				sc, err := colony.LoadScenario(scenarioPath)
				if err != nil {
					return err
				}
				g = sc.Graph
			}

			start, goal := core.NodeID(args[0]), core.NodeID(args[1])
			var res core.PathResult
			if useIDAStar {
				res = algo.IDAStarPath(g, start, goal)
			} else {
				res = algo.AStarPath(g, start, goal)
			}

			if !res.Found {
				return fmt.Errorf("no path from %s to %s", start, goal)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Path []core.NodeID `json:"path"`
				Cost float64       `json:"cost"`
			}{res.Path, res.Cost})
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "Scenario file supplying a custom graph")
	cmd.Flags().BoolVar(&useIDAStar, "idastar", false, "Use IDA* instead of A*")

	return cmd
}
