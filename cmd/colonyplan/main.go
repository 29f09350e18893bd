// Command colonyplan runs colony logistics planning from scenario files.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "colonyplan",
		Short: "Colony logistics planner - assign tasks to agents over the colony graph",
		Long: `colonyplan searches for task-to-agent assignments that minimize combined
travel, duration, and priority cost over the colony map. Strategies: optimal
A* assignment search, bounded-memory beam search, and a greedy baseline.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newPathCommand())
	rootCmd.AddCommand(newSimulateCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
