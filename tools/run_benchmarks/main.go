// Package main benchmarks every planner over a directory of scenario files
// and writes per-run results as CSV and JSON.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/elektrokombinacija/colony-logistics/internal/algo"
	"github.com/elektrokombinacija/colony-logistics/internal/colony"
)

// BenchmarkResult stores results from a single planner run.
type BenchmarkResult struct {
	Timestamp string  `json:"timestamp"`
	GoVersion string  `json:"go_version"`
	OS        string  `json:"os"`
	Arch      string  `json:"arch"`
	Scenario  string  `json:"scenario"`
	NumAgents int     `json:"num_agents"`
	NumTasks  int     `json:"num_tasks"`
	Planner   string  `json:"planner"`
	RuntimeMs float64 `json:"runtime_ms"`
	TotalCost float64 `json:"total_cost"`
	Makespan  int     `json:"makespan"`
	Fallback  bool    `json:"fallback"`
	Complete  bool    `json:"complete"`
}

// plannerSet returns the strategies under benchmark, beam at several widths.
func plannerSet() []algo.Planner {
	return []algo.Planner{
		algo.NewAStarPlanner(),
		newNamedBeam(1),
		newNamedBeam(3),
		newNamedBeam(8),
		algo.NewGreedyPlanner(),
	}
}

// namedBeam distinguishes beam widths in result rows.
type namedBeam struct {
	*algo.BeamPlanner
	name string
}

func newNamedBeam(width int) *namedBeam {
	return &namedBeam{
		BeamPlanner: algo.NewBeamPlanner(width),
		name:        fmt.Sprintf("beam-%d", width),
	}
}

func (b *namedBeam) Name() string { return b.name }

func runScenario(path string) ([]*BenchmarkResult, error) {
	sc, err := colony.LoadScenario(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	name := filepath.Base(path)

	var results []*BenchmarkResult
	for _, p := range plannerSet() {
		start := time.Now()
		plan := p.Plan(sc)
		elapsed := time.Since(start)

		results = append(results, &BenchmarkResult{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			Scenario:  name,
			NumAgents: len(sc.Agents),
			NumTasks:  len(sc.Tasks),
			Planner:   p.Name(),
			RuntimeMs: float64(elapsed.Microseconds()) / 1000.0,
			TotalCost: plan.TotalCost,
			Makespan:  plan.Makespan(),
			Fallback:  plan.Fallback,
			Complete:  plan.Covers(sc.Tasks),
		})
	}
	return results, nil
}

func writeCSV(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"timestamp", "go_version", "os", "arch",
		"scenario", "num_agents", "num_tasks", "planner",
		"runtime_ms", "total_cost", "makespan", "fallback", "complete",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Timestamp, r.GoVersion, r.OS, r.Arch,
			r.Scenario, fmt.Sprintf("%d", r.NumAgents), fmt.Sprintf("%d", r.NumTasks), r.Planner,
			fmt.Sprintf("%.3f", r.RuntimeMs), fmt.Sprintf("%.3f", r.TotalCost),
			fmt.Sprintf("%d", r.Makespan), fmt.Sprintf("%t", r.Fallback), fmt.Sprintf("%t", r.Complete),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(results []*BenchmarkResult, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printSummary(results []*BenchmarkResult) {
	type agg struct {
		runs      int
		complete  int
		fallbacks int
		totalMs   float64
		totalCost float64
	}
	byPlanner := make(map[string]*agg)
	for _, r := range results {
		a, ok := byPlanner[r.Planner]
		if !ok {
			a = &agg{}
			byPlanner[r.Planner] = a
		}
		a.runs++
		if r.Complete {
			a.complete++
		}
		if r.Fallback {
			a.fallbacks++
		}
		a.totalMs += r.RuntimeMs
		a.totalCost += r.TotalCost
	}

	names := make([]string, 0, len(byPlanner))
	for n := range byPlanner {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-12s %6s %9s %10s %12s %12s\n",
		"planner", "runs", "complete", "fallbacks", "avg_ms", "avg_cost")
	for _, n := range names {
		a := byPlanner[n]
		fmt.Printf("%-12s %6d %9d %10d %12.3f %12.3f\n",
			n, a.runs, a.complete, a.fallbacks,
			a.totalMs/float64(a.runs), a.totalCost/float64(a.runs))
	}
}

func main() {
	var (
		dir     = flag.String("scenarios", "scenarios", "Directory of scenario YAML files")
		csvPath = flag.String("csv", "benchmark_results.csv", "CSV output path")
		jsonOut = flag.String("json", "benchmark_results.json", "JSON output path")
	)
	flag.Parse()

	paths, err := filepath.Glob(filepath.Join(*dir, "*.yaml"))
	if err != nil || len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "no scenario files found in %s\n", *dir)
		os.Exit(1)
	}
	sort.Strings(paths)

	var results []*BenchmarkResult
	for _, path := range paths {
		rs, err := runScenario(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		results = append(results, rs...)
	}

	if err := writeCSV(results, *csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "writing CSV: %v\n", err)
		os.Exit(1)
	}
	if err := writeJSON(results, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "writing JSON: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
	fmt.Printf("\nwrote %s and %s\n", *csvPath, *jsonOut)
}
