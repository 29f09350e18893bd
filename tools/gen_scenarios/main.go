// Package main generates deterministic planning scenarios for benchmarks.
// Given a seed, output is byte-identical across runs.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/colony-logistics/internal/colony"
	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// ScenarioParams defines parameters for scenario generation.
type ScenarioParams struct {
	Seed      int64
	NumNodes  int
	NumAgents int
	NumTasks  int
	Extent    float64 // Coordinate range [0, Extent) on both axes
}

// generateScenario builds one scenario file from parameters.
func generateScenario(params ScenarioParams) *colony.ScenarioFile {
	rng := rand.New(rand.NewSource(params.Seed))

	sf := &colony.ScenarioFile{
		Name: fmt.Sprintf("colony_%dn_%da_%dt_%d",
			params.NumNodes, params.NumAgents, params.NumTasks, params.Seed),
		Graph: &colony.GraphDef{},
	}

	// Nodes scattered over the extent.
	positions := make([]core.Pos, params.NumNodes)
	for i := 0; i < params.NumNodes; i++ {
		positions[i] = core.Pos{
			X: rng.Float64() * params.Extent,
			Y: rng.Float64() * params.Extent,
		}
		pos := []float64{positions[i].X, positions[i].Y}
		sf.Graph.Nodes = append(sf.Graph.Nodes, colony.NodeDef{
			ID:  fmt.Sprintf("node_%02d", i),
			Pos: &pos,
		})
	}

	// Ring keeps the graph connected; chords add shortcuts. Edge costs are
	// scaled above the Euclidean distance so the heuristic stays admissible.
	edgeCost := func(i, j int) float64 {
		d := positions[i].Dist(positions[j])
		return math.Ceil((d*(1.0+rng.Float64()*0.5))*100) / 100
	}
	for i := 0; i < params.NumNodes; i++ {
		j := (i + 1) % params.NumNodes
		sf.Graph.Edges = append(sf.Graph.Edges, colony.EdgeDef{
			From: fmt.Sprintf("node_%02d", i),
			To:   fmt.Sprintf("node_%02d", j),
			Cost: edgeCost(i, j),
		})
	}
	numChords := params.NumNodes / 2
	for c := 0; c < numChords; c++ {
		i := rng.Intn(params.NumNodes)
		j := rng.Intn(params.NumNodes)
		if i == j {
			continue
		}
		sf.Graph.Edges = append(sf.Graph.Edges, colony.EdgeDef{
			From: fmt.Sprintf("node_%02d", i),
			To:   fmt.Sprintf("node_%02d", j),
			Cost: edgeCost(i, j),
		})
	}

	sf.DefaultNode = "node_00"

	// Agents start at random nodes.
	for a := 0; a < params.NumAgents; a++ {
		sf.Agents = append(sf.Agents, colony.AgentRecord{
			ID:       a,
			Name:     fmt.Sprintf("agent_%02d", a),
			Location: colony.Location{Node: core.NodeID(fmt.Sprintf("node_%02d", rng.Intn(params.NumNodes)))},
		})
	}

	// Tasks at random coordinates near nodes.
	for t := 0; t < params.NumTasks; t++ {
		anchor := positions[rng.Intn(params.NumNodes)]
		sf.Tasks = append(sf.Tasks, colony.TaskDef{
			ID:       fmt.Sprintf("task_%02d", t),
			Location: []float64{anchor.X + rng.Float64() - 0.5, anchor.Y + rng.Float64() - 0.5},
			Priority: 1 + rng.Intn(9),
			Duration: 1 + rng.Intn(5),
		})
	}

	return sf
}

func main() {
	var (
		seed      = flag.Int64("seed", 42, "Base random seed")
		count     = flag.Int("count", 5, "Number of scenarios to generate")
		numNodes  = flag.Int("nodes", 12, "Graph nodes per scenario")
		numAgents = flag.Int("agents", 3, "Agents per scenario")
		numTasks  = flag.Int("tasks", 5, "Tasks per scenario")
		extent    = flag.Float64("extent", 20.0, "Coordinate extent")
		outDir    = flag.String("out", "scenarios", "Output directory")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "creating output dir: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		params := ScenarioParams{
			Seed:      *seed + int64(i),
			NumNodes:  *numNodes,
			NumAgents: *numAgents,
			NumTasks:  *numTasks,
			Extent:    *extent,
		}
		sf := generateScenario(params)

		path := filepath.Join(*outDir, sf.Name+".yaml")
		if err := colony.SaveScenario(path, sf); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
