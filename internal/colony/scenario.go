package colony

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// ScenarioFile is the YAML shape of a standalone planning scenario: an
// optional custom graph, agent records, and task descriptors. An omitted
// graph means the default six-node topology.
type ScenarioFile struct {
	Name        string        `yaml:"name,omitempty"`
	Graph       *GraphDef     `yaml:"graph,omitempty"`
	Agents      []AgentRecord `yaml:"agents"`
	Tasks       []TaskDef     `yaml:"tasks"`
	DefaultNode string        `yaml:"default_node,omitempty"`
}

// GraphDef describes a custom topology.
type GraphDef struct {
	Nodes []NodeDef `yaml:"nodes"`
	Edges []EdgeDef `yaml:"edges"`
}

// NodeDef is one graph node. Position is optional.
type NodeDef struct {
	ID  string     `yaml:"id"`
	Pos *[]float64 `yaml:"pos,omitempty"` // [x, y]
}

// EdgeDef is one graph edge. Bidirectional unless stated otherwise.
type EdgeDef struct {
	From          string  `yaml:"from"`
	To            string  `yaml:"to"`
	Cost          float64 `yaml:"cost"`
	Bidirectional *bool   `yaml:"bidirectional,omitempty"`
}

// TaskDef is one task descriptor.
type TaskDef struct {
	ID           string         `yaml:"id"`
	Location     []float64      `yaml:"location"` // [x, y]
	Requirements map[string]any `yaml:"requirements,omitempty"`
	Priority     int            `yaml:"priority"`
	Duration     int            `yaml:"duration"`
}

// LoadScenario reads a scenario file and builds the planner scenario.
func LoadScenario(path string) (*core.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return sf.Build()
}

// Build converts the file shape into a validated core.Scenario.
func (sf *ScenarioFile) Build() (*core.Scenario, error) {
	sc := core.NewScenario()

	if sf.Graph != nil {
		g := core.NewGraph()
		for _, n := range sf.Graph.Nodes {
			var pos *core.Pos
			if n.Pos != nil {
				if len(*n.Pos) != 2 {
					return nil, fmt.Errorf("node %q: pos needs 2 values, got %d", n.ID, len(*n.Pos))
				}
				pos = &core.Pos{X: (*n.Pos)[0], Y: (*n.Pos)[1]}
			}
			g.AddNode(core.NodeID(n.ID), pos)
		}
		for _, e := range sf.Graph.Edges {
			if !g.HasNode(core.NodeID(e.From)) || !g.HasNode(core.NodeID(e.To)) {
				return nil, fmt.Errorf("edge %s->%s references unknown node", e.From, e.To)
			}
			if e.Bidirectional != nil && !*e.Bidirectional {
				g.AddDirectedEdge(core.NodeID(e.From), core.NodeID(e.To), e.Cost)
			} else {
				g.AddEdge(core.NodeID(e.From), core.NodeID(e.To), e.Cost)
			}
		}
		sc.Graph = g
		sc.DefaultNode = ""
	}

	if sf.DefaultNode != "" {
		sc.DefaultNode = core.NodeID(sf.DefaultNode)
	}

	for _, rec := range sf.Agents {
		sc.Agents = append(sc.Agents, &core.Agent{
			ID:   rec.ID,
			Node: rec.Location.Node,
			Pos:  rec.Location.Pos,
		})
	}

	for _, td := range sf.Tasks {
		if len(td.Location) != 2 {
			return nil, fmt.Errorf("task %q: location needs 2 values, got %d", td.ID, len(td.Location))
		}
		sc.Tasks = append(sc.Tasks, &core.Task{
			ID:           core.TaskID(td.ID),
			Location:     core.Pos{X: td.Location[0], Y: td.Location[1]},
			Requirements: td.Requirements,
			Priority:     td.Priority,
			Duration:     td.Duration,
		})
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return sc, nil
}

// SaveScenario writes a scenario file to disk.
func SaveScenario(path string, sf *ScenarioFile) error {
	data, err := yaml.Marshal(sf)
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	return nil
}
