package colony

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// AgentRecord is one colonist as stored in colony state. Fields beyond id
// and location are carried for the orchestrator but ignored by planning.
type AgentRecord struct {
	ID       int      `yaml:"id"`
	Name     string   `yaml:"name,omitempty"`
	Location Location `yaml:"location"`
	Status   string   `yaml:"status,omitempty"`
}

// State is the slice of a colony-state snapshot the planner consumes, plus
// the resource pools the orchestrator deducts plan costs from.
type State struct {
	Agents     []AgentRecord      `yaml:"agents"`
	Resources  map[string]float64 `yaml:"resources"`
	TurnNumber int                `yaml:"turn_number"`
}

// NewState creates an empty state with full default resource pools.
func NewState() *State {
	return &State{
		Resources: map[string]float64{
			"oxygen":    100.0,
			"calories":  100.0,
			"integrity": 100.0,
		},
	}
}

// LoadState reads a colony-state snapshot from a YAML file.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	return &st, nil
}

// Save writes the state snapshot to a YAML file.
func (s *State) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// PlannerAgents converts agent records into planner agents, preserving
// record order. Agents marked dead or incapacitated are skipped.
func (s *State) PlannerAgents() []*core.Agent {
	agents := make([]*core.Agent, 0, len(s.Agents))
	for _, rec := range s.Agents {
		if rec.Status == "dead" || rec.Status == "incapacitated" {
			continue
		}
		agents = append(agents, &core.Agent{
			ID:   rec.ID,
			Node: rec.Location.Node,
			Pos:  rec.Location.Pos,
		})
	}
	return agents
}

// ApplyPlan deducts a plan's resource totals from the state pools, clamping
// at zero. This is the orchestrator-side consumption of assignment costs.
func (s *State) ApplyPlan(p *core.Plan) {
	if s.Resources == nil {
		s.Resources = make(map[string]float64)
	}
	for res, delta := range p.ResourceTotals() {
		v := s.Resources[res] + delta
		if v < 0 {
			v = 0
		}
		s.Resources[res] = v
	}
}
