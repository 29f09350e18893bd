// Package colony adapts colony-state snapshots and scenario files into
// planner inputs. It is the boundary to the external colony-state store:
// loosely-shaped records come in, fixed-shape planner types go out.
package colony

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

// Location is an agent location as authored in colony state: either a graph
// node name or a pair of coordinates. Empty locations are tolerated; the
// planner degrades them to the scenario's default node.
type Location struct {
	Node core.NodeID
	Pos  *core.Pos
}

// UnmarshalYAML accepts `location: storage` or `location: [4, 4]`.
func (l *Location) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return fmt.Errorf("decoding location name: %w", err)
		}
		l.Node = core.NodeID(name)
		return nil
	case yaml.SequenceNode:
		var xy []float64
		if err := value.Decode(&xy); err != nil {
			return fmt.Errorf("decoding location coordinates: %w", err)
		}
		if len(xy) != 2 {
			return fmt.Errorf("location coordinates need 2 values, got %d", len(xy))
		}
		l.Pos = &core.Pos{X: xy[0], Y: xy[1]}
		return nil
	default:
		return fmt.Errorf("location must be a node name or [x, y] pair")
	}
}

// MarshalYAML emits the same shapes UnmarshalYAML accepts.
func (l Location) MarshalYAML() (any, error) {
	if l.Node != "" {
		return string(l.Node), nil
	}
	if l.Pos != nil {
		return []float64{l.Pos.X, l.Pos.Y}, nil
	}
	return nil, nil
}
