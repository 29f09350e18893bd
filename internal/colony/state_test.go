package colony

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/colony-logistics/internal/core"
)

func TestLocation_UnmarshalNodeName(t *testing.T) {
	var rec AgentRecord
	err := yaml.Unmarshal([]byte("id: 3\nlocation: storage\n"), &rec)
	require.NoError(t, err)

	assert.Equal(t, 3, rec.ID)
	assert.Equal(t, core.NodeID("storage"), rec.Location.Node)
	assert.Nil(t, rec.Location.Pos)
}

func TestLocation_UnmarshalCoordinates(t *testing.T) {
	var rec AgentRecord
	err := yaml.Unmarshal([]byte("id: 1\nlocation: [4, 4]\n"), &rec)
	require.NoError(t, err)

	require.NotNil(t, rec.Location.Pos)
	assert.Equal(t, core.Pos{X: 4, Y: 4}, *rec.Location.Pos)
	assert.Empty(t, rec.Location.Node)
}

func TestLocation_UnmarshalBadShape(t *testing.T) {
	var rec AgentRecord
	err := yaml.Unmarshal([]byte("id: 1\nlocation: [1, 2, 3]\n"), &rec)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("id: 1\nlocation: {x: 1}\n"), &rec)
	assert.Error(t, err)
}

func TestState_SaveLoadRoundtrip(t *testing.T) {
	st := NewState()
	st.TurnNumber = 7
	st.Agents = []AgentRecord{
		{ID: 0, Name: "ada", Location: Location{Node: "storage"}},
		{ID: 1, Name: "brin", Location: Location{Pos: &core.Pos{X: 2, Y: 3}}},
	}

	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, st.Save(path))

	loaded, err := LoadState(path)
	require.NoError(t, err)

	assert.Equal(t, st.TurnNumber, loaded.TurnNumber)
	require.Len(t, loaded.Agents, 2)
	assert.Equal(t, core.NodeID("storage"), loaded.Agents[0].Location.Node)
	require.NotNil(t, loaded.Agents[1].Location.Pos)
	assert.Equal(t, core.Pos{X: 2, Y: 3}, *loaded.Agents[1].Location.Pos)
	assert.Equal(t, st.Resources, loaded.Resources)
}

func TestState_PlannerAgents(t *testing.T) {
	st := NewState()
	st.Agents = []AgentRecord{
		{ID: 0, Location: Location{Node: "storage"}},
		{ID: 1, Status: "dead", Location: Location{Node: "engineering"}},
		{ID: 2, Status: "incapacitated"},
		{ID: 3, Status: "active", Location: Location{Pos: &core.Pos{X: 1, Y: 1}}},
	}

	agents := st.PlannerAgents()
	require.Len(t, agents, 2)
	assert.Equal(t, 0, agents[0].ID)
	assert.Equal(t, 3, agents[1].ID)
}

func TestState_ApplyPlanClampsAtZero(t *testing.T) {
	st := NewState()
	st.Resources["oxygen"] = 1.0

	tk := &core.Task{ID: "t", Duration: 10}
	plan := core.NewPlan("test")
	plan.Assignments = []core.TaskAssignment{
		{Task: tk, ResourceCost: tk.Cost()},
	}

	st.ApplyPlan(plan)
	assert.Equal(t, 0.0, st.Resources["oxygen"])
	assert.Equal(t, 90.0, st.Resources["calories"])
}
