package ipyhop_test

import (
	"testing"

	"github.com/katalvlaran/ipyhop-go/ipyhop"
	"github.com/katalvlaran/ipyhop-go/registry"
	"github.com/katalvlaran/ipyhop-go/stn"
	"github.com/stretchr/testify/require"
)

func aGreet(s *ipyhop.State, args ...any) (*ipyhop.State, bool) {
	s.BoolMap("greeted")[args[0].(string)] = true
	return s, true
}

func mGreet(s *ipyhop.State, args ...any) (ipyhop.TaskList, bool) {
	return ipyhop.TaskList{ipyhop.NewTask("a_greet", args[0])}, true
}

func TestIpyhop_PublicSurface_EndToEnd(t *testing.T) {
	actions := ipyhop.NewActions()
	require.NoError(t, actions.DeclareTemporal(
		registry.NamedTemporalAction("a_greet", aGreet, "PT1M"),
	))
	methods := ipyhop.NewMethods()
	require.NoError(t, methods.DeclareTaskMethods("greet", mGreet))

	p := ipyhop.NewPlanner(actions, methods)
	s := ipyhop.NewState("demo", ipyhop.WithInitialTime("2025-06-01T00:00:00Z"))

	plan, err := p.Plan(s, ipyhop.TaskList{ipyhop.NewTask("greet", "alice")}, ipyhop.WithVerbose(0))
	require.NoError(t, err)
	require.Len(t, plan, 1)
	require.Equal(t, "a_greet", plan[0].Action.Head)
	require.Equal(t, "2025-06-01T00:01:00Z", plan[0].Temporal.End())
}

func TestIpyhop_STN_Surface(t *testing.T) {
	s := ipyhop.NewSTN()
	require.NoError(t, s.AddConstraint("a", "b", stn.Bound{Min: 1, Max: 5}))
	require.True(t, s.Consistent())
}
