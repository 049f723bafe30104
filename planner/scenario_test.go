package planner_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ipyhop-go/planner"
	"github.com/katalvlaran/ipyhop-go/planstate"
	"github.com/katalvlaran/ipyhop-go/registry"
	"github.com/katalvlaran/ipyhop-go/stn"
	"github.com/katalvlaran/ipyhop-go/task"
	"github.com/stretchr/testify/require"
)

// --- travel-by-taxi domain (scenarios 1, 2, and the two-traveler supplement) ---

func distKey(from, to string) string { return from + "|" + to }

func newTravelState(start string) *planstate.State {
	s := planstate.New("travel", planstate.WithInitialTime(start))
	dist := s.NumberMap("dist")
	dist[distKey("home_a", "park")] = 8
	dist[distKey("park", "home_a")] = 8
	dist[distKey("home_b", "park")] = 2
	dist[distKey("park", "home_b")] = 2
	loc := s.IdentMap("loc")
	loc["alice"] = "home_a"
	loc["bob"] = "home_b"
	cash := s.NumberMap("cash")
	cash["alice"] = 20
	cash["bob"] = 20
	return s
}

func aWalk(s *planstate.State, args ...any) (*planstate.State, bool) {
	person, from, to := args[0].(string), args[1].(string), args[2].(string)
	if s.IdentMap("loc")[person] != from {
		return nil, false
	}
	if s.NumberMap("dist")[distKey(from, to)] > 2 {
		return nil, false
	}
	s.IdentMap("loc")[person] = to
	return s, true
}

func aCallTaxi(s *planstate.State, args ...any) (*planstate.State, bool) {
	person, loc := args[0].(string), args[1].(string)
	if s.IdentMap("loc")[person] != loc {
		return nil, false
	}
	s.IdentMap("taxi_at")[person] = loc
	return s, true
}

func aRideTaxi(s *planstate.State, args ...any) (*planstate.State, bool) {
	person, dest := args[0].(string), args[1].(string)
	from, ok := s.IdentMap("taxi_at")[person]
	if !ok {
		return nil, false
	}
	fare := s.NumberMap("dist")[distKey(from, dest)] * 1.5
	s.NumberMap("owe")[person] = fare
	s.IdentMap("loc")[person] = dest
	return s, true
}

func aPayDriver(s *planstate.State, args ...any) (*planstate.State, bool) {
	person := args[0].(string)
	owed := s.NumberMap("owe")[person]
	if s.NumberMap("cash")[person] < owed {
		return nil, false
	}
	s.NumberMap("cash")[person] -= owed
	s.NumberMap("owe")[person] = 0
	return s, true
}

func methodByFoot(s *planstate.State, args ...any) (task.List, bool) {
	person, dest := args[0].(string), args[1].(string)
	from := s.IdentMap("loc")[person]
	if s.NumberMap("dist")[distKey(from, dest)] > 2 {
		return nil, false
	}
	return task.List{task.New("a_walk", person, from, dest)}, true
}

func methodByTaxi(s *planstate.State, args ...any) (task.List, bool) {
	person, dest := args[0].(string), args[1].(string)
	from := s.IdentMap("loc")[person]
	return task.List{
		task.New("a_call_taxi", person, from),
		task.New("a_ride_taxi", person, dest),
		task.New("a_pay_driver", person),
	}, true
}

func newTravelRegistries(t *testing.T) (*registry.Actions, *registry.Methods) {
	t.Helper()
	actions := registry.NewActions()
	require.NoError(t, actions.DeclareTemporal(
		registry.NamedTemporalAction("a_walk", aWalk, "PT5M"),
		registry.NamedTemporalAction("a_call_taxi", aCallTaxi, "PT0S"),
		registry.NamedTemporalAction("a_ride_taxi", aRideTaxi, "PT10M"),
		registry.NamedTemporalAction("a_pay_driver", aPayDriver, "PT0S"),
	))
	methods := registry.NewMethods()
	require.NoError(t, methods.DeclareTaskMethods("travel", methodByFoot, methodByTaxi))
	return actions, methods
}

func TestScenario_TravelByTaxi(t *testing.T) {
	actions, methods := newTravelRegistries(t)
	p := planner.New(actions, methods)
	s := newTravelState("2025-01-01T10:00:00Z")

	plan, err := p.Plan(s, task.List{task.New("travel", "alice", "park")})
	require.NoError(t, err)
	require.Len(t, plan, 3)

	require.Equal(t, "a_call_taxi", plan[0].Action.Head)
	require.Equal(t, "2025-01-01T10:00:00Z", plan[0].Temporal.Start())
	require.Equal(t, "2025-01-01T10:00:00Z", plan[0].Temporal.End())

	require.Equal(t, "a_ride_taxi", plan[1].Action.Head)
	require.Equal(t, "2025-01-01T10:00:00Z", plan[1].Temporal.Start())
	require.Equal(t, "2025-01-01T10:10:00Z", plan[1].Temporal.End())

	require.Equal(t, "a_pay_driver", plan[2].Action.Head)
	require.Equal(t, "2025-01-01T10:10:00Z", plan[2].Temporal.Start())
	require.Equal(t, "2025-01-01T10:10:00Z", plan[2].Temporal.End())
}

func TestScenario_WalkEligibility(t *testing.T) {
	actions, methods := newTravelRegistries(t)
	p := planner.New(actions, methods)
	s := newTravelState("2025-01-01T10:00:00Z")

	plan, err := p.Plan(s, task.List{task.New("travel", "bob", "park")})
	require.NoError(t, err)
	require.Len(t, plan, 1)
	require.Equal(t, "a_walk", plan[0].Action.Head)
	require.Equal(t, "2025-01-01T10:00:00Z", plan[0].Temporal.Start())
	require.Equal(t, "2025-01-01T10:05:00Z", plan[0].Temporal.End())
}

func TestScenario_TwoTravelers_SiblingCursorInheritance(t *testing.T) {
	actions, methods := newTravelRegistries(t)
	p := planner.New(actions, methods)
	s := newTravelState("2025-01-01T10:00:00Z")

	plan, err := p.Plan(s, task.List{
		task.New("travel", "alice", "park"),
		task.New("travel", "bob", "park"),
	})
	require.NoError(t, err)
	require.Len(t, plan, 4, "alice's 3-step taxi plan, then bob's 1-step walk")

	require.Equal(t, "a_pay_driver", plan[2].Action.Head)
	require.Equal(t, "2025-01-01T10:10:00Z", plan[2].Temporal.End())

	require.Equal(t, "a_walk", plan[3].Action.Head)
	require.Equal(t, "2025-01-01T10:10:00Z", plan[3].Temporal.Start(), "bob's task must inherit alice's post-state cursor")
	require.Equal(t, "2025-01-01T10:15:00Z", plan[3].Temporal.End())
}

// --- healthcare domain (scenario 3 + simplified-method supplement) ---

func aPrepareRoom(s *planstate.State, args ...any) (*planstate.State, bool) {
	room := args[1].(string)
	if !s.BoolMap("available")[room] {
		return nil, false
	}
	s.BoolMap("available")[room] = false
	return s, true
}

func aPerformSurgery(s *planstate.State, args ...any) (*planstate.State, bool) {
	patient, room, eqType := args[0].(string), args[1].(string), args[2].(string)
	if s.IdentMap("equipment")[room] != eqType {
		return nil, false
	}
	s.BoolMap("surgery_complete")[patient] = true
	return s, true
}

func aRecoverPatient(s *planstate.State, args ...any) (*planstate.State, bool) {
	patient := args[0].(string)
	s.IdentMap("location")[patient] = "recovery"
	return s, true
}

func aCleanRoom(s *planstate.State, args ...any) (*planstate.State, bool) {
	room := args[0].(string)
	s.BoolMap("available")[room] = true
	s.BoolMap("cleaned")[room] = true
	return s, true
}

func tmScheduleSimpleSurgery(s *planstate.State, args ...any) (task.List, bool) {
	patient, room, eqType := args[0].(string), args[1].(string), args[2].(string)
	if !s.BoolMap("cleaned")[room] {
		return nil, false
	}
	return task.List{
		task.New("a_perform_surgery", patient, room, eqType),
		task.New("a_recover_patient", patient),
	}, true
}

func tmScheduleSurgery(s *planstate.State, args ...any) (task.List, bool) {
	patient, room, eqType := args[0].(string), args[1].(string), args[2].(string)
	return task.List{
		task.New("a_prepare_room", patient, room),
		task.New("a_perform_surgery", patient, room, eqType),
		task.New("a_recover_patient", patient),
		task.New("a_clean_room", room),
	}, true
}

func newHealthcareRegistries(t *testing.T) (*registry.Actions, *registry.Methods) {
	t.Helper()
	actions := registry.NewActions()
	require.NoError(t, actions.DeclareTemporal(
		registry.NamedTemporalAction("a_prepare_room", aPrepareRoom, "PT30M"),
		registry.NamedTemporalAction("a_perform_surgery", aPerformSurgery, "PT2H"),
		registry.NamedTemporalAction("a_recover_patient", aRecoverPatient, "PT15M"),
		registry.NamedTemporalAction("a_clean_room", aCleanRoom, "PT20M"),
	))
	methods := registry.NewMethods()
	require.NoError(t, methods.DeclareTaskMethods("schedule_surgery", tmScheduleSimpleSurgery, tmScheduleSurgery))
	return actions, methods
}

func newHealthcareState(start string) *planstate.State {
	s := planstate.New("hc", planstate.WithInitialTime(start))
	s.BoolMap("available")["OR1"] = true
	s.IdentMap("equipment")["OR1"] = "cardiac"
	s.IdentMap("type")["p1"] = "cardiac"
	s.IdentMap("location")["p1"] = "OR1"
	return s
}

func TestScenario_HealthcareFullProcedure(t *testing.T) {
	actions, methods := newHealthcareRegistries(t)
	p := planner.New(actions, methods)
	s := newHealthcareState("2025-01-15T08:00:00Z")

	plan, err := p.Plan(s, task.List{task.New("schedule_surgery", "p1", "OR1", "cardiac")})
	require.NoError(t, err)
	require.Len(t, plan, 4)

	heads := []string{"a_prepare_room", "a_perform_surgery", "a_recover_patient", "a_clean_room"}
	for i, h := range heads {
		require.Equal(t, h, plan[i].Action.Head)
	}
	require.Equal(t, "2025-01-15T11:05:00Z", plan[3].Temporal.End())
}

func TestScenario_HealthcareSimplifiedMethod_FallsBackWhenRoomDirty(t *testing.T) {
	actions, methods := newHealthcareRegistries(t)
	p := planner.New(actions, methods)
	s := newHealthcareState("2025-01-15T08:00:00Z")

	plan, err := p.Plan(s, task.List{task.New("schedule_surgery", "p1", "OR1", "cardiac")})
	require.NoError(t, err)
	require.Len(t, plan, 4, "simple method must be rejected (room not yet cleaned) and fall back to the full procedure")
}

func TestScenario_HealthcareSimplifiedMethod_SkipsPrepAndCleanWhenRoomClean(t *testing.T) {
	actions, methods := newHealthcareRegistries(t)
	p := planner.New(actions, methods)
	s := newHealthcareState("2025-01-15T08:00:00Z")
	s.BoolMap("cleaned")["OR1"] = true

	plan, err := p.Plan(s, task.List{task.New("schedule_surgery", "p1", "OR1", "cardiac")})
	require.NoError(t, err)
	require.Len(t, plan, 2)
	require.Equal(t, "a_perform_surgery", plan[0].Action.Head)
	require.Equal(t, "a_recover_patient", plan[1].Action.Head)
	require.Equal(t, "2025-01-15T10:15:00Z", plan[1].Temporal.End())
}

// --- method-backtracking domain (scenario 4) ---

func aFailAlways(s *planstate.State, args ...any) (*planstate.State, bool) {
	return nil, false
}

func aSucceed(s *planstate.State, args ...any) (*planstate.State, bool) {
	return s, true
}

func methodDoomed(s *planstate.State, args ...any) (task.List, bool) {
	return task.List{task.New("a_fail_always")}, true
}

func methodFallback(s *planstate.State, args ...any) (task.List, bool) {
	return task.List{task.New("a_succeed")}, true
}

func TestScenario_MethodBacktracking(t *testing.T) {
	actions := registry.NewActions()
	require.NoError(t, actions.Declare(
		registry.NamedAction("a_fail_always", aFailAlways),
		registry.NamedAction("a_succeed", aSucceed),
	))
	methods := registry.NewMethods()
	require.NoError(t, methods.DeclareTaskMethods("achieve", methodDoomed, methodFallback))

	p := planner.New(actions, methods)
	s := planstate.New("bt")

	plan, err := p.Plan(s, task.List{task.New("achieve")})
	require.NoError(t, err)
	require.Len(t, plan, 1)
	require.Equal(t, "a_succeed", plan[0].Action.Head)
}

// --- unknown task (scenario 5) ---

func TestScenario_UnknownTask(t *testing.T) {
	actions := registry.NewActions()
	methods := registry.NewMethods()
	p := planner.New(actions, methods)
	s := planstate.New("u")
	s.Set("marker", 42)

	_, err := p.Plan(s, task.List{task.New("frobnicate")})
	require.True(t, errors.Is(err, planner.ErrUnknownTask))

	v, ok := s.Get("marker")
	require.True(t, ok)
	require.Equal(t, 42, v, "a failed plan must never mutate the caller's input state")
}

// --- STN inconsistency (scenario 6), re-asserted at the planner layer per
// the scenario inventory; STN's own invariant tests live in package stn. ---

func TestScenario_STNInconsistency(t *testing.T) {
	s := stn.New()
	require.NoError(t, s.AddConstraint("a", "b", stn.Bound{Min: 10, Max: 10}))
	require.NoError(t, s.AddConstraint("b", "c", stn.Bound{Min: 5, Max: 5}))
	require.NoError(t, s.AddConstraint("a", "c", stn.Bound{Min: 0, Max: 10}))
	require.False(t, s.Consistent())
}

// --- property tests (spec invariants 1-3, 7) ---

func TestProperty_ActionEffectPurityUnderFailure(t *testing.T) {
	original := newTravelState("2025-01-01T10:00:00Z")
	snapshot := original.Copy()

	_, ok := aWalk(original, "alice", "park", "home_a")
	require.False(t, ok, "alice is not at park, precondition must fail")
	require.Equal(t, snapshot.String(), original.String(), "a failing precondition check must leave the state it was given untouched")
}

func TestProperty_MethodOrdering_PrefersEarlierDeclared(t *testing.T) {
	actions := registry.NewActions()
	require.NoError(t, actions.Declare(
		registry.NamedAction("a_fail_always", aFailAlways),
		registry.NamedAction("a_succeed", aSucceed),
	))
	methods := registry.NewMethods()
	require.NoError(t, methods.DeclareTaskMethods("achieve", methodFallback, methodDoomed))

	p := planner.New(actions, methods)
	plan, err := p.Plan(planstate.New("s"), task.List{task.New("achieve")})
	require.NoError(t, err)
	require.Equal(t, "a_succeed", plan[0].Action.Head, "the earlier-declared method must win when both apply")
}

func TestProperty_TemporalMonotonicity(t *testing.T) {
	actions, methods := newTravelRegistries(t)
	p := planner.New(actions, methods)
	plan, err := p.Plan(newTravelState("2025-01-01T10:00:00Z"), task.List{task.New("travel", "alice", "park")})
	require.NoError(t, err)

	for i := 0; i < len(plan); i++ {
		st := plan[i]
		require.LessOrEqual(t, st.Temporal.Start(), st.Temporal.End())
		if i+1 < len(plan) {
			require.LessOrEqual(t, st.Temporal.End(), plan[i+1].Temporal.Start())
		}
	}
}

func TestProperty_PlanDeterminism(t *testing.T) {
	actions, methods := newTravelRegistries(t)
	p := planner.New(actions, methods)

	plan1, err := p.Plan(newTravelState("2025-01-01T10:00:00Z"), task.List{task.New("travel", "alice", "park")})
	require.NoError(t, err)
	plan2, err := p.Plan(newTravelState("2025-01-01T10:00:00Z"), task.List{task.New("travel", "alice", "park")})
	require.NoError(t, err)

	require.Equal(t, plan1, plan2)
}
