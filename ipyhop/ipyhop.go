// Package ipyhop re-exports the planner's public surface under one
// import path: State, Methods, Actions, Planner, TemporalMetadata, and
// STN, so a caller only ever needs this one import.
package ipyhop

import (
	"github.com/katalvlaran/ipyhop-go/multigoal"
	"github.com/katalvlaran/ipyhop-go/planner"
	"github.com/katalvlaran/ipyhop-go/planstate"
	"github.com/katalvlaran/ipyhop-go/registry"
	"github.com/katalvlaran/ipyhop-go/stn"
	"github.com/katalvlaran/ipyhop-go/task"
	"github.com/katalvlaran/ipyhop-go/temporal"
)

type (
	// State is the per-plan attribute bag and time cursor.
	State = planstate.State
	// Task is a single (head, args...) tuple.
	Task = task.Task
	// TaskList is an ordered sequence of Task.
	TaskList = task.List
	// Actions is the registered-effect catalog.
	Actions = registry.Actions
	// Methods is the registered-decomposer catalog.
	Methods = registry.Methods
	// TemporalMetadata is the {duration, start, end} triple.
	TemporalMetadata = temporal.Metadata
	// STN is a Simple Temporal Network.
	STN = stn.STN
	// Planner is the HTN refinement engine.
	Planner = planner.Planner
	// Plan is an ordered sequence of committed primitives.
	Plan = planner.Plan
	// PlanOption configures a single Plan call.
	PlanOption = planner.PlanOption
	// Goal is a multigoal's ordered conjunction of bindings.
	Goal = multigoal.Goal
)

var (
	// NewState constructs an empty named State.
	NewState = planstate.New
	// NewTask builds a Task from a head and its arguments.
	NewTask = task.New
	// NewActions returns an empty Actions catalog.
	NewActions = registry.NewActions
	// NewMethods returns an empty Methods catalog.
	NewMethods = registry.NewMethods
	// NewSTN returns an empty Simple Temporal Network.
	NewSTN = stn.New
	// NewPlanner binds a Planner to a pair of registries.
	NewPlanner = planner.New
	// NewGoal builds a named multigoal from its bindings.
	NewGoal = multigoal.New
	// DefaultSplit is the default multigoal-to-task-list splitter.
	DefaultSplit = multigoal.DefaultSplit
	// WithVerbose sets a Plan call's trace verbosity.
	WithVerbose = planner.WithVerbose
	// WithContext sets a Plan call's cancellation context.
	WithContext = planner.WithContext
	// WithInitialTime seeds a State's time cursor explicitly.
	WithInitialTime = planstate.WithInitialTime

	// ErrPlanNotFound is returned when every root alternative is exhausted.
	ErrPlanNotFound = planner.ErrPlanNotFound
	// ErrUnknownTask is returned for an unregistered task/action head.
	ErrUnknownTask = planner.ErrUnknownTask
	// ErrInvalidDuration is returned for an unparsable duration.
	ErrInvalidDuration = planner.ErrInvalidDuration
	// ErrInvalidInstant is returned for an unparsable instant.
	ErrInvalidInstant = planner.ErrInvalidInstant
	// ErrTemporalInvariant is returned when the time cursor would move
	// backward.
	ErrTemporalInvariant = planner.ErrTemporalInvariant
)
