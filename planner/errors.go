// Package planner implements the HTN refinement engine: it dispatches
// the solution tree's frontier node to either an action or a method,
// retracting on failure, until the frontier is empty or every
// alternative has been exhausted.
//
// Search proceeds depth-first through a mutable engine struct with
// explicit frontier state and a deterministic branching order: a
// failing precondition or exhausted method list triggers retraction
// into the nearest ancestor with an untried alternative, rather than
// unwinding through recursive call frames.
package planner

import "errors"

// ErrPlanNotFound is returned when every alternative at the root has
// been exhausted without producing a complete plan.
var ErrPlanNotFound = errors.New("planner: no plan found")

// ErrUnknownTask is returned when a frontier task's head names neither
// a registered action nor a registered method.
var ErrUnknownTask = errors.New("planner: unknown task")

// ErrInvalidDuration is returned when a temporal action's stamping
// fails to parse its declared or derived duration.
var ErrInvalidDuration = errors.New("planner: invalid duration")

// ErrInvalidInstant is returned when stamping fails to parse an instant.
var ErrInvalidInstant = errors.New("planner: invalid instant")

// ErrTemporalInvariant is returned when stamping would move a state's
// time cursor backward.
var ErrTemporalInvariant = errors.New("planner: temporal invariant violated")
