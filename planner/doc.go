// Package planner ties registry.Actions and registry.Methods together
// into the HTN refinement engine: Planner.Plan(state, tasks) walks the
// solution tree's frontier, dispatching primitives to actions and
// compounds to methods, retracting on failure, until the frontier is
// empty (a plan) or every root-level alternative is exhausted
// (ErrPlanNotFound).
package planner
