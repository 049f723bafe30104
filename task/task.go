// Package task defines the tagged-tuple Task shape shared by the action
// and method registries, the solution tree, and the planner engine.
//
// A task is a tagged tuple whose head names a task or action; it is a
// small named-field struct rather than a raw slice so registries and the
// engine can pattern-match on Head without reflecting into Args[0].
package task

import "fmt"

// Task is one planning task: a head (action or compound task name) plus
// its positional arguments. Which registry resolves Head (action vs.
// method) is decided at dispatch time by the planner, not encoded in Task
// itself.
type Task struct {
	Head string
	Args []any
}

// New builds a Task from a head name and its arguments.
func New(head string, args ...any) Task {
	return Task{Head: head, Args: args}
}

// List is a finite ordered sequence of tasks.
type List []Task

// String renders a Task as a Lisp-ish tuple, e.g. `(travel alice park)`,
// for trace/debug output.
func (t Task) String() string {
	s := "(" + t.Head
	for _, a := range t.Args {
		s += fmt.Sprintf(" %v", a)
	}
	return s + ")"
}
