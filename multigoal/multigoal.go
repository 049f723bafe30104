// Package multigoal implements the optional multigoal-reduction satellite:
// a conjunction of desired state-variable bindings, reduced to compound
// tasks via methods. It sits alongside the core planner rather than on
// its hot path.
package multigoal

import "github.com/katalvlaran/ipyhop-go/task"

// Binding is one desired variable assignment within a multigoal, e.g.
// ("loc", "alice", "park") meaning "alice's location should become park".
// Var names the state attribute, Key indexes into it (empty for scalar
// attributes), and Want is the desired value.
type Binding struct {
	Var  string
	Key  string
	Want any
}

// Goal is a conjunction of desired bindings, reduced in declaration order.
type Goal struct {
	Name     string
	Bindings []Binding
}

// New builds a named Goal from its bindings, preserving declaration order.
func New(name string, bindings ...Binding) Goal {
	return Goal{Name: name, Bindings: bindings}
}

// Lookup returns the current value stored under (varName, key) in the
// caller's state and whether it is present (the multigoal package has no
// State dependency of its own, so domain code provides a lookup closure
// keyed the same way it stores attributes).
type Lookup func(varName, key string) (any, bool)

// Unsatisfied returns the bindings in g that lookup reports as not yet
// matching their Want value, in g's declared order.
func Unsatisfied(g Goal, lookup Lookup) []Binding {
	var out []Binding
	for _, b := range g.Bindings {
		cur, ok := lookup(b.Var, b.Key)
		if !ok || cur != b.Want {
			out = append(out, b)
		}
	}
	return out
}

// Splitter reduces a Goal against the current state lookup into a task
// list. The default splitter (DefaultSplit) emits one compound task named
// b.Var per unsatisfied binding; method writers may register an
// alternative splitter in its place.
type Splitter func(g Goal, lookup Lookup) task.List

// DefaultSplit produces one compound task per unsatisfied binding, each
// named after the binding's Var and carrying (Key, Want) as its
// arguments, in declared order. If every binding is already satisfied it
// returns an empty list, a successful no-op.
func DefaultSplit(g Goal, lookup Lookup) task.List {
	pending := Unsatisfied(g, lookup)
	out := make(task.List, 0, len(pending))
	for _, b := range pending {
		out = append(out, task.New(b.Var, b.Key, b.Want))
	}
	return out
}
