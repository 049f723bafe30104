package registry

import (
	"github.com/katalvlaran/ipyhop-go/multigoal"
	"github.com/katalvlaran/ipyhop-go/planstate"
	"github.com/katalvlaran/ipyhop-go/task"
)

// Decomposer is a method's decomposition function: given the inherited
// state and the compound task's arguments, it returns a task list (valid
// even if empty) and true, or (nil, false) if the method does not apply.
type Decomposer func(s *planstate.State, args ...any) (task.List, bool)

// MultigoalDecomposer reduces a multigoal against the current state into
// a task list, as DefaultSplit does by default.
type MultigoalDecomposer func(s *planstate.State, g multigoal.Goal) (task.List, bool)

// Methods is the catalog of task-name -> ordered candidate decomposers
// the planner tries in declaration order.
type Methods struct {
	byTask      map[string][]Decomposer
	byMultigoal map[string][]MultigoalDecomposer
}

// NewMethods returns an empty Methods catalog.
func NewMethods() *Methods {
	return &Methods{
		byTask:      make(map[string][]Decomposer),
		byMultigoal: make(map[string][]MultigoalDecomposer),
	}
}

// DeclareTaskMethods registers, in order, the candidate decomposers tried
// for compound task taskName. Declaration order is the search's
// preference order; re-declaring taskName replaces its candidate list
// wholesale.
func (m *Methods) DeclareTaskMethods(taskName string, ms ...Decomposer) error {
	for _, fn := range ms {
		if fn == nil {
			return ErrNilDecomposer
		}
	}
	m.byTask[taskName] = append([]Decomposer(nil), ms...)
	return nil
}

// DeclareMultigoalMethods registers, in order, the candidate splitters
// tried for multigoal name. This sits alongside the core planner rather
// than on its hot path.
func (m *Methods) DeclareMultigoalMethods(name string, ms ...MultigoalDecomposer) error {
	for _, fn := range ms {
		if fn == nil {
			return ErrNilDecomposer
		}
	}
	m.byMultigoal[name] = append([]MultigoalDecomposer(nil), ms...)
	return nil
}

// Candidates returns the ordered decomposer list registered for taskName.
func (m *Methods) Candidates(taskName string) ([]Decomposer, bool) {
	c, ok := m.byTask[taskName]
	return c, ok
}

// HasTask reports whether taskName has any registered method.
func (m *Methods) HasTask(taskName string) bool {
	_, ok := m.byTask[taskName]
	return ok
}

// MultigoalCandidates returns the ordered splitter list registered for
// multigoal name.
func (m *Methods) MultigoalCandidates(name string) ([]MultigoalDecomposer, bool) {
	c, ok := m.byMultigoal[name]
	return c, ok
}
