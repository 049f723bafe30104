package planner

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ipyhop-go/task"
	"github.com/katalvlaran/ipyhop-go/temporal"
)

// Step is one committed primitive in a Plan. Temporal is nil for a
// non-temporal action.
type Step struct {
	Action   task.Task
	Temporal *temporal.Metadata
}

// Plan is the ordered sequence of committed primitives produced by a
// successful Planner.Plan call.
type Plan []Step

// String renders the plan one step per line, stamped steps annotated
// with their start/end window.
func (p Plan) String() string {
	var b strings.Builder
	for i, st := range p {
		if st.Temporal != nil {
			fmt.Fprintf(&b, "%d: %s [%s -> %s]\n", i, st.Action, st.Temporal.Start(), st.Temporal.End())
		} else {
			fmt.Fprintf(&b, "%d: %s\n", i, st.Action)
		}
	}
	return b.String()
}
