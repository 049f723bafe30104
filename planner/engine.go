package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ipyhop-go/planstate"
	"github.com/katalvlaran/ipyhop-go/registry"
	"github.com/katalvlaran/ipyhop-go/solution"
	"github.com/katalvlaran/ipyhop-go/task"
	"github.com/katalvlaran/ipyhop-go/temporal"
)

// Planner dispatches a task list against a fixed pair of registries,
// producing a total-order Plan or a hard error.
type Planner struct {
	actions *registry.Actions
	methods *registry.Methods
}

// New returns a Planner bound to the given registries. Registries are
// treated as read-only for the lifetime of every Plan call.
func New(actions *registry.Actions, methods *registry.Methods) *Planner {
	return &Planner{actions: actions, methods: methods}
}

// Plan refines tasks against s, returning the committed primitive
// sequence on success. s itself is never mutated, the engine clones it
// before the first dispatch.
func (p *Planner) Plan(s *planstate.State, tasks task.List, opts ...PlanOption) (Plan, error) {
	o := defaultPlanOptions()
	for _, opt := range opts {
		opt(&o)
	}

	initial := s.Copy()
	tree := solution.New(initial)
	if _, err := tree.Seed(0, initial, tasks); err != nil {
		return nil, fmt.Errorf("planner: seed root: %w", err)
	}

	for {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}

		frontierID, err := tree.Frontier()
		if errors.Is(err, solution.ErrNoFrontier) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("planner: %w", err)
		}

		node, err := tree.Node(frontierID)
		if err != nil {
			return nil, fmt.Errorf("planner: %w", err)
		}
		head := node.Task.Head

		switch {
		case p.actions.Has(head):
			if err := p.dispatchAction(tree, &o, frontierID, node); err != nil {
				return nil, err
			}
		case p.methods.HasTask(head):
			if err := p.dispatchMethod(tree, &o, frontierID, node); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("planner: task %q at node %d: %w", head, frontierID, ErrUnknownTask)
		}
	}

	leaves := tree.Leaves()
	out := make(Plan, 0, len(leaves))
	for _, n := range leaves {
		out = append(out, Step{Action: n.Task, Temporal: n.Temporal})
	}
	return out, nil
}

// dispatchAction applies the registered effect for a primitive frontier
// node, stamping TemporalMetadata when the action is temporal, or
// triggers retraction on precondition failure.
func (p *Planner) dispatchAction(tree *solution.Tree, o *planOptions, frontierID int, node *solution.Node) error {
	head := node.Task.Head
	s := node.PreState
	fn, _ := p.actions.Get(head)

	attempt := s.Copy()
	next, ok := fn(attempt, node.Task.Args...)
	if o.verbose >= 2 {
		fmt.Fprintf(o.trace, "action %s: applying at node %d -> ok=%v\n", node.Task, frontierID, ok)
	}
	if !ok {
		return p.retractOrFail(tree, o, frontierID, head)
	}

	var md *temporal.Metadata
	if p.actions.HasTemporal(head) {
		template, _ := p.actions.GetDuration(head)
		durSec, err := template.DurationSeconds()
		if err != nil {
			return fmt.Errorf("planner: task %q at node %d: %w", head, frontierID, ErrInvalidDuration)
		}
		start := s.GetCurrentTime()
		if err := next.AdvanceTime(durSec); err != nil {
			if errors.Is(err, planstate.ErrTemporalInvariant) {
				return fmt.Errorf("planner: task %q at node %d: %w", head, frontierID, ErrTemporalInvariant)
			}
			return fmt.Errorf("planner: task %q at node %d: %w", head, frontierID, ErrInvalidInstant)
		}
		end := next.GetCurrentTime()
		m, err := temporal.NewMetadata(durSec, start, end)
		if err != nil {
			return fmt.Errorf("planner: task %q at node %d: %w", head, frontierID, ErrInvalidDuration)
		}
		md = m
		next.AddToTimeline(node.Task, start, end)
	}

	if err := tree.ResolvePrimitive(frontierID, md); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if o.verbose >= 1 {
		fmt.Fprintf(o.trace, "committed %s at node %d\n", node.Task, frontierID)
	}
	if o.verbose >= 3 {
		fmt.Fprintf(o.trace, "post-state:\n%s", next.String())
	}
	propagatePostState(tree, frontierID, next)
	return nil
}

// dispatchMethod tries candidate decomposers for a compound frontier
// node starting after its stored MethodIndex, seeding the winning
// candidate's task list as children, or triggers retraction if every
// candidate is exhausted.
func (p *Planner) dispatchMethod(tree *solution.Tree, o *planOptions, frontierID int, node *solution.Node) error {
	head := node.Task.Head
	s := node.PreState
	candidates, _ := p.methods.Candidates(head)

	for idx := node.MethodIndex + 1; idx < len(candidates); idx++ {
		list, applies := candidates[idx](s, node.Task.Args...)
		if o.verbose >= 2 {
			fmt.Fprintf(o.trace, "method #%d for %s: applies=%v\n", idx, node.Task, applies)
		}
		if !applies {
			continue
		}
		childIDs, err := tree.Seed(frontierID, s, list)
		if err != nil {
			return fmt.Errorf("planner: %w", err)
		}
		if err := tree.ResolveCompound(frontierID, idx); err != nil {
			return fmt.Errorf("planner: %w", err)
		}
		if o.verbose >= 1 {
			fmt.Fprintf(o.trace, "decomposed %s via method #%d into %d subtask(s)\n", node.Task, idx, len(childIDs))
		}
		if len(childIDs) == 0 {
			propagatePostState(tree, frontierID, s)
		}
		return nil
	}

	return p.retractOrFail(tree, o, frontierID, head)
}

// retractOrFail walks up from failingID looking for the nearest ancestor
// with an unexplored method alternative, discarding everything below it
// and resuming there; if none exists the plan fails.
func (p *Planner) retractOrFail(tree *solution.Tree, o *planOptions, failingID int, failingHead string) error {
	cur := failingID
	for {
		n, err := tree.Node(cur)
		if err != nil {
			return fmt.Errorf("planner: %w", err)
		}
		parent := n.Parent
		if parent == -1 {
			return fmt.Errorf("planner: task %q: %w", failingHead, ErrPlanNotFound)
		}

		ancestor, err := tree.Node(parent)
		if err != nil {
			return fmt.Errorf("planner: %w", err)
		}
		candidates, hasCandidates := p.methods.Candidates(ancestor.Task.Head)
		if hasCandidates && ancestor.MethodIndex+1 < len(candidates) {
			priorIdx := ancestor.MethodIndex
			if o.verbose >= 1 {
				fmt.Fprintf(o.trace, "retracting node %d (%s), resuming ancestor %d (%s) at method #%d\n",
					failingID, failingHead, parent, ancestor.Task, priorIdx+1)
			}
			if _, err := tree.Retract(parent); err != nil {
				return fmt.Errorf("planner: %w", err)
			}
			resumed, err := tree.Node(parent)
			if err != nil {
				return fmt.Errorf("planner: %w", err)
			}
			resumed.MethodIndex = priorIdx
			return nil
		}
		cur = parent
	}
}

// propagatePostState feeds post into the next sibling awaiting dispatch,
// or, if nodeID was the last child of its parent, bubbles the
// post-state up so the parent's own next sibling inherits it: the time
// cursor of child k+1 inherits from the post-state of child k.
func propagatePostState(tree *solution.Tree, nodeID int, post *planstate.State) {
	cur := nodeID
	for {
		n, err := tree.Node(cur)
		if err != nil {
			return
		}
		if n.Parent == -1 {
			return
		}
		parent, err := tree.Node(n.Parent)
		if err != nil {
			return
		}
		idx := -1
		for i, c := range parent.Children {
			if c == cur {
				idx = i
				break
			}
		}
		if idx == -1 {
			return
		}
		if idx+1 < len(parent.Children) {
			sibling, err := tree.Node(parent.Children[idx+1])
			if err == nil {
				sibling.PreState = post
			}
			return
		}
		cur = n.Parent
	}
}
