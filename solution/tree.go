package solution

import (
	"fmt"

	"github.com/katalvlaran/ipyhop-go/planstate"
	"github.com/katalvlaran/ipyhop-go/task"
	"github.com/katalvlaran/ipyhop-go/temporal"
)

// Kind classifies a Node's resolution status.
type Kind int

const (
	// Pending marks a task not yet dispatched by the planner.
	Pending Kind = iota
	// Primitive marks a resolved action node.
	Primitive
	// Compound marks a resolved task node that was decomposed into Children.
	Compound
)

// Node is one task occurrence in the solution tree. Nodes are addressed
// by their integer ID (their index in Tree.nodes), never by pointer.
type Node struct {
	ID          int
	Parent      int // -1 for the synthetic root
	Children    []int
	Task        task.Task
	Kind        Kind
	PreState    *planstate.State // state inherited on entry to this task
	MethodIndex int              // Methods candidate that produced Children; on a retracted node, the last one tried (-1 if none tried yet)
	Temporal    *temporal.Metadata
}

// Tree is the append-only arena of Nodes built up during planning. IDs
// are never reused, even across a Retract, so a node abandoned by one
// exploration attempt stays physically present (tombstoned: unlinked
// from its parent's live Children, but not overwritten) for post-mortem
// inspection. Node 0 is always the synthetic root (an empty placeholder
// task with no Parent).
type Tree struct {
	nodes []*Node
}

// New returns a Tree seeded with only its synthetic root, resolved
// against the given initial state.
func New(initial *planstate.State) *Tree {
	return &Tree{nodes: []*Node{{
		ID:       0,
		Parent:   -1,
		Kind:     Compound,
		PreState: initial,
	}}}
}

// Seed appends pending child nodes for tasks under parent, in order. It
// returns their assigned IDs.
func (t *Tree) Seed(parent int, pre *planstate.State, tasks task.List) ([]int, error) {
	if parent < 0 || parent >= len(t.nodes) {
		return nil, fmt.Errorf("solution: seed parent %d: %w", parent, ErrNodeNotFound)
	}
	ids := make([]int, 0, len(tasks))
	for _, tk := range tasks {
		id := len(t.nodes)
		t.nodes = append(t.nodes, &Node{
			ID:          id,
			Parent:      parent,
			Task:        tk,
			Kind:        Pending,
			PreState:    pre,
			MethodIndex: -1,
		})
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
		ids = append(ids, id)
	}
	return ids, nil
}

// Node returns the node with the given ID.
func (t *Tree) Node(id int) (*Node, error) {
	if id < 0 || id >= len(t.nodes) {
		return nil, fmt.Errorf("solution: node %d: %w", id, ErrNodeNotFound)
	}
	return t.nodes[id], nil
}

// ResolvePrimitive marks id as a resolved primitive action, recording its
// temporal stamp if the action was temporal (md may be nil).
func (t *Tree) ResolvePrimitive(id int, md *temporal.Metadata) error {
	n, err := t.Node(id)
	if err != nil {
		return err
	}
	n.Kind = Primitive
	n.Temporal = md
	return nil
}

// ResolveCompound marks id as resolved via the methodIndex-th candidate,
// whose decomposition children must already be Seeded under id.
func (t *Tree) ResolveCompound(id int, methodIndex int) error {
	n, err := t.Node(id)
	if err != nil {
		return err
	}
	n.Kind = Compound
	n.MethodIndex = methodIndex
	return nil
}

// Frontier returns the ID of the leftmost live unresolved leaf, found by
// a pre-order walk from the root through resolved Compound nodes' live
// Children, not a bare lowest-ID scan, since a node's children are
// always assigned higher IDs than later-declared siblings, and those
// siblings must wait behind this node's whole subtree in DFS order.
// Returns ErrNoFrontier if every leaf is resolved.
func (t *Tree) Frontier() (int, error) {
	if id, ok := t.frontierIn(0); ok {
		return id, nil
	}
	return -1, ErrNoFrontier
}

func (t *Tree) frontierIn(id int) (int, bool) {
	n := t.nodes[id]
	switch n.Kind {
	case Pending:
		return id, true
	case Compound:
		for _, c := range n.Children {
			if found, ok := t.frontierIn(c); ok {
				return found, true
			}
		}
	}
	return -1, false
}

// Retract discards id's whole subtree by unlinking it (id.Children is
// cleared, so its former descendants are no longer reachable from the
// root and drop out of Frontier/Leaves), then resets id itself to
// Pending so the engine can retry it against the next method
// alternative. The abandoned descendant nodes stay in the arena under
// their original IDs rather than being overwritten, the tree at the
// moment of failure remains inspectable, since IDs are never reused,
// a plain slice-truncation would also have to discard any later-ID'd
// sibling seeded before id's subtree existed, which is wrong; unlinking
// only id's own Children avoids that.
func (t *Tree) Retract(id int) (*planstate.State, error) {
	n, err := t.Node(id)
	if err != nil {
		return nil, err
	}
	pre := n.PreState
	n.Kind = Pending
	n.Children = nil
	n.MethodIndex = -1
	n.Temporal = nil
	return pre, nil
}

// Leaves returns the resolved Primitive nodes reachable from the root,
// in left-to-right order, the current total-order plan. Nodes
// unlinked by a past Retract are not reachable and so are excluded,
// even though they remain physically present in the arena.
func (t *Tree) Leaves() []*Node {
	var out []*Node
	var walk func(id int)
	walk = func(id int) {
		n := t.nodes[id]
		switch n.Kind {
		case Primitive:
			out = append(out, n)
		case Compound:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(0)
	return out
}

// Size returns the number of nodes ever allocated in the arena
// (including tombstoned ones still physically present after a Retract).
func (t *Tree) Size() int {
	return len(t.nodes)
}
