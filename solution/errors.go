// Package solution implements the planner's solution tree: an arena of
// nodes indexed by integer ID rather than pointers, so that retraction
// (backtracking out of a failed method/action choice) is a cheap
// unlink-and-reset of one node instead of pointer surgery across a tree.
//
// Nodes are addressed by stable integer ID into a flat backing slice
// rather than by pointer chains, and the tree specializes that arena
// shape to a strict single-parent hierarchy: every node has exactly one
// parent and an ordered list of children, with no cross-branch edges.
package solution

import "errors"

// ErrNodeNotFound is returned when a node ID does not exist in the tree.
var ErrNodeNotFound = errors.New("solution: node not found")

// ErrNoFrontier is returned by Frontier when every leaf is resolved
// (the tree already describes a complete plan).
var ErrNoFrontier = errors.New("solution: no open frontier node")
