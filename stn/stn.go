// Package stn implements a Simple Temporal Network: a graph of opaque
// time-point identifiers connected by (min, max) distance constraints,
// made consistent (or not) via all-pairs shortest paths.
//
// Points are added incrementally by callers, so the distance table is a
// map-indexed structure rebuilt lazily from a fixed, insertion-derived
// point order rather than a fixed-size dense buffer: "+Inf means no
// path, diagonal is 0, fixed k -> i -> j loop order" closure over a
// table sized to the current point set.
package stn

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConstraint is returned by AddConstraint when min > max, a
// programmer error caught at add time rather than deferred to
// Consistent().
var ErrInvalidConstraint = errors.New("stn: invalid constraint: min > max")

// Bound pairs the minimum and maximum allowed distance t(v) - t(u) for a
// constrained ordered pair (u, v).
type Bound struct {
	Min float64
	Max float64
}

// Interval is the external, introspection-friendly shape of a constraint:
// (from, to, min, max).
type Interval struct {
	From string
	To   string
	Min  float64
	Max  float64
}

type edgeKey struct{ from, to string }

// STN is a Simple Temporal Network. The zero value is not usable; build
// one with New.
type STN struct {
	points      []string              // insertion order, for deterministic closure iteration
	index       map[string]int        // point -> position in points
	constraints map[edgeKey]Bound     // user-declared constraints, keyed by (from, to)
	dist        [][]float64           // lazily (re)built distance matrix
	built       bool                  // whether dist reflects the current constraint set
	consistent  bool                  // cached verdict, valid iff built
}

// New returns an empty STN.
func New() *STN {
	return &STN{
		index:       make(map[string]int),
		constraints: make(map[edgeKey]Bound),
	}
}

// AddTimePoint registers p if not already present. Adding a point
// invalidates any cached consistency verdict.
func (s *STN) AddTimePoint(p string) {
	if _, ok := s.index[p]; ok {
		return
	}
	s.index[p] = len(s.points)
	s.points = append(s.points, p)
	s.built = false
}

// AddConstraint adds the constraint min <= t(v) - t(u) <= max for the
// ordered pair (u, v), implicitly registering both points. Each pair keeps
// one stored bound: a later constraint on the same (u, v) is intersected
// with it (larger min, smaller max), so contradictory constraints in
// series make the network inconsistent. It fails with
// ErrInvalidConstraint if min > max; it never mutates the receiver on
// failure.
func (s *STN) AddConstraint(u, v string, bound Bound) error {
	if bound.Min > bound.Max {
		return fmt.Errorf("stn: add constraint (%s, %s) min=%g max=%g: %w", u, v, bound.Min, bound.Max, ErrInvalidConstraint)
	}
	s.AddTimePoint(u)
	s.AddTimePoint(v)
	key := edgeKey{u, v}
	if old, ok := s.constraints[key]; ok {
		bound.Min = math.Max(old.Min, bound.Min)
		bound.Max = math.Min(old.Max, bound.Max)
	}
	s.constraints[key] = bound
	s.built = false
	return nil
}

// rebuild recomputes the distance matrix from scratch via Floyd-Warshall,
// iterating points in a fixed, insertion-derived order so that repeated
// calls against the same constraint set produce byte-identical results.
func (s *STN) rebuild() {
	n := len(s.points)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
		}
	}

	for key, bound := range s.constraints {
		ui, vi := s.index[key.from], s.index[key.to]
		// to - from <= max
		if bound.Max < dist[ui][vi] {
			dist[ui][vi] = bound.Max
		}
		// from - to <= -min
		if -bound.Min < dist[vi][ui] {
			dist[vi][ui] = -bound.Min
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := dist[k][j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	s.dist = dist
	s.consistent = true
	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			s.consistent = false
			break
		}
	}
	s.built = true
}

// Consistent reports whether the network's constraints admit a solution,
// lazily (re)computing the all-pairs closure: consistent iff every
// diagonal distance is non-negative after closure.
func (s *STN) Consistent() bool {
	if !s.built {
		s.rebuild()
	}
	return s.consistent
}

// Distance returns the tightest known upper bound on t(v) - t(u) after
// closure, and false if no path connects u to v (or either point is
// unknown).
func (s *STN) Distance(u, v string) (float64, bool) {
	ui, uok := s.index[u]
	vi, vok := s.index[v]
	if !uok || !vok {
		return 0, false
	}
	if !s.built {
		s.rebuild()
	}
	d := s.dist[ui][vi]
	if math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// CheckIntervalConflicts reports whether adding the constraint (u, v,
// bound) to a copy of the network would make it inconsistent. The
// receiver is never mutated.
func (s *STN) CheckIntervalConflicts(u, v string, bound Bound) (bool, error) {
	cp := s.Copy()
	if err := cp.AddConstraint(u, v, bound); err != nil {
		return false, err
	}
	return !cp.Consistent(), nil
}

// Copy returns an independent deep copy of s.
func (s *STN) Copy() *STN {
	cp := New()
	cp.points = append([]string(nil), s.points...)
	cp.index = make(map[string]int, len(s.index))
	for k, v := range s.index {
		cp.index[k] = v
	}
	cp.constraints = make(map[edgeKey]Bound, len(s.constraints))
	for k, v := range s.constraints {
		cp.constraints[k] = v
	}
	// The distance cache is recomputed on demand; no need to copy it.
	return cp
}

// GetIntervals returns the stored bound of every constrained ordered pair
// as (from, to, min, max) tuples.
func (s *STN) GetIntervals() []Interval {
	out := make([]Interval, 0, len(s.constraints))
	for _, p := range s.points {
		for _, q := range s.points {
			if b, ok := s.constraints[edgeKey{p, q}]; ok {
				out = append(out, Interval{From: p, To: q, Min: b.Min, Max: b.Max})
			}
		}
	}
	return out
}

// TimePoints returns the registered time points in insertion order.
func (s *STN) TimePoints() []string {
	return append([]string(nil), s.points...)
}
