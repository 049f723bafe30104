package planstate

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ipyhop-go/internal/clone"
	"github.com/katalvlaran/ipyhop-go/task"
	"github.com/katalvlaran/ipyhop-go/temporal"
)

// TimelineEntry records one committed primitive action's stamped window:
// the action tuple plus its start and end instants.
type TimelineEntry struct {
	Action task.Task
	Start  string
	End    string
}

// State is a named bag of domain-declared attributes plus the temporal
// bookkeeping every state carries: a monotonic time cursor and an
// executed-action timeline.
type State struct {
	Name string

	attrs       map[string]any
	currentTime string
	timeline    []TimelineEntry
}

// Option configures a State at construction time.
type Option func(*State)

// WithInitialTime sets the state's starting time cursor to an explicit
// ISO-8601 instant instead of the default "now".
func WithInitialTime(instant string) Option {
	return func(s *State) { s.currentTime = instant }
}

// New creates an empty named State. Absent WithInitialTime, the time
// cursor defaults to the construction-time instant.
func New(name string, opts ...Option) *State {
	s := &State{
		Name:        name,
		attrs:       make(map[string]any),
		currentTime: temporal.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set stores value under name. Domain code is free to store any Go value;
// the typed accessors below (IdentMap, BoolMap, NumberMap, OptIdentMap,
// NestedBoolMap) are ergonomic helpers over common shapes, not a closed
// schema.
func (s *State) Set(name string, value any) {
	s.attrs[name] = value
}

// Get retrieves the raw attribute value stored under name, and whether it
// was present.
func (s *State) Get(name string) (any, bool) {
	v, ok := s.attrs[name]
	return v, ok
}

// IdentMap returns the named attribute as a map[string]string (an
// identifier -> identifier binding, e.g. State.loc in the travel domain),
// creating an empty one on first access.
func (s *State) IdentMap(name string) map[string]string {
	v, ok := s.attrs[name]
	if !ok {
		m := make(map[string]string)
		s.attrs[name] = m
		return m
	}
	return v.(map[string]string)
}

// BoolMap returns the named attribute as a map[string]bool (e.g.
// surgery_complete), creating an empty one on first access.
func (s *State) BoolMap(name string) map[string]bool {
	v, ok := s.attrs[name]
	if !ok {
		m := make(map[string]bool)
		s.attrs[name] = m
		return m
	}
	return v.(map[string]bool)
}

// NumberMap returns the named attribute as a map[string]float64 (e.g.
// State.cash/owe), creating an empty one on first access.
func (s *State) NumberMap(name string) map[string]float64 {
	v, ok := s.attrs[name]
	if !ok {
		m := make(map[string]float64)
		s.attrs[name] = m
		return m
	}
	return v.(map[string]float64)
}

// OptIdentMap returns the named attribute as a map[string]*string (an
// identifier -> identifier-or-none binding), creating an empty one on
// first access.
func (s *State) OptIdentMap(name string) map[string]*string {
	v, ok := s.attrs[name]
	if !ok {
		m := make(map[string]*string)
		s.attrs[name] = m
		return m
	}
	return v.(map[string]*string)
}

// NestedBoolMap returns the named attribute as a map[string]map[string]bool
// (e.g. a rigid "is_a" membership relation), creating an empty one on
// first access.
func (s *State) NestedBoolMap(name string) map[string]map[string]bool {
	v, ok := s.attrs[name]
	if !ok {
		m := make(map[string]map[string]bool)
		s.attrs[name] = m
		return m
	}
	return v.(map[string]map[string]bool)
}

// Copy returns a fully independent deep clone: every attribute value and
// the timeline are copied, never shared with the receiver.
func (s *State) Copy() *State {
	out := &State{
		Name:        s.Name,
		attrs:       make(map[string]any, len(s.attrs)),
		currentTime: s.currentTime,
		timeline:    append([]TimelineEntry(nil), s.timeline...),
	}
	for k, v := range s.attrs {
		out.attrs[k] = clone.Value(v)
	}
	return out
}

// GetCurrentTime returns the state's time cursor as an ISO-8601 instant.
func (s *State) GetCurrentTime() string {
	return s.currentTime
}

// SetCurrentTime sets the state's time cursor directly, bypassing the
// monotonicity check AdvanceTime enforces. Domain/test code that needs to
// rewind a cursor (e.g. seeding a problem) should use this; the planner
// itself only ever moves the cursor forward via AdvanceTime.
func (s *State) SetCurrentTime(instant string) {
	s.currentTime = instant
}

// AdvanceTime moves the time cursor forward by a non-negative number of
// seconds, failing with ErrTemporalInvariant if seconds is negative,
// backing the planner's monotonic-cursor guarantee.
func (s *State) AdvanceTime(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("planstate: advance by %g seconds: %w", seconds, ErrTemporalInvariant)
	}
	next, err := temporal.AddDuration(s.currentTime, seconds)
	if err != nil {
		return err
	}
	s.currentTime = next
	return nil
}

// AddToTimeline appends a committed action's stamped window.
func (s *State) AddToTimeline(action task.Task, start, end string) {
	s.timeline = append(s.timeline, TimelineEntry{Action: action, Start: start, End: end})
}

// GetTimeline returns a copy of the executed-action timeline.
func (s *State) GetTimeline() []TimelineEntry {
	return append([]TimelineEntry(nil), s.timeline...)
}

// ClearTimeline empties the timeline.
func (s *State) ClearTimeline() {
	s.timeline = nil
}

// String renders the state's attributes for debugging, one line per
// attribute, sorted by attribute name.
func (s *State) String() string {
	names := make([]string, 0, len(s.attrs))
	for name := range s.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for _, name := range names {
		out += fmt.Sprintf("%s.%s = %v\n", s.Name, name, s.attrs[name])
	}
	return out
}
