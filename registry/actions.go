package registry

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/katalvlaran/ipyhop-go/planstate"
	"github.com/katalvlaran/ipyhop-go/temporal"
)

// Effect is a primitive action's pure-by-convention effect function: it
// inspects preconditions on the state passed in and, on satisfaction,
// returns a mutated state and true; on violation it returns (nil, false)
// with no effect, the one Go shape that makes a soft failure impossible
// to ignore.
type Effect func(s *planstate.State, args ...any) (*planstate.State, bool)

// ActionEntry names one non-temporal action for Declare.
type ActionEntry struct {
	Name string
	Fn   Effect
}

// NamedAction builds an ActionEntry with an explicit name.
func NamedAction(name string, fn Effect) ActionEntry {
	return ActionEntry{Name: name, Fn: fn}
}

// Action builds an ActionEntry whose name is inferred from fn's own
// function name.
func Action(fn Effect) ActionEntry {
	return ActionEntry{Name: funcName(fn), Fn: fn}
}

// TemporalEntry names one temporal action (an Effect plus its declared
// duration) for DeclareTemporal. Duration may be an ISO-8601 string or a
// non-negative number of seconds.
type TemporalEntry struct {
	Name     string
	Fn       Effect
	Duration any
}

// NamedTemporalAction builds a TemporalEntry with an explicit name and
// declared duration.
func NamedTemporalAction(name string, fn Effect, duration any) TemporalEntry {
	return TemporalEntry{Name: name, Fn: fn, Duration: duration}
}

// TemporalAction builds a TemporalEntry with its name inferred from fn.
func TemporalAction(fn Effect, duration any) TemporalEntry {
	return TemporalEntry{Name: funcName(fn), Fn: fn, Duration: duration}
}

func funcName(fn Effect) string {
	full := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimSuffix(full, "-fm")
}

// Actions is the catalog of registered effect functions, keyed by name,
// alongside each action's cost, success/failure probability, and (for
// temporal actions) declared duration metadata.
type Actions struct {
	effects   map[string]Effect
	cost      map[string]float64
	prob      map[string][2]float64
	durations map[string]*temporal.Metadata
}

// NewActions returns an empty Actions catalog.
func NewActions() *Actions {
	return &Actions{
		effects:   make(map[string]Effect),
		cost:      make(map[string]float64),
		prob:      make(map[string][2]float64),
		durations: make(map[string]*temporal.Metadata),
	}
}

// Declare registers each entry's effect function, defaulting its cost to
// 1.0 and its [success, failure] probability to [1, 0]. Re-declaring a
// name overwrites only that name's effect function in place, leaving
// every other previously-declared action untouched.
func (a *Actions) Declare(entries ...ActionEntry) error {
	for _, e := range entries {
		if e.Fn == nil {
			return fmt.Errorf("registry: declare action %q: %w", e.Name, ErrNilEffect)
		}
		a.effects[e.Name] = e.Fn
		if _, ok := a.cost[e.Name]; !ok {
			a.cost[e.Name] = 1.0
			a.prob[e.Name] = [2]float64{1, 0}
		}
	}
	return nil
}

// DeclareTemporal registers each entry's effect function (if not already
// registered) and stores its declared duration. An unparsable duration is
// fatal at declaration time, wrapped in ErrInvalidDuration.
func (a *Actions) DeclareTemporal(entries ...TemporalEntry) error {
	for _, e := range entries {
		if e.Fn == nil {
			return fmt.Errorf("registry: declare temporal action %q: %w", e.Name, ErrNilEffect)
		}
		md, err := temporal.NewMetadata(e.Duration, "", "")
		if err != nil {
			return fmt.Errorf("registry: declare temporal action %q: %w", e.Name, ErrInvalidDuration)
		}
		if _, ok := a.effects[e.Name]; !ok {
			a.effects[e.Name] = e.Fn
		}
		if _, ok := a.cost[e.Name]; !ok {
			a.cost[e.Name] = 1.0
			a.prob[e.Name] = [2]float64{1, 0}
		}
		a.durations[e.Name] = md
	}
	return nil
}

// DeclareModels overrides cost/probability for already-declared actions.
func (a *Actions) DeclareModels(cost map[string]float64, prob map[string][2]float64) {
	for name, c := range cost {
		a.cost[name] = c
	}
	for name, p := range prob {
		a.prob[name] = p
	}
}

// Get returns the effect function registered under name.
func (a *Actions) Get(name string) (Effect, bool) {
	fn, ok := a.effects[name]
	return fn, ok
}

// Has reports whether name is a registered action.
func (a *Actions) Has(name string) bool {
	_, ok := a.effects[name]
	return ok
}

// GetDuration returns the declared TemporalMetadata template for name, or
// (nil, false) if name is not a temporal action.
func (a *Actions) GetDuration(name string) (*temporal.Metadata, bool) {
	md, ok := a.durations[name]
	return md, ok
}

// HasTemporal reports whether name is a temporal action.
func (a *Actions) HasTemporal(name string) bool {
	_, ok := a.durations[name]
	return ok
}

// Cost returns the declared cost for name (default 1.0).
func (a *Actions) Cost(name string) (float64, bool) {
	c, ok := a.cost[name]
	return c, ok
}

// Prob returns the declared [success, failure] probability pair for name
// (default [1, 0]).
func (a *Actions) Prob(name string) ([2]float64, bool) {
	p, ok := a.prob[name]
	return p, ok
}

// String lists the registered action names in sorted order, e.g.
// "ACTIONS: a_pay_driver, a_ride_taxi, a_walk".
func (a *Actions) String() string {
	names := make([]string, 0, len(a.effects))
	for name := range a.effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return "ACTIONS: " + strings.Join(names, ", ")
}
