// Package planstate implements State: a named, open attribute bag plus a
// monotonic wall-clock cursor and an executed-action timeline. State's
// deep Copy() is backed by internal/clone, and construction-time
// configuration follows the functional-options convention used
// throughout this module.
package planstate

import "errors"

// ErrTemporalInvariant is returned when an operation would move the time
// cursor backward, or advance it by a negative duration.
var ErrTemporalInvariant = errors.New("planstate: temporal invariant violated")
