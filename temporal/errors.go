// Package temporal provides ISO-8601 duration and instant parsing, the
// add-duration primitive, and the TemporalMetadata triple used to stamp
// every committed primitive action with start/end times.
package temporal

import "errors"

// ErrInvalidDuration is returned when a duration string does not match
// the restricted ISO-8601 subset PT[nH][nM][n(.n)?S], or a negative/NaN
// duration in seconds is supplied where a non-negative one is required.
var ErrInvalidDuration = errors.New("temporal: invalid duration")

// ErrInvalidInstant is returned when an instant string is not a parsable
// RFC-3339/ISO-8601 timestamp.
var ErrInvalidInstant = errors.New("temporal: invalid instant")

// ErrTemporalInvariant is returned when a derived value would violate a
// temporal invariant, e.g. a negative derived duration or an attempt to
// move a cursor backward in time.
var ErrTemporalInvariant = errors.New("temporal: invariant violated")
