package temporal

import (
	"fmt"
	"time"
)

// naiveLayout is tried when an instant carries no zone designator; the
// result is interpreted in UTC.
const naiveLayout = "2006-01-02T15:04:05"

// ParseInstant parses an RFC-3339/ISO-8601 instant. Either a "Z" suffix or
// a numeric "+HH:MM"/"-HH:MM" offset is accepted; an instant with no zone
// designator is interpreted as UTC.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(naiveLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("temporal: parse instant %q: %w", s, ErrInvalidInstant)
}

// FormatInstant renders t as an RFC-3339 instant in UTC with a "Z" suffix.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Now returns the current instant formatted per FormatInstant. It backs
// State's default of initializing its time cursor to the construction
// instant when none is given explicitly.
func Now() string {
	return FormatInstant(time.Now())
}

// AddDuration returns instant advanced by duration, which may be seconds
// (float64/int) or an ISO-8601 duration string. It is total over valid
// inputs and fails with ErrInvalidInstant/ErrInvalidDuration otherwise.
func AddDuration(instant string, duration any) (string, error) {
	t, err := ParseInstant(instant)
	if err != nil {
		return "", err
	}
	seconds, err := DurationSeconds(duration)
	if err != nil {
		return "", err
	}
	return FormatInstant(t.Add(time.Duration(seconds * float64(time.Second)))), nil
}
