package temporal

import "fmt"

// Metadata is the {duration, start, end} triple attached to every
// committed temporal primitive. It is closed under two derivation laws:
//
//	(a) start and duration set  ⇒ DeriveEnd computes end = start + duration.
//	(b) start and end set       ⇒ DeriveDuration computes duration = end - start,
//	    failing if the result would be negative.
//
// All setters validate their argument's format before committing it, so a
// Metadata value is never left holding an unparsable field.
type Metadata struct {
	duration string // ISO-8601 duration, e.g. "PT1H30M"; "" if unset
	start    string // ISO-8601 instant; "" if unset
	end      string // ISO-8601 instant; "" if unset
}

// NewMetadata builds a Metadata from optional duration/start/end values.
// duration may be a string (validated as an ISO-8601 duration) or a
// non-negative number of seconds; start/end must be ISO-8601 instants.
// Pass nil/"" for any field left unset.
func NewMetadata(duration any, start, end string) (*Metadata, error) {
	m := &Metadata{}
	if duration != nil {
		if err := m.SetDuration(duration); err != nil {
			return nil, err
		}
	}
	if start != "" {
		if err := m.SetStart(start); err != nil {
			return nil, err
		}
	}
	if end != "" {
		if err := m.SetEnd(end); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Duration returns the ISO-8601 duration string, or "" if unset.
func (m *Metadata) Duration() string { return m.duration }

// Start returns the ISO-8601 start instant, or "" if unset.
func (m *Metadata) Start() string { return m.start }

// End returns the ISO-8601 end instant, or "" if unset.
func (m *Metadata) End() string { return m.end }

// SetDuration validates and stores duration (a string or a non-negative
// number of seconds), normalising numeric input to its ISO-8601 form.
func (m *Metadata) SetDuration(duration any) error {
	seconds, err := DurationSeconds(duration)
	if err != nil {
		return err
	}
	m.duration = FormatDuration(seconds)
	return nil
}

// SetStart validates and stores the start instant.
func (m *Metadata) SetStart(start string) error {
	if _, err := ParseInstant(start); err != nil {
		return err
	}
	m.start = start
	return nil
}

// SetEnd validates and stores the end instant.
func (m *Metadata) SetEnd(end string) error {
	if _, err := ParseInstant(end); err != nil {
		return err
	}
	m.end = end
	return nil
}

// DeriveEnd computes end = start + duration and stores it. Both start and
// duration must already be set.
func (m *Metadata) DeriveEnd() error {
	if m.start == "" || m.duration == "" {
		return fmt.Errorf("temporal: derive end: start and duration required: %w", ErrTemporalInvariant)
	}
	end, err := AddDuration(m.start, m.duration)
	if err != nil {
		return err
	}
	m.end = end
	return nil
}

// DeriveDuration computes duration = end - start and stores it, failing
// with ErrTemporalInvariant if the result would be negative. Both start
// and end must already be set.
func (m *Metadata) DeriveDuration() error {
	if m.start == "" || m.end == "" {
		return fmt.Errorf("temporal: derive duration: start and end required: %w", ErrTemporalInvariant)
	}
	start, err := ParseInstant(m.start)
	if err != nil {
		return err
	}
	end, err := ParseInstant(m.end)
	if err != nil {
		return err
	}
	delta := end.Sub(start).Seconds()
	if delta < 0 {
		return fmt.Errorf("temporal: derive duration: end precedes start: %w", ErrTemporalInvariant)
	}
	m.duration = FormatDuration(delta)
	return nil
}

// DurationSeconds returns the stored duration in seconds, or an error if
// no duration is set.
func (m *Metadata) DurationSeconds() (float64, error) {
	if m.duration == "" {
		return 0, fmt.Errorf("temporal: duration not set: %w", ErrTemporalInvariant)
	}
	return ParseDuration(m.duration)
}

// Copy returns an independent copy of m.
func (m *Metadata) Copy() *Metadata {
	cp := *m
	return &cp
}

// MarshalMap serialises only the fields currently set, as a
// present-fields-only mapping.
func (m *Metadata) MarshalMap() map[string]string {
	out := map[string]string{}
	if m.duration != "" {
		out["duration"] = m.duration
	}
	if m.start != "" {
		out["start_time"] = m.start
	}
	if m.end != "" {
		out["end_time"] = m.end
	}
	return out
}

// UnmarshalMap builds a Metadata from the fields present in data.
func UnmarshalMap(data map[string]string) (*Metadata, error) {
	m := &Metadata{}
	if d, ok := data["duration"]; ok {
		if err := m.SetDuration(d); err != nil {
			return nil, err
		}
	}
	if s, ok := data["start_time"]; ok {
		if err := m.SetStart(s); err != nil {
			return nil, err
		}
	}
	if e, ok := data["end_time"]; ok {
		if err := m.SetEnd(e); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// String renders a compact debugging form, e.g. "Metadata(duration=PT5M, start=...)".
func (m *Metadata) String() string {
	return fmt.Sprintf("Metadata(duration=%s, start=%s, end=%s)", m.duration, m.start, m.end)
}
