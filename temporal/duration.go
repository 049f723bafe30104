package temporal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// durationPattern matches the restricted ISO-8601 duration subset this
// module accepts: PT[nH][nM][n(.n)?S], case-sensitive, at least one
// component required. Anchored on both ends so trailing garbage after a
// recognised component is rejected rather than silently ignored.
var durationPattern = regexp.MustCompile(
	`^PT(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?$`,
)

// ParseDuration parses an ISO-8601 duration of the shape PT[nH][nM][n(.n)?S]
// into a non-negative number of seconds. It rejects strings that do not
// begin with "PT" or that carry no recognised H/M/S component (so "PT" and
// "P1D" both fail).
func ParseDuration(s string) (float64, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("temporal: parse duration %q: %w", s, ErrInvalidDuration)
	}
	if m[1] == "" && m[2] == "" && m[3] == "" {
		return 0, fmt.Errorf("temporal: parse duration %q: no H/M/S component: %w", s, ErrInvalidDuration)
	}

	var hours, minutes, seconds float64
	var err error
	if m[1] != "" {
		if hours, err = strconv.ParseFloat(m[1], 64); err != nil {
			return 0, fmt.Errorf("temporal: parse duration %q: %w", s, ErrInvalidDuration)
		}
	}
	if m[2] != "" {
		if minutes, err = strconv.ParseFloat(m[2], 64); err != nil {
			return 0, fmt.Errorf("temporal: parse duration %q: %w", s, ErrInvalidDuration)
		}
	}
	if m[3] != "" {
		if seconds, err = strconv.ParseFloat(m[3], 64); err != nil {
			return 0, fmt.Errorf("temporal: parse duration %q: %w", s, ErrInvalidDuration)
		}
	}

	return hours*3600 + minutes*60 + seconds, nil
}

// FormatDuration formats a non-negative number of seconds as an ISO-8601
// duration string. Zero formats as "PT0S". Integer second counts round-trip
// exactly through ParseDuration(FormatDuration(n)) == n.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := int64(seconds / 3600)
	rem := seconds - float64(hours)*3600
	minutes := int64(rem / 60)
	secs := rem - float64(minutes)*60

	var b strings.Builder
	b.WriteString("PT")
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	switch {
	case secs == 0 && (hours > 0 || minutes > 0):
		// Whole hours/minutes with nothing left over: omit the S component.
	case secs == float64(int64(secs)):
		fmt.Fprintf(&b, "%dS", int64(secs))
	default:
		str := strconv.FormatFloat(secs, 'f', 6, 64)
		str = strings.TrimRight(str, "0")
		str = strings.TrimRight(str, ".")
		fmt.Fprintf(&b, "%sS", str)
	}

	out := b.String()
	if out == "PT" {
		return "PT0S"
	}
	return out
}

// DurationSeconds normalises a duration given either as seconds (float64,
// int) or as an ISO-8601 duration string into seconds.
func DurationSeconds(d any) (float64, error) {
	switch v := d.(type) {
	case float64:
		if v < 0 || math.IsNaN(v) {
			return 0, fmt.Errorf("temporal: negative or NaN duration %g: %w", v, ErrInvalidDuration)
		}
		return v, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("temporal: negative duration %d: %w", v, ErrInvalidDuration)
		}
		return float64(v), nil
	case string:
		return ParseDuration(v)
	default:
		return 0, fmt.Errorf("temporal: duration must be string or number, got %T: %w", d, ErrInvalidDuration)
	}
}
