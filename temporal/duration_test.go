package temporal_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ipyhop-go/temporal"
	"github.com/stretchr/testify/require"
)

func TestParseDuration_Table(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"PT1H30M", 5400},
		{"PT5M", 300},
		{"PT30S", 30},
		{"PT1H30M45S", 5445},
		{"PT0.5S", 0.5},
		{"PT2H", 7200},
		{"PT0S", 0},
	}
	for _, c := range cases {
		got, err := temporal.ParseDuration(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, got, c.in)
	}
}

func TestParseDuration_Rejects(t *testing.T) {
	for _, in := range []string{"", "PT", "P1D", "1H30M", "PTXH", "PT1H30M45"} {
		_, err := temporal.ParseDuration(in)
		require.Error(t, err, in)
		require.True(t, errors.Is(err, temporal.ErrInvalidDuration), in)
	}
}

func TestFormatDuration_Zero(t *testing.T) {
	require.Equal(t, "PT0S", temporal.FormatDuration(0))
}

// Round-trip: for every integer n >= 0, parse(format(n)) == n.
func TestDuration_RoundTrip_Integers(t *testing.T) {
	for n := 0; n <= 10000; n += 137 {
		s := temporal.FormatDuration(float64(n))
		got, err := temporal.ParseDuration(s)
		require.NoError(t, err)
		require.Equal(t, float64(n), got, s)
	}
}

func TestAddDuration(t *testing.T) {
	end, err := temporal.AddDuration("2025-01-01T10:00:00Z", "PT1H30M")
	require.NoError(t, err)
	require.Equal(t, "2025-01-01T11:30:00Z", end)

	end, err = temporal.AddDuration("2025-01-01T10:00:00Z", 90.0)
	require.NoError(t, err)
	require.Equal(t, "2025-01-01T10:01:30Z", end)
}

func TestParseInstant_NaiveIsUTC(t *testing.T) {
	t1, err := temporal.ParseInstant("2025-01-01T10:00:00")
	require.NoError(t, err)
	require.Equal(t, "2025-01-01T10:00:00Z", temporal.FormatInstant(t1))
}

func TestParseInstant_Offset(t *testing.T) {
	t1, err := temporal.ParseInstant("2025-01-01T10:00:00+02:00")
	require.NoError(t, err)
	require.Equal(t, "2025-01-01T08:00:00Z", temporal.FormatInstant(t1))
}

func TestParseInstant_Invalid(t *testing.T) {
	_, err := temporal.ParseInstant("not-a-time")
	require.True(t, errors.Is(err, temporal.ErrInvalidInstant))
}
