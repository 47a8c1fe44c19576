package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "opening time", in: "06:00", want: 360},
		{name: "closing time", in: "22:00", want: 1320},
		{name: "quarter step", in: "09:15", want: 555},
		{name: "before opening", in: "05:45", wantErr: true},
		{name: "after closing", in: "22:15", wantErr: true},
		{name: "off the grid", in: "09:07", wantErr: true},
		{name: "missing leading zero", in: "9:00", wantErr: true},
		{name: "free text", in: "noonish", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedTime)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClockOptions(t *testing.T) {
	options := ClockOptions()

	// 06:00 through 22:00 inclusive on 15-minute steps
	require.Len(t, options, 65)
	require.Equal(t, "06:00", options[0])
	require.Equal(t, "06:15", options[1])
	require.Equal(t, "22:00", options[len(options)-1])

	for _, option := range options {
		_, err := ParseClock(option)
		require.NoError(t, err)
	}
}

func TestHoursFor(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{name: "full day", start: "09:00", end: "17:00", want: 8},
		{name: "quarter hour", start: "09:00", end: "09:15", want: 0.25},
		{name: "uneven span", start: "06:45", end: "15:30", want: 8.75},
		{name: "missing end", start: "09:00", end: "", want: 0},
		{name: "missing start", start: "", end: "17:00", want: 0},
		{name: "both missing", start: "", end: "", want: 0},
		{name: "end equals start", start: "09:00", end: "09:00", want: 0},
		{name: "end before start", start: "17:00", end: "09:00", want: 0},
		{name: "malformed start", start: "morning", end: "17:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HoursFor(tt.start, tt.end))
		})
	}
}
