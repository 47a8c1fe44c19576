package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{
			name:  "wednesday shifts back two days",
			today: date(2025, time.November, 12),
			want:  date(2025, time.November, 10),
		},
		{
			name:  "monday stays put",
			today: date(2025, time.November, 10),
			want:  date(2025, time.November, 10),
		},
		{
			name:  "sunday shifts back six days, not into the next week",
			today: date(2025, time.November, 16),
			want:  date(2025, time.November, 10),
		},
		{
			name:  "saturday shifts back five days",
			today: date(2025, time.November, 15),
			want:  date(2025, time.November, 10),
		},
		{
			name:  "time of day is zeroed",
			today: time.Date(2025, time.November, 12, 18, 45, 12, 0, time.UTC),
			want:  date(2025, time.November, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MondayOf(tt.today))
		})
	}
}

func TestGenerateWeekOptions(t *testing.T) {
	today := date(2025, time.November, 12) // a Wednesday

	windows := GenerateWeekOptions(today, 5)
	require.Len(t, windows, 5)

	for i, w := range windows {
		require.Equal(t, time.Monday, w.StartDate.Weekday())
		require.Equal(t, time.Sunday, w.EndDate.Weekday())
		require.Len(t, w.Dates, 7)
		require.Equal(t, w.StartDate, w.Dates[0])
		require.Equal(t, w.EndDate, w.Dates[6])

		for j := 1; j < 7; j++ {
			require.Equal(t, w.Dates[j-1].AddDate(0, 0, 1), w.Dates[j])
		}

		if i > 0 {
			require.Equal(t, windows[i-1].StartDate.AddDate(0, 0, 7), w.StartDate)
		}
	}

	// window 0 contains today
	require.False(t, today.Before(windows[0].StartDate))
	require.False(t, today.After(windows[0].EndDate))

	require.Equal(t, "2025-11-10", windows[0].StartDate.Format(DateLayout))
	require.Equal(t, "2025-11-16", windows[0].EndDate.Format(DateLayout))
	require.Equal(t, "Mon 2025-11-10 - Sun 2025-11-16", windows[0].Label)
}

func TestGenerateWeekOptionsIsDeterministic(t *testing.T) {
	today := date(2025, time.November, 16) // a Sunday

	first := GenerateWeekOptions(today, 5)
	second := GenerateWeekOptions(today, 5)
	require.Equal(t, first, second)

	// the Sunday edge case lands on the preceding Monday
	require.Equal(t, "2025-11-10", first[0].StartDate.Format(DateLayout))
}

func TestWeekWindowContains(t *testing.T) {
	w := WindowFor(date(2025, time.November, 12))

	require.True(t, w.Contains("2025-11-10"))
	require.True(t, w.Contains("2025-11-16"))
	require.False(t, w.Contains("2025-11-09"))
	require.False(t, w.Contains("2025-11-17"))
	require.False(t, w.Contains("not-a-date"))
}
