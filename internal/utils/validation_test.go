package utils

import (
	"testing"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestParseWeekStartDate(t *testing.T) {
	week, err := ParseWeekStartDate("2025-11-10")
	require.NoError(t, err)
	require.Equal(t, "Mon 2025-11-10 - Sun 2025-11-16", week.Label)

	_, err = ParseWeekStartDate("2025-11-12") // a Wednesday
	require.Error(t, err)

	_, err = ParseWeekStartDate("11/10/2025")
	require.Error(t, err)

	_, err = ParseWeekStartDate("")
	require.Error(t, err)
}

func TestValidateScheduleShifts(t *testing.T) {
	week, err := ParseWeekStartDate("2025-11-10")
	require.NoError(t, err)

	shift := func(date, start, end string) domain.ScheduleShift {
		return domain.ScheduleShift{Date: date, StartTime: start, EndTime: end}
	}

	tests := []struct {
		name    string
		shifts  []domain.ScheduleShift
		wantErr string
	}{
		{
			name:   "valid week",
			shifts: []domain.ScheduleShift{shift("2025-11-10", "09:00", "17:00"), shift("2025-11-11", "06:00", "12:15")},
		},
		{
			name:    "empty shift list",
			shifts:  nil,
			wantErr: "at least one shift",
		},
		{
			name:    "date outside the week",
			shifts:  []domain.ScheduleShift{shift("2025-11-17", "09:00", "17:00")},
			wantErr: "outside the selected week",
		},
		{
			name:    "duplicate date",
			shifts:  []domain.ScheduleShift{shift("2025-11-10", "09:00", "12:00"), shift("2025-11-10", "13:00", "17:00")},
			wantErr: "duplicate date",
		},
		{
			name:    "start off the grid",
			shifts:  []domain.ScheduleShift{shift("2025-11-10", "09:10", "17:00")},
			wantErr: "15-minute grid",
		},
		{
			name:    "end before start",
			shifts:  []domain.ScheduleShift{shift("2025-11-10", "17:00", "09:00")},
			wantErr: "after start time",
		},
		{
			name:    "end equals start",
			shifts:  []domain.ScheduleShift{shift("2025-11-10", "09:00", "09:00")},
			wantErr: "after start time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScheduleShifts(week, tt.shifts)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
