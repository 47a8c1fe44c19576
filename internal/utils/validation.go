package utils

import (
	"fmt"
	"time"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
	"github.com/ashesthetic/hello-deer/backend/internal/schedule"
)

// ParseWeekStartDate parses a YYYY-MM-DD Monday into its week window.
func ParseWeekStartDate(s string) (schedule.WeekWindow, error) {
	day, err := time.Parse(schedule.DateLayout, s)
	if err != nil {
		return schedule.WeekWindow{}, fmt.Errorf("week_start_date must be a YYYY-MM-DD date")
	}

	if day.Weekday() != time.Monday {
		return schedule.WeekWindow{}, fmt.Errorf("week_start_date must be a Monday")
	}

	return schedule.WindowFor(day), nil
}

// ValidateScheduleShifts checks a submitted shift list against its week
// window: every date inside the window and unique, both times on the clock
// grid, and every end after its start.
func ValidateScheduleShifts(week schedule.WeekWindow, shifts []domain.ScheduleShift) error {
	if len(shifts) == 0 {
		return fmt.Errorf("shift_info must contain at least one shift")
	}

	seen := make(map[string]bool, len(shifts))

	for i, shift := range shifts {
		if !week.Contains(shift.Date) {
			return fmt.Errorf("shift %d: date %s is outside the selected week", i+1, shift.Date)
		}
		if seen[shift.Date] {
			return fmt.Errorf("shift %d: duplicate date %s", i+1, shift.Date)
		}
		seen[shift.Date] = true

		start, err := schedule.ParseClock(shift.StartTime)
		if err != nil {
			return fmt.Errorf("shift %d: start %w", i+1, err)
		}
		end, err := schedule.ParseClock(shift.EndTime)
		if err != nil {
			return fmt.Errorf("shift %d: end %w", i+1, err)
		}
		if end <= start {
			return fmt.Errorf("shift %d: end time must be after start time", i+1)
		}
	}

	return nil
}
