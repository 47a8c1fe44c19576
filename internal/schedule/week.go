package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// WeekWindow is a Monday-to-Sunday span used as the unit of schedule editing.
type WeekWindow struct {
	StartDate time.Time // Monday, midnight
	EndDate   time.Time // Sunday, midnight
	Dates     []time.Time
	Label     string
}

// MondayOf returns the most recent Monday at midnight in t's location.
// Weekday convention is Monday=1..Sunday=7, so a Sunday shifts back 6 days,
// any other day shifts back weekday-1 days.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	back := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		back = 6
	}

	return day.AddDate(0, 0, -back)
}

// WindowFor returns the week window containing the given date.
func WindowFor(t time.Time) WeekWindow {
	monday := MondayOf(t)

	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}

	return WeekWindow{
		StartDate: dates[0],
		EndDate:   dates[6],
		Dates:     dates,
		Label:     fmt.Sprintf("Mon %s - Sun %s", dates[0].Format(DateLayout), dates[6].Format(DateLayout)),
	}
}

// GenerateWeekOptions returns count consecutive week windows starting at the
// Monday of the week containing today. Window 0 always contains today.
func GenerateWeekOptions(today time.Time, count int) []WeekWindow {
	monday := MondayOf(today)

	windows := make([]WeekWindow, 0, count)
	for i := 0; i < count; i++ {
		windows = append(windows, WindowFor(monday.AddDate(0, 0, 7*i)))
	}

	return windows
}

// Contains reports whether the YYYY-MM-DD date falls inside the window.
func (w WeekWindow) Contains(date string) bool {
	for _, d := range w.Dates {
		if d.Format(DateLayout) == date {
			return true
		}
	}
	return false
}
