package schedule

import (
	"fmt"
	"math"
	"slices"

	"github.com/ashesthetic/hello-deer/backend/internal/domain"
)

// Field names one side of a shift's time pair.
type Field int

const (
	FieldStart Field = iota
	FieldEnd
)

// ShiftKey addresses one employee's shift on one date.
type ShiftKey struct {
	EmployeeID int64
	Date       string // YYYY-MM-DD
}

// Shift is an optional start/end time pair on one date. An empty string means
// the side has not been filled in yet.
type Shift struct {
	Date      string
	StartTime string
	EndTime   string
}

// Complete reports whether both sides of the time pair are present.
func (s *Shift) Complete() bool {
	return s.StartTime != "" && s.EndTime != ""
}

// Hours returns the shift's elapsed hours; incomplete shifts contribute zero.
func (s *Shift) Hours() float64 {
	return HoursFor(s.StartTime, s.EndTime)
}

// Ledger holds the in-progress shift edits for one week editing session. It is
// exclusively owned by that session and discarded after submission.
type Ledger struct {
	week   WeekWindow
	shifts map[ShiftKey]*Shift
}

func NewLedger(week WeekWindow) *Ledger {
	return &Ledger{
		week:   week,
		shifts: make(map[ShiftKey]*Shift),
	}
}

func (l *Ledger) Week() WeekWindow {
	return l.week
}

// SetShift upserts one side of the (employeeID, date) shift, creating an empty
// shift record first if absent. An empty value clears the side; any other
// value must sit on the clock grid and the date must fall inside the week.
func (l *Ledger) SetShift(employeeID int64, date string, field Field, value string) error {
	if !l.week.Contains(date) {
		return fmt.Errorf("date %s is outside the week of %s", date, l.week.StartDate.Format(DateLayout))
	}

	if value != "" {
		if _, err := ParseClock(value); err != nil {
			return fmt.Errorf("shift on %s: %w", date, err)
		}
	}

	key := ShiftKey{EmployeeID: employeeID, Date: date}
	shift, ok := l.shifts[key]
	if !ok {
		shift = &Shift{Date: date}
		l.shifts[key] = shift
	}

	switch field {
	case FieldStart:
		shift.StartTime = value
	case FieldEnd:
		shift.EndTime = value
	default:
		return fmt.Errorf("unknown shift field %d", field)
	}

	return nil
}

// Shift returns the stored shift for (employeeID, date), or nil.
func (l *Ledger) Shift(employeeID int64, date string) *Shift {
	return l.shifts[ShiftKey{EmployeeID: employeeID, Date: date}]
}

// TotalHoursFor sums the hours over every dated shift of one employee.
// Incomplete shifts contribute zero. The call never mutates the ledger.
func (l *Ledger) TotalHoursFor(employeeID int64) float64 {
	total := 0.0
	for key, shift := range l.shifts {
		if key.EmployeeID == employeeID {
			total += shift.Hours()
		}
	}
	return math.Round(total*100) / 100
}

// CompleteShiftsFor returns the employee's complete shifts in date order, with
// per-shift hours computed. Incomplete shifts are excluded.
func (l *Ledger) CompleteShiftsFor(employeeID int64) []domain.ScheduleShift {
	shifts := make([]domain.ScheduleShift, 0)
	for key, shift := range l.shifts {
		if key.EmployeeID != employeeID || !shift.Complete() {
			continue
		}
		shifts = append(shifts, domain.ScheduleShift{
			Date:      shift.Date,
			StartTime: shift.StartTime,
			EndTime:   shift.EndTime,
			TotalHour: shift.Hours(),
		})
	}

	slices.SortFunc(shifts, func(a, b domain.ScheduleShift) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		default:
			return 0
		}
	})

	return shifts
}

// EmployeeIDs returns every employee with at least one shift record, sorted.
func (l *Ledger) EmployeeIDs() []int64 {
	seen := make(map[int64]bool)
	ids := make([]int64, 0)
	for key := range l.shifts {
		if !seen[key.EmployeeID] {
			seen[key.EmployeeID] = true
			ids = append(ids, key.EmployeeID)
		}
	}

	slices.Sort(ids)

	return ids
}
