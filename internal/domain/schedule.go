package domain

import "time"

// ScheduleShift is one worked day inside a weekly schedule.
// Date is YYYY-MM-DD, times are HH:MM on the store's 15-minute clock grid.
type ScheduleShift struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	TotalHour float64 `json:"total_hour"`
}

// EmployeeSchedule is one employee's persisted Monday-to-Sunday week.
// The shift list is replaced wholesale on every resubmission.
type EmployeeSchedule struct {
	ID               int64           `json:"id"`
	EmployeeID       int64           `json:"employee_id"`
	WeekStartDate    string          `json:"week_start_date"`
	WeekEndDate      string          `json:"week_end_date"`
	Shifts           []ScheduleShift `json:"shift_info"`
	Notes            string          `json:"notes"`
	WeeklyTotalHours float64         `json:"weekly_total_hours"`
	CreatedAt        time.Time       `json:"created_at"`
	Version          int32           `json:"-"`
}
