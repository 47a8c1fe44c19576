package domain

import "time"

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee is a scheduled staff member. Employees do not log in;
// managers edit their schedules through the dashboard.
type Employee struct {
	ID            int64          `json:"id"`
	FullLegalName string         `json:"full_legal_name"`
	PreferredName string         `json:"preferred_name"`
	Email         string         `json:"email"`
	Position      string         `json:"position"`
	Status        EmployeeStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	Version       int32          `json:"-"`
}
