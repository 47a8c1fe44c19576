package domain

import (
	"time"
)

type Role string

const (
	RoleManager Role = "manager"
	RoleOwner   Role = "owner"
)

// User is a dashboard login account, not a scheduled employee.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	Version      int32     `json:"-"`
}
