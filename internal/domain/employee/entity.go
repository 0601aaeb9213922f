package employee

import (
	"time"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

type Employee struct {
	ID               string
	UserID           *string
	PositionID       *string
	FullName         string
	Email            string
	PhoneNumber      *string
	HireDate         time.Time
	DefaultWorkMode  string
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// Joined projection
	PositionName *string
}

// IsActive reports whether the employee is currently employed.
func (e *Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive && e.DeletedAt == nil
}
