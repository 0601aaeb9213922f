package alert

import (
	"time"
)

// AlertType classifies an attendance alert.
type AlertType string

const (
	TypeLate    AlertType = "late"
	TypeAbsent  AlertType = "absent"
	TypeGeneral AlertType = "general"
)

// AllAlertTypes returns every valid alert type.
func AllAlertTypes() []AlertType {
	return []AlertType{TypeLate, TypeAbsent, TypeGeneral}
}

// Alert is a notification record tied to an employee. IsRead flips
// false -> true exactly once; marking again is a no-op.
type Alert struct {
	ID         string
	EmployeeID string
	Type       AlertType
	Message    string
	AlertDate  time.Time // date-only
	IsRead     bool
	ReadAt     *time.Time
	CreatedBy  string
	CreatedAt  time.Time

	// Joined projection
	EmployeeName *string
}
