package alert

import (
	"context"
)

// Service defines business logic for attendance alerts.
type Service interface {
	// CreateAlert stores an unread alert dated to the current day.
	CreateAlert(ctx context.Context, createdByUserID string, req CreateAlertRequest) (AlertResponse, error)

	// GetEmployeeAlerts lists the employee's alerts, newest first.
	GetEmployeeAlerts(ctx context.Context, employeeID string) ([]AlertResponse, error)

	// MarkAsRead marks an alert read. A missing or already-read alert is a
	// no-op, not an error.
	MarkAsRead(ctx context.Context, alertID string) error

	// SendLateAlert creates a canned late-arrival alert for the employee.
	SendLateAlert(ctx context.Context, createdByUserID, employeeID string) (AlertResponse, error)
}
