package alert

import (
	"context"
)

// Repository defines data access methods for attendance alerts.
type Repository interface {
	Create(ctx context.Context, a Alert) (Alert, error)

	// ListByEmployee retrieves the employee's alerts, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Alert, error)

	// MarkAsRead sets is_read and read_at on an unread alert. Missing or
	// already-read alerts are left untouched without error.
	MarkAsRead(ctx context.Context, id string) error
}
