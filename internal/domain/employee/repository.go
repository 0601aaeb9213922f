package employee

import (
	"context"
)

// Repository defines data access methods for employees.
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID returns ErrEmployeeNotFound when absent or soft-deleted.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID resolves the employee linked to a user account.
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// List retrieves employees with position names joined, ordered by name.
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)

	Update(ctx context.Context, emp Employee) error

	// SoftDelete stamps deleted_at; the row stays for attendance history.
	SoftDelete(ctx context.Context, id string) error
}
