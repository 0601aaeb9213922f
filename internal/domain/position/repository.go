package position

import "context"

// Repository defines data access methods for positions.
type Repository interface {
	// List retrieves all positions ordered by name.
	List(ctx context.Context) ([]Position, error)

	// GetByID returns ErrPositionNotFound when absent.
	GetByID(ctx context.Context, id string) (Position, error)
}
