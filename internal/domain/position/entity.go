package position

import "time"

// Position is reference data for role lookups.
type Position struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
