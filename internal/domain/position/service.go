package position

import "context"

type PositionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Service exposes position reference data.
type Service interface {
	ListPositions(ctx context.Context) ([]PositionResponse, error)
	GetPosition(ctx context.Context, id string) (PositionResponse, error)
}
