package position

import (
	"context"
	"fmt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/position"
)

type PositionServiceImpl struct {
	positionRepo position.Repository
}

func NewPositionService(positionRepo position.Repository) *PositionServiceImpl {
	return &PositionServiceImpl{
		positionRepo: positionRepo,
	}
}

// ListPositions implements position.Service.
func (s *PositionServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, position.PositionResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
		})
	}
	return responses, nil
}

// GetPosition implements position.Service.
func (s *PositionServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.PositionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}, nil
}
