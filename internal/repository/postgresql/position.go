package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/position"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type positionRepository struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.Repository {
	return &positionRepository{db: db}
}

// List implements position.Repository.
func (r *positionRepository) List(ctx context.Context) ([]position.Position, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM positions
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate positions: %w", err)
	}

	return positions, nil
}

// GetByID implements position.Repository.
func (r *positionRepository) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM positions
		WHERE id = $1
	`

	var p position.Position
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position by ID: %w", err)
	}

	return p, nil
}
