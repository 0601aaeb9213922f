package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) user.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Save implements user.RefreshTokenRepository.
func (r *refreshTokenRepository) Save(ctx context.Context, userID, tokenHash string, expiresAt int64) error {
	q := r.db.QuerierFromContext(ctx)

	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, revoked)
		VALUES ($1, $2, to_timestamp($3), false)
	`

	if _, err := q.Exec(ctx, query, userID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	return nil
}

// Revoke implements user.RefreshTokenRepository.
func (r *refreshTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	q := r.db.QuerierFromContext(ctx)

	query := `
		UPDATE refresh_tokens
		SET revoked = true
		WHERE token_hash = $1 AND revoked = false
	`

	if _, err := q.Exec(ctx, query, tokenHash); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

// IsActive implements user.RefreshTokenRepository.
func (r *refreshTokenRepository) IsActive(ctx context.Context, tokenHash string) (bool, error) {
	q := r.db.QuerierFromContext(ctx)

	query := `
		SELECT NOT revoked AND expires_at > NOW()
		FROM refresh_tokens
		WHERE token_hash = $1
	`

	var active bool
	err := q.QueryRow(ctx, query, tokenHash).Scan(&active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}

	return active, nil
}
