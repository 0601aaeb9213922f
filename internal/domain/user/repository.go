package user

import "context"

// Repository defines data access methods for user accounts.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)

	// GetByEmail returns ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id string) (User, error)
}

// RefreshTokenRepository persists issued refresh tokens so they can be
// rotated and revoked.
type RefreshTokenRepository interface {
	Save(ctx context.Context, userID, tokenHash string, expiresAt int64) error
	Revoke(ctx context.Context, tokenHash string) error
	IsActive(ctx context.Context, tokenHash string) (bool, error)
}
