package auth

import (
	"context"
)

// Service defines business logic for authentication.
type Service interface {
	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Register creates a user account. Admin-gated at the router.
	Register(ctx context.Context, req RegisterRequest) (MeResponse, error)

	// Refresh rotates a refresh token into a new token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// Me resolves the authenticated user's profile.
	Me(ctx context.Context, userID string) (MeResponse, error)
}
