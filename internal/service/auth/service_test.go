package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users  map[string]user.User // keyed by id
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	f.nextID++
	u.ID = "user-" + string(rune('0'+f.nextID))
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeRefreshTokenRepo struct {
	active map[string]bool // tokenHash -> active
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{active: make(map[string]bool)}
}

func (f *fakeRefreshTokenRepo) Save(ctx context.Context, userID, tokenHash string, expiresAt int64) error {
	f.active[tokenHash] = true
	return nil
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, tokenHash string) error {
	f.active[tokenHash] = false
	return nil
}

func (f *fakeRefreshTokenRepo) IsActive(ctx context.Context, tokenHash string) (bool, error) {
	return f.active[tokenHash], nil
}

type authFixture struct {
	svc    *AuthServiceImpl
	users  *fakeUserRepo
	tokens *fakeRefreshTokenRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	users.users["user-9"] = user.User{
		ID:           "user-9",
		Email:        "ana@workpulse.local",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
	}

	tokens := newFakeRefreshTokenRepo()
	jwtService := jwt.NewJWTService("test-secret-key-for-auth-tests", "1h", "168h")

	return &authFixture{
		svc:    NewAuthService(users, tokens, jwtService),
		users:  users,
		tokens: tokens,
	}
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)

	result, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@workpulse.local",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.True(t, f.tokens.active[hashToken(result.RefreshToken)])
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@workpulse.local",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@workpulse.local",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegister_HashesPassword(t *testing.T) {
	f := newAuthFixture(t)

	result, err := f.svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "new@workpulse.local",
		Password: "long enough password",
		Role:     user.RoleAdmin,
	})
	require.NoError(t, err)

	stored, err := f.users.GetByEmail(context.Background(), "new@workpulse.local")
	require.NoError(t, err)
	assert.NotEqual(t, "long enough password", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("long enough password")))
	assert.Equal(t, user.RoleAdmin, result.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "ana@workpulse.local",
		Password: "long enough password",
		Role:     user.RoleEmployee,
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestRefresh_RotatesToken(t *testing.T) {
	f := newAuthFixture(t)

	login, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@workpulse.local",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := f.svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)

	// The old token is revoked, the new one is live.
	assert.False(t, f.tokens.active[hashToken(login.RefreshToken)])
	assert.True(t, f.tokens.active[hashToken(refreshed.RefreshToken)])
}

func TestRefresh_RevokedTokenFails(t *testing.T) {
	f := newAuthFixture(t)

	login, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@workpulse.local",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), login.RefreshToken))

	_, err = f.svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_GarbageTokenFails(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	f := newAuthFixture(t)

	login, err := f.svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@workpulse.local",
		Password: "correct horse",
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = f.svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMe_ReturnsProfile(t *testing.T) {
	f := newAuthFixture(t)

	result, err := f.svc.Me(context.Background(), "user-9")
	require.NoError(t, err)

	assert.Equal(t, "ana@workpulse.local", result.Email)
	assert.Equal(t, user.RoleEmployee, result.Role)
}

func TestMe_UnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Me(context.Background(), "user-missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
