package auth

import (
	"context"
	"testing"
	"time"

	"cinetix/internal/shared/config"
	"cinetix/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byEmail map[string]*users.User
	byID    map[string]*users.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: make(map[string]*users.User),
		byID:    make(map[string]*users.User),
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, user *users.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.byEmail[user.Email] = user
	f.byID[user.ID.String()] = user
	return nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*users.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id string) (*users.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (f *fakeRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.JWTExpiresIn = 15 * time.Minute
	cfg.JWT.RefreshExpiresIn = 24 * time.Hour
	return cfg
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// Stored password is hashed.
	stored := repo.byEmail["asha@example.com"]
	assert.NotEqual(t, "password123", stored.Password)

	_, err = svc.Register(ctx, &RegisterRequest{
		Name:     "Asha Again",
		Email:    "asha@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	login, err := svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRoleHandling(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleAdmin), resp.User.Role)

	// Unknown roles fall back to USER.
	resp, err = svc.Register(ctx, &RegisterRequest{
		Name:     "Odd",
		Email:    "odd@example.com",
		Password: "password123",
		Role:     "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleUser), resp.User.Role)
}

func TestValidateToken(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token signed with a different secret is rejected.
	other := NewService(repo, &config.Config{JWT: config.JWTConfig{
		Secret:           "other-secret",
		JWTExpiresIn:     time.Minute,
		RefreshExpiresIn: time.Hour,
	}})
	_, err = other.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, testConfig())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// Access tokens cannot be used as refresh tokens.
	_, err = svc.RefreshToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
