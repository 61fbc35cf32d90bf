package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	findAllUsersFn    func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

func (m *mockUserRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return m.findAllUsersFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "test-issuer",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

// TestCreateUser_HashesAndStrips verifies that the stored value is a bcrypt
// hash of the input password and that the returned user carries no
// credential material.
func TestCreateUser_HashesAndStrips(t *testing.T) {
	var persisted models.User

	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	created, err := svc.CreateUser(context.Background(), models.User{
		Email:    "A@X.com",
		Name:     "Alice",
		Password: "pw123",
	})
	require.NoError(t, err)

	// the repository received a hash, not the plaintext
	assert.Equal(t, "a@x.com", persisted.Email, "email must be normalized before storage")
	assert.Empty(t, persisted.Password, "plaintext must not reach the repository")
	assert.NotEmpty(t, persisted.PasswordHash)
	assert.NotEqual(t, "pw123", persisted.PasswordHash)
	assert.True(t, utils.VerifyPassword("pw123", persisted.PasswordHash))

	// the returned user is public
	assert.Equal(t, int64(1), created.UserID)
	assert.Empty(t, created.PasswordHash)
	assert.Empty(t, created.Password)
}

func TestCreateUser_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name string
		user models.User
	}{
		{"empty email", models.User{Password: "pw123"}},
		{"empty password", models.User{Email: "a@x.com"}},
		{"both empty", models.User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// TestCreateUser_DuplicateEmail verifies that a duplicate registration is
// distinguishable from a generic storage failure via errors.Is.
func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.CreateUser(context.Background(), models.User{Email: "a@x.com", Password: "pw123"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestCreateUser_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.CreateUser(context.Background(), models.User{Email: "a@x.com", Password: "pw123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	hash := mustHash(t, "pw123")
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			require.Equal(t, "a@x.com", email)
			return models.User{UserID: 1, Email: "a@x.com", PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.User{Email: "A@x.com", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Empty(t, user.PasswordHash, "login result must not expose the hash")
}

// TestLogin_UniformFailure verifies that an unknown email and a wrong
// password are indistinguishable: both yield ErrInvalidCredentials.
func TestLogin_UniformFailure(t *testing.T) {
	hash := mustHash(t, "correct-password")

	tests := []struct {
		name string
		repo *mockUserRepository
	}{
		{
			name: "unknown email",
			repo: &mockUserRepository{
				findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{}, store.ErrNoUserWasFound
				},
			},
		},
		{
			name: "wrong password",
			repo: &mockUserRepository{
				findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{UserID: 1, Email: "a@x.com", PasswordHash: hash}, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(tt.repo)

			_, err := svc.Login(context.Background(), models.User{Email: "a@x.com", Password: "wrong"})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogin_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.User{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// TestLogin_StorageErrorIsNotCredentialsError verifies that an infrastructure
// failure does not masquerade as a credentials failure.
func TestLogin_StorageErrorIsNotCredentialsError(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.User{Email: "a@x.com", Password: "pw123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// FindAllUsers / FindUserByID
// ─────────────────────────────────────────────

func TestFindAllUsers_StripsHashes(t *testing.T) {
	repo := &mockUserRepository{
		findAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{UserID: 1, Email: "a@x.com", PasswordHash: "hash-a"},
				{UserID: 2, Email: "b@x.com", PasswordHash: "hash-b"},
			}, nil
		},
	}
	svc := newTestAuthService(repo)

	users, err := svc.FindAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}

func TestFindUserByID_NotFoundPassthrough(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.FindUserByID(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// Token lifecycle
// ─────────────────────────────────────────────

// TestTokenRoundTrip verifies that a token issued for a user parses back to
// the same subject.
func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenDuration = -time.Minute
	expiredIssuer := NewAuthService(&mockUserRepository{}, cfg, logger.Nop())

	token, err := expiredIssuer.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongKey(t *testing.T) {
	foreign := config.App{
		TokenSignKey:  "another-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
	}
	foreignIssuer := NewAuthService(&mockUserRepository{}, foreign, logger.Nop())

	token, err := foreignIssuer.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
