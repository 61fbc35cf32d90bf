package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthService orchestrates user registration, credential verification, and
// JWT token lifecycle over a [store.UserRepository].
//
// Every user value returned by an AuthService method is public: the password
// hash and any transient plaintext are stripped before the value leaves the
// service boundary.
type AuthService interface {
	// CreateUser hashes the user's password and persists the account.
	// Returns store.ErrEmailAlreadyExists on a duplicate email and
	// ErrInvalidDataProvided on missing email/password.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the supplied credentials. Both an unknown email and a
	// wrong password yield ErrInvalidCredentials, so callers cannot learn
	// which half was wrong.
	Login(ctx context.Context, user models.User) (models.User, error)

	// FindAllUsers returns every registered user.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// FindUserByID returns the user with the given id, or
	// store.ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and resolves its subject.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
