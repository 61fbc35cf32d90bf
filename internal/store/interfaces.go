package store

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Implementations must enforce email uniqueness atomically at write time:
// concurrent CreateUser calls for the same email may both reach the store,
// and exactly one must win while the other receives [ErrEmailAlreadyExists].
// Update and delete semantics are deliberately absent; they are reserved for
// future scope.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given (normalized) email,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindAllUsers returns every user record ordered by id.
	FindAllUsers(ctx context.Context) ([]models.User, error)
}
