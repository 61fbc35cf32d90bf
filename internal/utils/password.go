package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt work factor applied when the
// configuration does not specify one. It matches bcrypt.DefaultCost.
const DefaultPasswordHashCost = bcrypt.DefaultCost

// HashPassword derives a salted bcrypt hash from the given plaintext password.
//
// bcrypt generates a random salt on every call, so hashing the same password
// twice yields two different outputs; both verify against the original
// password. The cost parameter is the bcrypt work factor; values below
// bcrypt.MinCost fall back to [DefaultPasswordHashCost].
//
// Returns the encoded hash string (algorithm, cost, salt and digest in one
// value) or a wrapped error if hashing fails.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultPasswordHashCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error occurred during hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time inside bcrypt.
//
// A mismatch, an empty hash, or a malformed hash all yield false; this
// function never returns an error to the caller so that login code paths
// cannot distinguish failure causes.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
