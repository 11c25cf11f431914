package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor. The original frontend stored
// passwords in plaintext; this layer swaps in salted hashes without
// changing login behavior.
const defaultCost = 12

// PasswordHasher provides bcrypt hashing and verification. The cost is
// injectable so tests can run with the bcrypt minimum.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: defaultCost}
}

// NewPasswordHasherWithCost creates a hasher with a custom cost. Tests
// use bcrypt.MinCost to stay fast.
func NewPasswordHasherWithCost(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash hashes the plaintext password. The output embeds its own salt and
// cost, so it is stored as-is.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. Any bcrypt
// failure reads as a mismatch; callers surface a generic credentials
// error either way to avoid user enumeration.
func (h *PasswordHasher) Verify(hash, plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	return !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) && err == nil
}
