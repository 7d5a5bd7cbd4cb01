// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"funnel/config"
	"funnel/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// digestBcryptHasher hashes the hex SHA-256 digest of a password with bcrypt.
// The digest keeps inputs under bcrypt's 72 byte limit.
type digestBcryptHasher struct {
	cost int
}

// NewPasswordHasher builds the hasher with the configured bcrypt cost.
func NewPasswordHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewPasswordHasherWithCost(cost)
}

// NewPasswordHasherWithCost builds the hasher with an explicit bcrypt cost.
func NewPasswordHasherWithCost(cost int) service.PasswordHasher {
	return &digestBcryptHasher{cost: cost}
}

// Hash generates a salted hash of the password digest.
func (h *digestBcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(digest(password)), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a stored hash.
func (h *digestBcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(digest(password)))

	return err == nil
}

func digest(password string) string {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:])
}
