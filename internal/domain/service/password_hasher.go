// Package service defines the domain's stateless collaborators.
package service

// PasswordHasher turns user passwords into stored hashes and verifies login attempts.
// Implementations must accept passwords of any length without silent truncation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool
}
