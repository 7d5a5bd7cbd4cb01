package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by access tokens. The subject is the username.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs a token for the given username and returns it with its expiry.
	GenerateAccessToken(username string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
