package usecase

import (
	"context"
	"time"

	"funnel/internal/domain/entity"
)

// CredentialsInput defines the username and password used to register or log in.
type CredentialsInput struct {
	Username string
	Password string
}

// LoginOutput returns the issued access token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// AuthUsecase defines registration, login and bearer token resolution.
type AuthUsecase interface {
	Register(ctx context.Context, input *CredentialsInput) (*entity.User, error)
	// Login returns the same error for an unknown user and a wrong password.
	Login(ctx context.Context, input *CredentialsInput) (*LoginOutput, error)
	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
