package impl

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/service"
	"funnel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Credential length limits. Passwords are digested before bcrypt, so the upper
// bound only caps request size.
const (
	minUsernameLength = 3
	maxUsernameLength = 150
	minPasswordLength = 6
	maxPasswordLength = 1024
)

// TokenTypeBearer is reported alongside issued access tokens.
const TokenTypeBearer = "bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register stores a new user with a hashed password.
func (srv *authService) Register(ctx context.Context, input *usecase.CredentialsInput) (*entity.User, error) {
	if err := validateCredentials(input); err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:       input.Username,
		HashedPassword: hashed,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "username already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("username", user.Username))

	return user, nil
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.CredentialsInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Info("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate resolves a bearer token to its user.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "invalid token")
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject does not exist")
		}

		return nil, errors.Wrap(err, "failed to find token subject")
	}

	return user, nil
}

func validateCredentials(input *usecase.CredentialsInput) error {
	if n := utf8.RuneCountInString(input.Username); n < minUsernameLength || n > maxUsernameLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength))
	}

	if n := len(input.Password); n < minPasswordLength || n > maxPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength))
	}

	return nil
}
