package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	"funnel/internal/domain/service"
	mockRepo "funnel/internal/mocks/repository"
	mockSvc "funnel/internal/mocks/service"
	"funnel/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret!").Return("$2a$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.HashedPassword == "$2a$hash"
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = 1

			return nil
		})

	user, err := fx.service.Register(ctx, &usecase.CredentialsInput{Username: "alice", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
}

func TestAuthService_Register_Taken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret!").Return("$2a$hash", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, &usecase.CredentialsInput{Username: "alice", Password: "s3cret!"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CredentialsInput
	}{
		{"short username", usecase.CredentialsInput{Username: "al", Password: "s3cret!"}},
		{"long username", usecase.CredentialsInput{Username: strings.Repeat("a", 151), Password: "s3cret!"}},
		{"short password", usecase.CredentialsInput{Username: "alice", Password: "12345"}},
		{"long password", usecase.CredentialsInput{Username: "alice", Password: strings.Repeat("p", 1025)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), &tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAuthService_Register_LongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	password := strings.Repeat("long-pass-", 10)

	fx.hasher.EXPECT().Hash(password).Return("$2a$hash", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	user, err := fx.service.Register(ctx, &usecase.CredentialsInput{Username: "alice", Password: password})
	require.NoError(t, err)
	assert.Equal(t, "$2a$hash", user.HashedPassword)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("s3cret!").Return("", errors.New("boom"))

	_, err := fx.service.Register(context.Background(), &usecase.CredentialsInput{Username: "alice", Password: "s3cret!"})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(30 * time.Minute)

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.User{ID: 1, Username: "alice", HashedPassword: "h"}, nil)
	fx.hasher.EXPECT().Check("s3cret!", "h").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken("alice").Return("signed", expiresAt, nil)

	out, err := fx.service.Login(ctx, &usecase.CredentialsInput{Username: "alice", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, "signed", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestAuthService_Login_SameErrorForUnknownUserAndWrongPassword(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t)
	unknown.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	_, errUnknown := unknown.service.Login(ctx, &usecase.CredentialsInput{Username: "ghost", Password: "whatever"})

	wrong := createTestAuthService(t)
	wrong.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.User{Username: "alice", HashedPassword: "h"}, nil)
	wrong.hasher.EXPECT().Check("nope!!", "h").Return(false)
	_, errWrong := wrong.service.Login(ctx, &usecase.CredentialsInput{Username: "alice", Password: "nope!!"})

	var appUnknown, appWrong domainerrors.AppError
	require.True(t, errors.As(errUnknown, &appUnknown))
	require.True(t, errors.As(errWrong, &appWrong))
	assert.Equal(t, appUnknown.HTTPCode(), appWrong.HTTPCode())
	assert.Equal(t, appUnknown.ErrorCode(), appWrong.ErrorCode())
	assert.Equal(t, appUnknown.Message(), appWrong.Message())
}

func TestAuthService_Authenticate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	claims := &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}

	fx.tokenService.EXPECT().ValidateToken("good").Return(claims, nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.User{ID: 1, Username: "alice"}, nil)

	user, err := fx.service.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))

		_, err := fx.service.Authenticate(ctx, "bad")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("subject deleted", func(t *testing.T) {
		fx := createTestAuthService(t)
		claims := &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "gone"}}
		fx.tokenService.EXPECT().ValidateToken("orphan").Return(claims, nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "gone").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, "orphan")
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
