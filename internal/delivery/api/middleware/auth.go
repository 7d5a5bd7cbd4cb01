package middleware

import (
	"strings"

	"funnel/internal/delivery/api/response"
	deliverycontext "funnel/internal/delivery/context"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware resolves bearer tokens to users.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return unauthorized(c)
		}

		return m.resolve(c, token, next)
	}
}

// OptionalAuthenticate attaches the user when a bearer token is sent.
// A token that is present but invalid is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		token, ok := bearerToken(c)
		if !ok {
			return unauthorized(c)
		}

		return m.resolve(c, token, next)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context, token string, next echo.HandlerFunc) error {
	user, err := m.authUC.Authenticate(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.SetUser(c, user)

	return next(c)
}

func bearerToken(c echo.Context) (string, bool) {
	scheme, token, found := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
}
