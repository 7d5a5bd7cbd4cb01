package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"funnel/internal/delivery/api/response"
	"funnel/internal/delivery/api/validator"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	usecase.AuthUsecase
	users map[string]*entity.User
}

func (s *stubAuthUsecase) Authenticate(_ context.Context, token string) (*entity.User, error) {
	user, ok := s.users[token]
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

func newAuthMiddleware() *AuthMiddleware {
	return NewAuthMiddleware(&stubAuthUsecase{users: map[string]*entity.User{
		"good-token": {ID: 7, Username: "alice"},
	}})
}

func whoAmI(c echo.Context) error {
	username := deliverycontext.GetUsername(c)
	if username == nil {
		return c.String(http.StatusOK, "anonymous")
	}

	return c.String(http.StatusOK, *username)
}

func serve(mw echo.MiddlewareFunc, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = mw(whoAmI)(e.NewContext(req, rec))

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m := newAuthMiddleware()

	tests := []struct {
		name          string
		authorization string
		wantCode      int
		wantBody      string
	}{
		{name: "valid token", authorization: "Bearer good-token", wantCode: http.StatusOK, wantBody: "alice"},
		{name: "lowercase scheme", authorization: "bearer good-token", wantCode: http.StatusOK, wantBody: "alice"},
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", authorization: "Basic Zm9vOmJhcg==", wantCode: http.StatusUnauthorized},
		{name: "unknown token", authorization: "Bearer nope", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(m.Authenticate, tt.authorization)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	m := newAuthMiddleware()

	rec := serve(m.OptionalAuthenticate, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())

	rec = serve(m.OptionalAuthenticate, "Bearer good-token")
	assert.Equal(t, "alice", rec.Body.String())

	rec = serve(m.OptionalAuthenticate, "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantErrCode string
		wantDetails bool
	}{
		{
			name:        "validation error",
			err:         &validator.ValidationError{Fields: []validator.FieldError{{Field: "name", Rule: "required"}}},
			wantCode:    http.StatusBadRequest,
			wantErrCode: "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.ErrLeadNotFound, "failed to get lead"),
			wantCode:    http.StatusNotFound,
			wantErrCode: "LEAD_NOT_FOUND",
		},
		{
			name:        "app error with details",
			err:         domainerrors.ErrValidationFailed.WithDetails("username is too short"),
			wantCode:    http.StatusBadRequest,
			wantErrCode: "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:        "internal app error hides details",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("boom"), "insert failed"),
			wantCode:    http.StatusInternalServerError,
			wantErrCode: "DATABASE_EXECUTE_FAILED",
		},
		{
			name:        "echo not found",
			err:         echo.ErrNotFound,
			wantCode:    http.StatusNotFound,
			wantErrCode: "ROUTE_NOT_FOUND",
		},
		{
			name:        "payload too large",
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantCode:    http.StatusRequestEntityTooLarge,
			wantErrCode: "PAYLOAD_TOO_LARGE",
		},
		{
			name:        "unknown error",
			err:         errors.New("kaboom"),
			wantCode:    http.StatusInternalServerError,
			wantErrCode: "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantErrCode, body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tt.wantDetails {
				assert.NotNil(t, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "done"))

	NewErrorMiddleware(slog.Default()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
