package handler

import (
	"net/http"
	"time"

	"funnel/internal/delivery/api/response"
	deliverycontext "funnel/internal/delivery/context"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves registration, login and identity lookup.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=1024"`
}

// LoginRequest accepts JSON or a url-encoded form.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// MeResponse identifies the caller.
type MeResponse struct {
	Username string `json:"username"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.authUC.Register(c.Request().Context(), &usecase.CredentialsInput{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		return err
	}

	return response.Message(c, "User created successfully")
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.CredentialsInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, &TokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresAt:   out.ExpiresAt,
	})
}

// Me must run behind mandatory authentication.
func (h *AuthHandler) Me(c echo.Context) error {
	username := deliverycontext.GetUsername(c)
	if username == nil {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, &MeResponse{Username: *username})
}
