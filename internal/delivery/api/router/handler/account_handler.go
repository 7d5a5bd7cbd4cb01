package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"funnel/internal/delivery/api/response"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// AccountRequest is the body of account create and update. The company name may be
// sent as either "name" or "company_name".
type AccountRequest struct {
	Name            string         `json:"name" validate:"required_without=CompanyName,max=255"`
	CompanyName     string         `json:"company_name" validate:"required_without=Name,max=255"`
	Industry        *string        `json:"industry" validate:"omitempty,max=255"`
	Website         *string        `json:"website" validate:"omitempty,max=255"`
	PhoneCode       *string        `json:"phone_code" validate:"omitempty,max=10"`
	PhoneNo         *string        `json:"phone_no" validate:"omitempty,max=20"`
	Email           *string        `json:"email" validate:"omitempty,email,max=255"`
	Address         map[string]any `json:"address"`
	SocialLinks     map[string]any `json:"social_links"`
	LegalDetails    map[string]any `json:"legal_details"`
	ParentAccountID *uuid.UUID     `json:"parent_account_id"`
}

func (r *AccountRequest) toInput() *usecase.AccountInput {
	name := r.CompanyName
	if name == "" {
		name = r.Name
	}

	return &usecase.AccountInput{
		CompanyName:     name,
		Industry:        r.Industry,
		Website:         r.Website,
		PhoneCode:       r.PhoneCode,
		PhoneNo:         r.PhoneNo,
		Email:           r.Email,
		Address:         r.Address,
		SocialLinks:     r.SocialLinks,
		LegalDetails:    r.LegalDetails,
		ParentAccountID: r.ParentAccountID,
	}
}

// ListAccounts handles GET /accounts
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountUC.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(accounts, newAccountResponse))
}

// GetAccount handles GET /accounts/:id
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// CreateAccount handles POST /accounts
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req AccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := req.toInput()
	input.CreatedBy = deliverycontext.GetUsername(c)

	account, err := h.accountUC.CreateAccount(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// UpdateAccount handles PUT /accounts/:id
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req AccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountUC.UpdateAccount(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newAccountResponse(account))
}

// DeleteAccount handles DELETE /accounts/:id
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, fmt.Sprintf("Account %s deleted successfully", id))
}

// ListAccountContacts handles GET /accounts/:id/contacts
func (h *AccountHandler) ListAccountContacts(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	out, err := h.accountUC.ListAccountContacts(c.Request().Context(), id)
	if err != nil {
		return err
	}

	contacts := mapSlice(out.Contacts, func(ac *entity.AccountContact) *AccountContactResponse {
		return &AccountContactResponse{
			ID:        ac.ID,
			Kind:      string(ac.Kind),
			Title:     ac.Title,
			FirstName: ac.FirstName,
			LastName:  ac.LastName,
			Email:     ac.Email,
			PhoneCode: ac.PhoneCode,
			PhoneNo:   ac.PhoneNo,
			CreatedAt: ac.CreatedAt,
		}
	})

	return response.Success(c, http.StatusOK, &AccountContactsResponse{
		AccountID:     out.Account.ID,
		AccountName:   out.Account.CompanyName,
		Contacts:      contacts,
		TotalContacts: len(contacts),
	})
}
