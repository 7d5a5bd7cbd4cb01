package handler

import (
	"fmt"
	"net/http"

	"funnel/internal/delivery/api/response"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContactHandler serves the /contacts routes.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(contactUC usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUC: contactUC}
}

// ContactRequest is the body of contact create and update.
type ContactRequest struct {
	FirstName   string         `json:"first_name" validate:"required,max=100"`
	LastName    *string        `json:"last_name" validate:"omitempty,max=100"`
	Email       *string        `json:"email" validate:"omitempty,email,max=255"`
	PhoneCode   *string        `json:"phone_code" validate:"omitempty,max=10"`
	PhoneNo     *string        `json:"phone_no" validate:"omitempty,max=20"`
	EntryPoint  *string        `json:"entry_point" validate:"omitempty,max=50"`
	SocialLinks map[string]any `json:"social_links"`
	Address     map[string]any `json:"address"`
	AccountID   *uuid.UUID     `json:"account_id"`
}

func (r *ContactRequest) toInput() *usecase.ContactInput {
	return &usecase.ContactInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneCode:   r.PhoneCode,
		PhoneNo:     r.PhoneNo,
		EntryPoint:  r.EntryPoint,
		SocialLinks: r.SocialLinks,
		Address:     r.Address,
		AccountID:   r.AccountID,
	}
}

func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactUC.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(contacts, newContactResponse))
}

func (h *ContactHandler) GetContact(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	contact, err := h.contactUC.GetContact(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newContactResponse(contact))
}

func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := req.toInput()
	input.CreatedBy = deliverycontext.GetUsername(c)

	contact, err := h.contactUC.CreateContact(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newContactResponse(contact))
}

func (h *ContactHandler) UpdateContact(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.contactUC.UpdateContact(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newContactResponse(contact))
}

func (h *ContactHandler) DeleteContact(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.contactUC.DeleteContact(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, fmt.Sprintf("Contact %s deleted successfully", id))
}
