package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"funnel/internal/delivery/api/response"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// LeadHandler serves the /leads routes.
type LeadHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// LeadRequest is the body of lead create and update. Omitting account_ids on
// update keeps the current associations, an empty list clears them.
type LeadRequest struct {
	Title      string      `json:"title" validate:"required,max=50"`
	FirstName  string      `json:"first_name" validate:"required,max=100"`
	LastName   string      `json:"last_name" validate:"required,max=100"`
	Email      *string     `json:"email" validate:"omitempty,email,max=255"`
	PhoneCode  *string     `json:"phone_code" validate:"omitempty,max=10"`
	PhoneNo    *string     `json:"phone_no" validate:"omitempty,max=20"`
	EntryPoint *string     `json:"entry_point" validate:"omitempty,max=50"`
	Platform   *string     `json:"platform" validate:"omitempty,max=50"`
	LeadStage  *string     `json:"lead_stage" validate:"omitempty,max=50"`
	AccountIDs []uuid.UUID `json:"account_ids"`
}

func (r *LeadRequest) toInput() *usecase.LeadInput {
	return &usecase.LeadInput{
		Title:      r.Title,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		PhoneCode:  r.PhoneCode,
		PhoneNo:    r.PhoneNo,
		EntryPoint: r.EntryPoint,
		Platform:   r.Platform,
		LeadStage:  r.LeadStage,
		AccountIDs: r.AccountIDs,
	}
}

// LeadDetailsRequest is the body of PUT /leads/:id/details.
type LeadDetailsRequest struct {
	DOB           *string          `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender        *string          `json:"gender" validate:"omitempty,max=20"`
	MaritalStatus *string          `json:"marital_status" validate:"omitempty,max=20"`
	Children      *int             `json:"children" validate:"omitempty,min=0"`
	Occupation    *string          `json:"occupation" validate:"omitempty,max=100"`
	LegalDetails  map[string]any   `json:"legal_details"`
	SocialLinks   map[string]any   `json:"social_links"`
	Addresses     []map[string]any `json:"addresses"`
	Notes         *string          `json:"notes"`
}

// LeadNoteRequest is the body of POST /leads/:id/notes.
type LeadNoteRequest struct {
	Note string `json:"note" validate:"required"`
}

// LeadProductRequest is the body of lead product create and update.
type LeadProductRequest struct {
	Product       string  `json:"product" validate:"required,max=255"`
	InterestLevel *string `json:"interest_level" validate:"omitempty,max=50"`
}

func (h *LeadHandler) ListLeads(c echo.Context) error {
	leads, err := h.leadUC.ListLeads(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(leads, newLeadResponse))
}

func (h *LeadHandler) GetLead(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	lead, err := h.leadUC.GetLead(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newLeadResponse(lead))
}

func (h *LeadHandler) CreateLead(c echo.Context) error {
	var req LeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := req.toInput()
	input.CreatedBy = deliverycontext.GetUsername(c)

	lead, err := h.leadUC.CreateLead(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newLeadResponse(lead))
}

func (h *LeadHandler) UpdateLead(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req LeadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lead, err := h.leadUC.UpdateLead(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newLeadResponse(lead))
}

func (h *LeadHandler) DeleteLead(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.leadUC.DeleteLead(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, fmt.Sprintf("Lead %s deleted successfully", id))
}

// ListAccountLeads handles GET /leads/contacts/account/:account_id
func (h *LeadHandler) ListAccountLeads(c echo.Context) error {
	accountID, err := uuidParam(c, "account_id")
	if err != nil {
		return err
	}

	leads, err := h.leadUC.ListAccountLeads(c.Request().Context(), accountID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(leads, newLeadResponse))
}

// AddContactToAccount handles POST /leads/contacts/account/:account_id/lead/:lead_id
func (h *LeadHandler) AddContactToAccount(c echo.Context) error {
	return h.changeAssociation(c, h.leadUC.AddContactToAccount)
}

// RemoveContactFromAccount handles DELETE /leads/contacts/account/:account_id/lead/:lead_id
func (h *LeadHandler) RemoveContactFromAccount(c echo.Context) error {
	return h.changeAssociation(c, h.leadUC.RemoveContactFromAccount)
}

type associationFunc func(ctx context.Context, accountID, leadID uuid.UUID) (*usecase.AssociationResult, error)

func (h *LeadHandler) changeAssociation(c echo.Context, change associationFunc) error {
	accountID, err := uuidParam(c, "account_id")
	if err != nil {
		return err
	}

	leadID, err := uuidParam(c, "lead_id")
	if err != nil {
		return err
	}

	result, err := change(c.Request().Context(), accountID, leadID)
	if err != nil {
		return err
	}

	if result.Changed {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Lead association changed",
			slog.String("lead_id", leadID.String()),
			slog.String("account_id", accountID.String()),
			slog.String("method", c.Request().Method))
	}

	return response.Message(c, result.Message)
}

func (h *LeadHandler) GetLeadDetails(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	details, err := h.leadUC.GetLeadDetails(c.Request().Context(), leadID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newLeadDetailsResponse(details))
}

// UpsertLeadDetails handles PUT /leads/:id/details
func (h *LeadHandler) UpsertLeadDetails(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req LeadDetailsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.LeadDetailsInput{
		Gender:        req.Gender,
		MaritalStatus: req.MaritalStatus,
		Children:      req.Children,
		Occupation:    req.Occupation,
		LegalDetails:  req.LegalDetails,
		SocialLinks:   req.SocialLinks,
		Addresses:     req.Addresses,
		Notes:         req.Notes,
	}
	if req.DOB != nil {
		// Format already checked by the datetime rule.
		dob, _ := time.Parse(dateLayout, *req.DOB)
		input.DOB = &dob
	}

	details, err := h.leadUC.UpsertLeadDetails(c.Request().Context(), leadID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newLeadDetailsResponse(details))
}

func (h *LeadHandler) DeleteLeadDetails(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.leadUC.DeleteLeadDetails(c.Request().Context(), leadID); err != nil {
		return err
	}

	return response.Message(c, fmt.Sprintf("Details of lead %s deleted successfully", leadID))
}

func (h *LeadHandler) ListLeadNotes(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	notes, err := h.leadUC.ListLeadNotes(c.Request().Context(), leadID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(notes, newLeadNoteResponse))
}

// AddLeadNote records the authenticated user, when there is one, as the author.
func (h *LeadHandler) AddLeadNote(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req LeadNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	note, err := h.leadUC.AddLeadNote(c.Request().Context(), leadID, &usecase.LeadNoteInput{
		Note:   req.Note,
		UserID: deliverycontext.GetUserID(c),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newLeadNoteResponse(note))
}

func (h *LeadHandler) DeleteLeadNote(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	noteID, err := uintParam(c, "note_id")
	if err != nil {
		return err
	}

	if err := h.leadUC.DeleteLeadNote(c.Request().Context(), leadID, noteID); err != nil {
		return err
	}

	return response.Message(c, fmt.Sprintf("Note %d deleted successfully", noteID))
}

func (h *LeadHandler) ListLeadProducts(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	products, err := h.leadUC.ListLeadProducts(c.Request().Context(), leadID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapSlice(products, newLeadProductResponse))
}

func (h *LeadHandler) AddLeadProduct(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req LeadProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.leadUC.AddLeadProduct(c.Request().Context(), leadID, &usecase.LeadProductInput{
		Product:       req.Product,
		InterestLevel: req.InterestLevel,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newLeadProductResponse(product))
}

func (h *LeadHandler) UpdateLeadProduct(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	productID, err := uintParam(c, "product_id")
	if err != nil {
		return err
	}

	var req LeadProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.leadUC.UpdateLeadProduct(c.Request().Context(), leadID, productID, &usecase.LeadProductInput{
		Product:       req.Product,
		InterestLevel: req.InterestLevel,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newLeadProductResponse(product))
}

func (h *LeadHandler) DeleteLeadProduct(c echo.Context) error {
	leadID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	productID, err := uintParam(c, "product_id")
	if err != nil {
		return err
	}

	if err := h.leadUC.DeleteLeadProduct(c.Request().Context(), leadID, productID); err != nil {
		return err
	}

	return response.Message(c, fmt.Sprintf("Product %d deleted successfully", productID))
}

func newLeadNoteResponse(n *entity.LeadNote) *LeadNoteResponse {
	return &LeadNoteResponse{
		ID:        n.ID,
		LeadID:    n.LeadID,
		Note:      n.Note,
		UserID:    n.UserID,
		CreatedAt: n.CreatedAt,
	}
}

func newLeadProductResponse(p *entity.LeadProduct) *LeadProductResponse {
	return &LeadProductResponse{
		ID:            p.ID,
		LeadID:        p.LeadID,
		Product:       p.Product,
		InterestLevel: p.InterestLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
