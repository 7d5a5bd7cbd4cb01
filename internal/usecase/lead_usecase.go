package usecase

import (
	"context"
	"time"

	"funnel/internal/domain/entity"

	"github.com/google/uuid"
)

// LeadInput carries the full payload of a lead create or update.
type LeadInput struct {
	Title      string
	FirstName  string
	LastName   string
	Email      *string
	PhoneCode  *string
	PhoneNo    *string
	EntryPoint *string // Defaults to entity.DefaultEntryPoint when empty.
	Platform   *string
	LeadStage  *string
	// AccountIDs is the association set. On update nil keeps the current
	// associations and an empty slice clears them.
	AccountIDs []uuid.UUID
	CreatedBy  *string
}

// LeadDetailsInput carries the full payload of a lead's details.
type LeadDetailsInput struct {
	DOB           *time.Time
	Gender        *string
	MaritalStatus *string
	Children      *int
	Occupation    *string
	LegalDetails  map[string]any
	SocialLinks   map[string]any
	Addresses     []map[string]any
	Notes         *string
}

// LeadNoteInput carries a new note. UserID is the author when known.
type LeadNoteInput struct {
	Note   string
	UserID *uint
}

// LeadProductInput carries a product interest.
type LeadProductInput struct {
	Product       string
	InterestLevel *string
}

// AssociationResult describes the outcome of an association change.
// Changed is false when the requested state already held.
type AssociationResult struct {
	Message string
	Changed bool
}

// LeadUsecase defines the lead management operations.
type LeadUsecase interface {
	ListLeads(ctx context.Context) ([]*entity.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	// CreateLead fails with ErrAccountsNotFound, writing nothing, when any account ID is unknown.
	CreateLead(ctx context.Context, input *LeadInput) (*entity.Lead, error)
	UpdateLead(ctx context.Context, id uuid.UUID, input *LeadInput) (*entity.Lead, error)
	DeleteLead(ctx context.Context, id uuid.UUID) error

	ListAccountLeads(ctx context.Context, accountID uuid.UUID) ([]*entity.Lead, error)
	AddContactToAccount(ctx context.Context, accountID, leadID uuid.UUID) (*AssociationResult, error)
	RemoveContactFromAccount(ctx context.Context, accountID, leadID uuid.UUID) (*AssociationResult, error)

	GetLeadDetails(ctx context.Context, leadID uuid.UUID) (*entity.LeadDetails, error)
	UpsertLeadDetails(ctx context.Context, leadID uuid.UUID, input *LeadDetailsInput) (*entity.LeadDetails, error)
	DeleteLeadDetails(ctx context.Context, leadID uuid.UUID) error

	ListLeadNotes(ctx context.Context, leadID uuid.UUID) ([]*entity.LeadNote, error)
	AddLeadNote(ctx context.Context, leadID uuid.UUID, input *LeadNoteInput) (*entity.LeadNote, error)
	DeleteLeadNote(ctx context.Context, leadID uuid.UUID, noteID uint) error

	ListLeadProducts(ctx context.Context, leadID uuid.UUID) ([]*entity.LeadProduct, error)
	AddLeadProduct(ctx context.Context, leadID uuid.UUID, input *LeadProductInput) (*entity.LeadProduct, error)
	UpdateLeadProduct(ctx context.Context, leadID uuid.UUID, productID uint, input *LeadProductInput) (*entity.LeadProduct, error)
	DeleteLeadProduct(ctx context.Context, leadID uuid.UUID, productID uint) error
}
