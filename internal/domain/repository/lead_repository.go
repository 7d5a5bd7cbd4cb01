package repository

import (
	"context"

	"funnel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for lead persistence.
var (
	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrLeadDetailsNotFound is returned when a lead has no details row.
	ErrLeadDetailsNotFound = errors.New("lead details not found")
	// ErrLeadNoteNotFound is returned when a note does not exist for the lead.
	ErrLeadNoteNotFound = errors.New("lead note not found")
	// ErrLeadProductNotFound is returned when a product does not exist for the lead.
	ErrLeadProductNotFound = errors.New("lead product not found")
)

// LeadRepository defines the persistence operations for leads, their account
// associations and their detail rows.
type LeadRepository interface {
	// Create persists a new lead. Associations are written separately.
	Create(ctx context.Context, lead *entity.Lead) error

	// FindByID retrieves a lead together with its associated accounts.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// List returns every lead with its associated accounts.
	List(ctx context.Context) ([]*entity.Lead, error)

	// ListByAccount returns the leads associated with an account.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Lead, error)

	// Update replaces every mutable column of an existing lead.
	Update(ctx context.Context, lead *entity.Lead) error

	// Delete removes a lead along with its associations, details, notes and products.
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplaceAccounts makes accountIDs the exact association set of the lead.
	ReplaceAccounts(ctx context.Context, leadID uuid.UUID, accountIDs []uuid.UUID) error

	// HasAccount reports whether the lead is associated with the account.
	HasAccount(ctx context.Context, leadID, accountID uuid.UUID) (bool, error)

	// AddAccount associates the lead with the account.
	AddAccount(ctx context.Context, leadID, accountID uuid.UUID) error

	// RemoveAccount dissociates the lead from the account.
	RemoveAccount(ctx context.Context, leadID, accountID uuid.UUID) error

	// DetachAccount removes every association that references the account.
	DetachAccount(ctx context.Context, accountID uuid.UUID) error

	FindDetails(ctx context.Context, leadID uuid.UUID) (*entity.LeadDetails, error)
	// SaveDetails inserts the details row of a lead, or replaces it when one exists.
	SaveDetails(ctx context.Context, details *entity.LeadDetails) error
	DeleteDetails(ctx context.Context, leadID uuid.UUID) error

	ListNotes(ctx context.Context, leadID uuid.UUID) ([]*entity.LeadNote, error)
	CreateNote(ctx context.Context, note *entity.LeadNote) error
	DeleteNote(ctx context.Context, leadID uuid.UUID, noteID uint) error

	ListProducts(ctx context.Context, leadID uuid.UUID) ([]*entity.LeadProduct, error)
	FindProduct(ctx context.Context, leadID uuid.UUID, productID uint) (*entity.LeadProduct, error)
	CreateProduct(ctx context.Context, product *entity.LeadProduct) error
	UpdateProduct(ctx context.Context, product *entity.LeadProduct) error
	DeleteProduct(ctx context.Context, leadID uuid.UUID, productID uint) error
}
