// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"funnel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the persistence operations for accounts.
type AccountRepository interface {
	// Create persists a new account. The ID is generated when it is zero.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// List returns every account ordered by creation time.
	List(ctx context.Context) ([]*entity.Account, error)

	// CountByIDs returns how many of the given IDs exist.
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// FindParentID returns the parent of an account, or nil for a root account.
	FindParentID(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)

	// Update replaces every mutable column of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// DetachChildren clears parent_account_id on all direct children of the account.
	DetachChildren(ctx context.Context, parentID uuid.UUID) error

	// Delete removes an account by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
