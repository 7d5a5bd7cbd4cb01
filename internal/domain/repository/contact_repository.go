package repository

import (
	"context"

	"funnel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrContactNotFound is returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the persistence operations for contacts.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	List(ctx context.Context) ([]*entity.Contact, error)

	// ListByAccount returns the contacts whose account_id is the given account.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Contact, error)

	Update(ctx context.Context, contact *entity.Contact) error

	// DetachAccount clears account_id on every contact of the account.
	DetachAccount(ctx context.Context, accountID uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
}
