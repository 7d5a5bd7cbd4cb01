// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"funnel/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountInput carries the full payload of an account create or update.
// Update replaces every field with the values given here.
type AccountInput struct {
	CompanyName     string
	Industry        *string
	Website         *string
	PhoneCode       *string
	PhoneNo         *string
	Email           *string
	Address         map[string]any
	SocialLinks     map[string]any
	LegalDetails    map[string]any
	ParentAccountID *uuid.UUID
	// CreatedBy is the authenticated username, only used on create.
	CreatedBy *string
}

// AccountContactsOutput lists the people attached to an account.
type AccountContactsOutput struct {
	Account  *entity.Account
	Contacts []*entity.AccountContact
}

// AccountUsecase defines the account management operations.
type AccountUsecase interface {
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	CreateAccount(ctx context.Context, input *AccountInput) (*entity.Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, input *AccountInput) (*entity.Account, error)
	// DeleteAccount detaches children, contacts and leads before removing the account.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	// ListAccountContacts returns the account's associated leads followed by its contacts.
	ListAccountContacts(ctx context.Context, id uuid.UUID) (*AccountContactsOutput, error)
}
