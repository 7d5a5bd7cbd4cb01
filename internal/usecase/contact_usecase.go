package usecase

import (
	"context"

	"funnel/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactInput carries the full payload of a contact create or update.
type ContactInput struct {
	FirstName   string
	LastName    *string
	Email       *string
	PhoneCode   *string
	PhoneNo     *string
	EntryPoint  *string
	SocialLinks map[string]any
	Address     map[string]any
	AccountID   *uuid.UUID
	CreatedBy   *string
}

// ContactUsecase defines the contact management operations.
type ContactUsecase interface {
	ListContacts(ctx context.Context) ([]*entity.Contact, error)
	GetContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	CreateContact(ctx context.Context, input *ContactInput) (*entity.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, input *ContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
}
