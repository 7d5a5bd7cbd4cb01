package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person that belongs to at most one account.
type Contact struct {
	ID          uuid.UUID
	FirstName   string
	LastName    *string
	Email       *string
	PhoneCode   *string
	PhoneNo     *string
	EntryPoint  *string
	SocialLinks map[string]any
	Address     map[string]any
	CreatedBy   *string
	AccountID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
