package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultEntryPoint is used when a lead is created without an entry point.
const DefaultEntryPoint = "INDV"

// Lead is a prospective contact progressing through the sales funnel.
type Lead struct {
	ID         uuid.UUID
	Title      string
	FirstName  string
	LastName   string
	Email      *string
	PhoneCode  *string
	PhoneNo    *string
	EntryPoint string
	Platform   *string
	LeadStage  *string
	CreatedBy  *string
	Accounts   []AccountRef // Accounts the lead is associated with, ordered by company name.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LeadDetails holds the optional personal profile of a lead. A lead has at most one.
type LeadDetails struct {
	ID            uint
	LeadID        uuid.UUID
	DOB           *time.Time
	Gender        *string
	MaritalStatus *string
	Children      *int
	Occupation    *string
	LegalDetails  map[string]any
	SocialLinks   map[string]any
	Addresses     []map[string]any
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LeadNote is a free-text note attached to a lead.
type LeadNote struct {
	ID        uint
	LeadID    uuid.UUID
	Note      string
	UserID    *uint // Author, when the note was written by an authenticated user.
	CreatedAt time.Time
}

// LeadProduct records a lead's interest in a product.
type LeadProduct struct {
	ID            uint
	LeadID        uuid.UUID
	Product       string
	InterestLevel *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
