// Package entity contains the core business objects of the sales funnel,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a company or organization record, optionally nested under a parent account.
type Account struct {
	ID              uuid.UUID      // Generated identifier.
	CompanyName     string         // Required display name of the company.
	Industry        *string        // Free-form industry label.
	Website         *string        // Public website URL.
	PhoneCode       *string        // International dialing prefix.
	PhoneNo         *string        // Phone number without the prefix.
	Email           *string        // Primary contact email.
	Address         map[string]any // Structured postal address.
	SocialLinks     map[string]any // Social network handles keyed by network.
	LegalDetails    map[string]any // Registration numbers, tax ids and similar.
	CreatedBy       *string        // Username of the creator, when known.
	ParentAccountID *uuid.UUID     // Parent in the account hierarchy.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccountRef is the short form of an account embedded in other resources.
type AccountRef struct {
	ID          uuid.UUID
	CompanyName string
}

// ContactKind tells whether an account contact row comes from a lead or a contact.
type ContactKind string

const (
	ContactKindLead    ContactKind = "lead"
	ContactKindContact ContactKind = "contact"
)

// AccountContact is the projection returned when listing the people attached to an account.
type AccountContact struct {
	ID        uuid.UUID
	Kind      ContactKind
	Title     *string
	FirstName string
	LastName  *string
	Email     *string
	PhoneCode *string
	PhoneNo   *string
	CreatedAt time.Time
}
