package handler

import (
	"time"

	"funnel/internal/domain/entity"

	"github.com/google/uuid"
)

// dateLayout is the wire format of calendar dates such as a lead's date of birth.
const dateLayout = time.DateOnly

// AccountResponse is the JSON form of an account.
type AccountResponse struct {
	ID              uuid.UUID      `json:"id"`
	CompanyName     string         `json:"company_name"`
	Industry        *string        `json:"industry"`
	Website         *string        `json:"website"`
	PhoneCode       *string        `json:"phone_code"`
	PhoneNo         *string        `json:"phone_no"`
	Email           *string        `json:"email"`
	Address         map[string]any `json:"address"`
	SocialLinks     map[string]any `json:"social_links"`
	LegalDetails    map[string]any `json:"legal_details"`
	CreatedBy       *string        `json:"created_by"`
	ParentAccountID *uuid.UUID     `json:"parent_account_id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func newAccountResponse(a *entity.Account) *AccountResponse {
	return &AccountResponse{
		ID:              a.ID,
		CompanyName:     a.CompanyName,
		Industry:        a.Industry,
		Website:         a.Website,
		PhoneCode:       a.PhoneCode,
		PhoneNo:         a.PhoneNo,
		Email:           a.Email,
		Address:         a.Address,
		SocialLinks:     a.SocialLinks,
		LegalDetails:    a.LegalDetails,
		CreatedBy:       a.CreatedBy,
		ParentAccountID: a.ParentAccountID,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// AccountContactResponse is one person attached to an account.
type AccountContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     *string   `json:"title"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	PhoneCode *string   `json:"phone_code"`
	PhoneNo   *string   `json:"phone_no"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountContactsResponse lists the people attached to an account.
type AccountContactsResponse struct {
	AccountID     uuid.UUID                 `json:"account_id"`
	AccountName   string                    `json:"account_name"`
	Contacts      []*AccountContactResponse `json:"contacts"`
	TotalContacts int                       `json:"total_contacts"`
}

// AccountRefResponse is the short account form embedded in leads.
type AccountRefResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
}

// LeadResponse is the JSON form of a lead.
type LeadResponse struct {
	ID         uuid.UUID             `json:"id"`
	Title      string                `json:"title"`
	FirstName  string                `json:"first_name"`
	LastName   string                `json:"last_name"`
	Email      *string               `json:"email"`
	PhoneCode  *string               `json:"phone_code"`
	PhoneNo    *string               `json:"phone_no"`
	EntryPoint string                `json:"entry_point"`
	Platform   *string               `json:"platform"`
	LeadStage  *string               `json:"lead_stage"`
	CreatedBy  *string               `json:"created_by"`
	Accounts   []*AccountRefResponse `json:"accounts"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func newLeadResponse(l *entity.Lead) *LeadResponse {
	accounts := make([]*AccountRefResponse, 0, len(l.Accounts))
	for _, ref := range l.Accounts {
		accounts = append(accounts, &AccountRefResponse{ID: ref.ID, CompanyName: ref.CompanyName})
	}

	return &LeadResponse{
		ID:         l.ID,
		Title:      l.Title,
		FirstName:  l.FirstName,
		LastName:   l.LastName,
		Email:      l.Email,
		PhoneCode:  l.PhoneCode,
		PhoneNo:    l.PhoneNo,
		EntryPoint: l.EntryPoint,
		Platform:   l.Platform,
		LeadStage:  l.LeadStage,
		CreatedBy:  l.CreatedBy,
		Accounts:   accounts,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

// LeadDetailsResponse is the JSON form of a lead's details.
type LeadDetailsResponse struct {
	ID            uint             `json:"id"`
	LeadID        uuid.UUID        `json:"lead_id"`
	DOB           *string          `json:"dob"`
	Gender        *string          `json:"gender"`
	MaritalStatus *string          `json:"marital_status"`
	Children      *int             `json:"children"`
	Occupation    *string          `json:"occupation"`
	LegalDetails  map[string]any   `json:"legal_details"`
	SocialLinks   map[string]any   `json:"social_links"`
	Addresses     []map[string]any `json:"addresses"`
	Notes         *string          `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func newLeadDetailsResponse(d *entity.LeadDetails) *LeadDetailsResponse {
	var dob *string
	if d.DOB != nil {
		s := d.DOB.Format(dateLayout)
		dob = &s
	}

	addresses := d.Addresses
	if addresses == nil {
		addresses = []map[string]any{}
	}

	return &LeadDetailsResponse{
		ID:            d.ID,
		LeadID:        d.LeadID,
		DOB:           dob,
		Gender:        d.Gender,
		MaritalStatus: d.MaritalStatus,
		Children:      d.Children,
		Occupation:    d.Occupation,
		LegalDetails:  d.LegalDetails,
		SocialLinks:   d.SocialLinks,
		Addresses:     addresses,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// LeadNoteResponse is the JSON form of a lead note.
type LeadNoteResponse struct {
	ID        uint      `json:"id"`
	LeadID    uuid.UUID `json:"lead_id"`
	Note      string    `json:"note"`
	UserID    *uint     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadProductResponse is the JSON form of a lead product.
type LeadProductResponse struct {
	ID            uint      `json:"id"`
	LeadID        uuid.UUID `json:"lead_id"`
	Product       string    `json:"product"`
	InterestLevel *string   `json:"interest_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ContactResponse is the JSON form of a contact.
type ContactResponse struct {
	ID          uuid.UUID      `json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    *string        `json:"last_name"`
	Email       *string        `json:"email"`
	PhoneCode   *string        `json:"phone_code"`
	PhoneNo     *string        `json:"phone_no"`
	EntryPoint  *string        `json:"entry_point"`
	SocialLinks map[string]any `json:"social_links"`
	Address     map[string]any `json:"address"`
	CreatedBy   *string        `json:"created_by"`
	AccountID   *uuid.UUID     `json:"account_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func newContactResponse(c *entity.Contact) *ContactResponse {
	return &ContactResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneCode:   c.PhoneCode,
		PhoneNo:     c.PhoneNo,
		EntryPoint:  c.EntryPoint,
		SocialLinks: c.SocialLinks,
		Address:     c.Address,
		CreatedBy:   c.CreatedBy,
		AccountID:   c.AccountID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// mapSlice converts every element with fn.
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
