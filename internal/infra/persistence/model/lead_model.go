package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeadModel mirrors the 'leads' table.
// Accounts is read through the lead_accounts join table; see SetupJoinTables.
type LeadModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"type:varchar(50);not null"`
	FirstName  string    `gorm:"type:varchar(100);not null"`
	LastName   string    `gorm:"type:varchar(100);not null"`
	Email      *string   `gorm:"type:varchar(255)"`
	PhoneCode  *string   `gorm:"type:varchar(10)"`
	PhoneNo    *string   `gorm:"type:varchar(20)"`
	EntryPoint string    `gorm:"type:varchar(50);not null;default:'INDV'"`
	Platform   *string   `gorm:"type:varchar(50)"`
	LeadStage  *string   `gorm:"type:varchar(50)"`
	CreatedBy  *string   `gorm:"type:varchar(150)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Accounts []AccountModel     `gorm:"many2many:lead_accounts;joinForeignKey:LeadID;joinReferences:AccountID"`
	Details  *LeadDetailsModel  `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Notes    []LeadNoteModel    `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Products []LeadProductModel `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}

// BeforeCreate assigns a random UUID when none was set.
func (m *LeadModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// LeadAccountModel mirrors the 'lead_accounts' join table.
type LeadAccountModel struct {
	LeadID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadAccountModel) TableName() string {
	return "lead_accounts"
}

// LeadDetailsModel mirrors the 'lead_details' table. At most one row exists per lead.
type LeadDetailsModel struct {
	ID            uint                                `gorm:"primaryKey;autoIncrement"`
	LeadID        uuid.UUID                           `gorm:"type:uuid;not null;uniqueIndex"`
	DOB           *time.Time                          `gorm:"column:dob;type:date"`
	Gender        *string                             `gorm:"type:varchar(20)"`
	MaritalStatus *string                             `gorm:"type:varchar(20)"`
	Children      *int                                `gorm:"type:integer"`
	Occupation    *string                             `gorm:"type:varchar(100)"`
	LegalDetails  datatypes.JSONMap                   `gorm:"type:jsonb"`
	SocialLinks   datatypes.JSONMap                   `gorm:"type:jsonb"`
	Addresses     datatypes.JSONSlice[map[string]any] `gorm:"type:jsonb;not null"`
	Notes         *string                             `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadDetailsModel) TableName() string {
	return "lead_details"
}

// LeadNoteModel mirrors the 'lead_notes' table. UserID references users.id.
type LeadNoteModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	LeadID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Note      string    `gorm:"type:text;not null"`
	UserID    *uint     `gorm:"index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadNoteModel) TableName() string {
	return "lead_notes"
}

// LeadProductModel mirrors the 'lead_products' table.
type LeadProductModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	LeadID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Product       string    `gorm:"type:varchar(255);not null"`
	InterestLevel *string   `gorm:"type:varchar(50)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadProductModel) TableName() string {
	return "lead_products"
}
