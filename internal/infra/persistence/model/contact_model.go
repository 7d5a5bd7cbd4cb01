package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContactModel mirrors the 'contacts' table. AccountID references accounts.id.
type ContactModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	FirstName   string            `gorm:"type:varchar(100);not null"`
	LastName    *string           `gorm:"type:varchar(100)"`
	Email       *string           `gorm:"type:varchar(255)"`
	PhoneCode   *string           `gorm:"type:varchar(10)"`
	PhoneNo     *string           `gorm:"type:varchar(20)"`
	EntryPoint  *string           `gorm:"type:varchar(50)"`
	SocialLinks datatypes.JSONMap `gorm:"type:jsonb"`
	Address     datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedBy   *string           `gorm:"type:varchar(150)"`
	AccountID   *uuid.UUID        `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// BeforeCreate assigns a random UUID when none was set.
func (m *ContactModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
