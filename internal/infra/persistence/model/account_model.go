package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'accounts' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CompanyName     string            `gorm:"type:varchar(255);not null;index"`
	Industry        *string           `gorm:"type:varchar(255)"`
	Website         *string           `gorm:"type:varchar(255)"`
	PhoneCode       *string           `gorm:"type:varchar(10)"`
	PhoneNo         *string           `gorm:"type:varchar(20)"`
	Email           *string           `gorm:"type:varchar(255)"`
	Address         datatypes.JSONMap `gorm:"type:jsonb"`
	SocialLinks     datatypes.JSONMap `gorm:"type:jsonb"`
	LegalDetails    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedBy       *string           `gorm:"type:varchar(150)"`
	ParentAccountID *uuid.UUID        `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// BeforeCreate assigns a random UUID when none was set.
func (m *AccountModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
