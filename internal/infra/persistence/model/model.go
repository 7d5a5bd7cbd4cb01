// Package model holds the GORM representations of the persisted tables.
package model

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// All lists every model in dependency order, for AutoMigrate and code generation.
func All() []any {
	return []any{
		&UserModel{},
		&AccountModel{},
		&ContactModel{},
		&LeadModel{},
		&LeadAccountModel{},
		&LeadDetailsModel{},
		&LeadNoteModel{},
		&LeadProductModel{},
	}
}

// SetupJoinTables registers LeadAccountModel as the lead_accounts join model.
// It must run before the first query touching LeadModel.Accounts.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&LeadModel{}, "Accounts", &LeadAccountModel{}); err != nil {
		return errors.Wrap(err, "failed to set up lead_accounts join table")
	}

	return nil
}
