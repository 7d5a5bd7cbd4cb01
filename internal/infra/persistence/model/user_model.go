package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"type:varchar(150);uniqueIndex;not null"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
