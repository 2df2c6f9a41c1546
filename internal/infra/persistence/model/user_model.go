// Package model contains the GORM persistence models.
// These are kept separate from the domain entities so the schema can evolve
// without leaking database concerns into the domain layer.
package model

import "time"

// UserModel is the GORM model backing the users table.
// Name and email carry unique indexes; the store's transactional boundary plus
// these indexes are what ultimately enforce global uniqueness.
type UserModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;uniqueIndex;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (UserModel) TableName() string {
	return "users"
}
