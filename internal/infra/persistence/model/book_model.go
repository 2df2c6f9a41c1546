package model

import "time"

// BookModel is the GORM model backing the books table.
// OwnerID is a plain foreign key into users; the domain treats it as a weak
// reference resolved at access time, never a preloaded association.
type BookModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Title           string    `gorm:"column:title;not null"`
	Author          string    `gorm:"column:author"`
	ISBN            string    `gorm:"column:isbn"`
	Genre           string    `gorm:"column:genre;not null"`
	Quantity        int64     `gorm:"column:quantity"`
	PublicationYear time.Time `gorm:"column:publication_year"`
	OwnerID         string    `gorm:"column:owner_id;index;not null"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (BookModel) TableName() string {
	return "books"
}
