package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is an owned store record. OwnerID is a weak reference into the user
// store, resolved by identifier at access time; it is set at creation and
// re-set to the acting identity on every update.
type Book struct {
	ID              string    // Short prefixed identifier, e.g. "Book7c02e".
	Title           string
	Author          string
	ISBN            string
	Genre           Genre
	Quantity        int64
	PublicationYear time.Time
	OwnerID         string // ID of the user the book currently belongs to.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBookID generates a short book identifier in the "Book" + 5 hex chars form.
func NewBookID() string {
	return "Book" + strings.ReplaceAll(uuid.New().String(), "-", "")[:5]
}
