// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain/entity"
)

// ErrBookNotFound is a domain-specific error returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines keyed CRUD over the book collection.
type BookRepository interface {
	// Create persists a new book entity to the storage.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a single book by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Book, error)

	// FindAll retrieves every book in the store, regardless of owner.
	FindAll(ctx context.Context) ([]*entity.Book, error)

	// Update overwrites an existing book record.
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes a book record by its identifier.
	Delete(ctx context.Context, id string) error
}
