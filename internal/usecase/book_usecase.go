package usecase

import (
	"context"
	"time"

	"bookstore/internal/domain/entity"
)

// BookInput defines the writable fields of a book.
type BookInput struct {
	Title           string
	Author          string
	ISBN            string
	Genre           entity.Genre
	Quantity        int64
	PublicationYear time.Time
}

// BookOutput pairs a book with the name of the identity that performed the
// operation, so the delivery layer can build user-facing messages.
type BookOutput struct {
	Book      *entity.Book
	ActorName string
}

// BookListOutput is the result of listing the whole store.
type BookListOutput struct {
	Books     []*entity.Book
	ActorName string
}

// BookUsecase defines read/write operations over the book collection.
// Every method resolves the acting identity from the validated token subject;
// mutations additionally require the USER role before touching the store.
type BookUsecase interface {
	AddBook(ctx context.Context, actorEmail string, input *BookInput) (*BookOutput, error)
	ListBooks(ctx context.Context, actorEmail string) (*BookListOutput, error)
	GetBook(ctx context.Context, actorEmail, id string) (*BookOutput, error)
	UpdateBook(ctx context.Context, actorEmail, id string, input *BookInput) (*BookOutput, error)
	RemoveBook(ctx context.Context, actorEmail, id string) (*BookOutput, error)
}
