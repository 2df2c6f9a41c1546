package impl

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/mocks"
	"bookstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookServiceFixture struct {
	service  usecase.BookUsecase
	userRepo *mocks.UserRepository
	bookRepo *mocks.BookRepository
}

func newBookServiceFixture(t *testing.T) *bookServiceFixture {
	t.Helper()

	userRepo := &mocks.UserRepository{}
	bookRepo := &mocks.BookRepository{}

	service := NewBookService(BookServiceParams{
		TxManager: &mocks.TransactionManager{
			Factory: &mocks.RepositoryFactory{Users: userRepo, Books: bookRepo},
		},
		UserRepo: userRepo,
		BookRepo: bookRepo,
		Recorder: mocks.NoopRecorder{},
		Logger:   discardLogger(),
	})

	return &bookServiceFixture{
		service:  service,
		userRepo: userRepo,
		bookRepo: bookRepo,
	}
}

func mutatorActor() *entity.User {
	return &entity.User{
		ID:    "User1a2b3",
		Name:  "alice",
		Email: "alice@example.com",
		Role:  entity.RoleUser,
	}
}

func readOnlyActor() *entity.User {
	return &entity.User{
		ID:    "User9f8e7",
		Name:  "bob",
		Email: "bob@example.com",
		Role:  entity.RoleNotAdmin,
	}
}

func fictionInput() *usecase.BookInput {
	return &usecase.BookInput{
		Title:           "The Pragmatic Shelf",
		Author:          "A. Author",
		ISBN:            "978-0000000000",
		Genre:           entity.GenreFiction,
		Quantity:        3,
		PublicationYear: time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBookService_AddBook_Success(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()
	actor := mutatorActor()

	f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)
	f.bookRepo.On("Create", ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(args mock.Arguments) {
			book := args.Get(1).(*entity.Book)
			assert.Contains(t, book.ID, "Book")
			assert.Equal(t, actor.ID, book.OwnerID)
			assert.Equal(t, entity.GenreFiction, book.Genre)
		}).
		Return(nil)

	output, err := f.service.AddBook(ctx, actor.Email, fictionInput())
	require.NoError(t, err)
	assert.Equal(t, "alice", output.ActorName)
	assert.Equal(t, actor.ID, output.Book.OwnerID)
	f.bookRepo.AssertExpectations(t)
}

func TestBookService_AddBook_RejectsUnknownGenre(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()
	actor := mutatorActor()

	f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)

	input := fictionInput()
	input.Genre = entity.Genre("POETRY")

	_, err := f.service.AddBook(ctx, actor.Email, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	f.bookRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
}

// A NOT_ADMIN identity can read but never mutate; the store must stay
// untouched when the guard fires.
func TestBookService_Mutations_RequireUserRole(t *testing.T) {
	ctx := context.Background()
	actor := readOnlyActor()

	t.Run("add", func(t *testing.T) {
		f := newBookServiceFixture(t)
		f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)

		_, err := f.service.AddBook(ctx, actor.Email, fictionInput())
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		f.bookRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("update", func(t *testing.T) {
		f := newBookServiceFixture(t)
		f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)

		_, err := f.service.UpdateBook(ctx, actor.Email, "Book1a2b3", fictionInput())
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		f.bookRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})

	t.Run("remove", func(t *testing.T) {
		f := newBookServiceFixture(t)
		f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)

		_, err := f.service.RemoveBook(ctx, actor.Email, "Book1a2b3")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		f.bookRepo.AssertNotCalled(t, "Delete", ctx, mock.Anything)
	})
}

// Reads are open to any authenticated identity regardless of role.
func TestBookService_Reads_OpenToReadOnlyRole(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()
	actor := readOnlyActor()

	shelf := []*entity.Book{
		{ID: "Book1a2b3", Title: "First", OwnerID: "User1a2b3"},
		{ID: "Book4c5d6", Title: "Second", OwnerID: "User9f8e7"},
	}

	f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)
	f.bookRepo.On("FindAll", ctx).Return(shelf, nil)
	f.bookRepo.On("FindByID", ctx, "Book1a2b3").Return(shelf[0], nil)

	list, err := f.service.ListBooks(ctx, actor.Email)
	require.NoError(t, err)
	assert.Len(t, list.Books, 2, "listing is unfiltered by owner")
	assert.Equal(t, "bob", list.ActorName)

	single, err := f.service.GetBook(ctx, actor.Email, "Book1a2b3")
	require.NoError(t, err)
	assert.Equal(t, "First", single.Book.Title)
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()
	actor := mutatorActor()

	f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)
	f.bookRepo.On("FindByID", ctx, "Book00000").Return(nil, repository.ErrBookNotFound)

	_, err := f.service.GetBook(ctx, actor.Email, "Book00000")
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

// Updating reassigns ownership to whoever performed the update.
func TestBookService_UpdateBook_ReassignsOwner(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()
	actor := mutatorActor()

	existing := &entity.Book{
		ID:      "Book1a2b3",
		Title:   "Old Title",
		Genre:   entity.GenreHistory,
		OwnerID: "UserOther",
	}

	f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)
	f.bookRepo.On("FindByID", ctx, "Book1a2b3").Return(existing, nil)
	f.bookRepo.On("Update", ctx, mock.AnythingOfType("*entity.Book")).Return(nil)

	output, err := f.service.UpdateBook(ctx, actor.Email, "Book1a2b3", fictionInput())
	require.NoError(t, err)
	assert.Equal(t, "The Pragmatic Shelf", output.Book.Title)
	assert.Equal(t, entity.GenreFiction, output.Book.Genre)
	assert.Equal(t, actor.ID, output.Book.OwnerID)
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()
	actor := mutatorActor()

	f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)
	f.bookRepo.On("FindByID", ctx, "Book00000").Return(nil, repository.ErrBookNotFound)

	_, err := f.service.UpdateBook(ctx, actor.Email, "Book00000", fictionInput())
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
	f.bookRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestBookService_RemoveBook_Success(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()
	actor := mutatorActor()

	existing := &entity.Book{ID: "Book1a2b3", Title: "Doomed", OwnerID: actor.ID}

	f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)
	f.bookRepo.On("FindByID", ctx, "Book1a2b3").Return(existing, nil)
	f.bookRepo.On("Delete", ctx, "Book1a2b3").Return(nil)

	output, err := f.service.RemoveBook(ctx, actor.Email, "Book1a2b3")
	require.NoError(t, err)
	assert.Equal(t, "Doomed", output.Book.Title)
	f.bookRepo.AssertExpectations(t)
}

func TestBookService_RemoveBook_NotFound(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()
	actor := mutatorActor()

	f.userRepo.On("FindByEmail", ctx, actor.Email).Return(actor, nil)
	f.bookRepo.On("FindByID", ctx, "Book00000").Return(nil, repository.ErrBookNotFound)

	_, err := f.service.RemoveBook(ctx, actor.Email, "Book00000")
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
	f.bookRepo.AssertNotCalled(t, "Delete", ctx, mock.Anything)
}

func TestBookService_UnknownActor(t *testing.T) {
	f := newBookServiceFixture(t)
	ctx := context.Background()

	f.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.ListBooks(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
