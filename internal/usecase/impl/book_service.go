package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/metrics"
	"bookstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	bookRepo  repository.BookRepository
	recorder  metrics.Recorder
	logger    *slog.Logger
}

// BookServiceParams holds dependencies for bookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	BookRepo  repository.BookRepository
	Recorder  metrics.Recorder
	Logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		bookRepo:  params.BookRepo,
		recorder:  params.Recorder,
		logger:    params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveActor loads the acting identity from the validated token subject.
func (srv *bookService) resolveActor(ctx context.Context, actorEmail string) (*entity.User, error) {
	actor, err := srv.userRepo.FindByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "acting user not found")
		}

		return nil, errors.Wrap(err, "failed to load acting user")
	}

	return actor, nil
}

// requireMutator is the per-operation role guard applied before any store
// mutation. Reads do not pass through it.
func requireMutator(actor *entity.User) error {
	if !actor.Role.CanMutateBooks() {
		return errors.Wrap(domainerrors.ErrUnauthorized, "role "+actor.Role.String()+" may not mutate books")
	}

	return nil
}

// AddBook inserts a new book owned by the acting identity.
func (srv *bookService) AddBook(ctx context.Context, actorEmail string, input *usecase.BookInput) (*usecase.BookOutput, error) {
	srv.log(ctx).Info("Inserting book", slog.String("title", input.Title))

	actor, err := srv.resolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if err := requireMutator(actor); err != nil {
		return nil, err
	}

	if !input.Genre.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown genre "+input.Genre.String())
	}

	book := &entity.Book{
		ID:              entity.NewBookID(),
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		Genre:           input.Genre,
		Quantity:        input.Quantity,
		PublicationYear: input.PublicationYear,
		OwnerID:         actor.ID,
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.recorder.RecordBookMutation("create")
	srv.log(ctx).Info("Book inserted successfully", slog.String("bookID", book.ID))

	return &usecase.BookOutput{Book: book, ActorName: actor.Name}, nil
}

// ListBooks returns every book in the store to any authenticated identity,
// regardless of owner.
func (srv *bookService) ListBooks(ctx context.Context, actorEmail string) (*usecase.BookListOutput, error) {
	actor, err := srv.resolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	books, err := srv.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	srv.log(ctx).Debug("Fetched all books", slog.String("actor", actor.Name), slog.Int("count", len(books)))

	return &usecase.BookListOutput{Books: books, ActorName: actor.Name}, nil
}

// GetBook returns a single book by id to any authenticated identity.
func (srv *bookService) GetBook(ctx context.Context, actorEmail, id string) (*usecase.BookOutput, error) {
	actor, err := srv.resolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book "+id)
		}

		return nil, errors.Wrap(err, "failed to load book")
	}

	return &usecase.BookOutput{Book: book, ActorName: actor.Name}, nil
}

// UpdateBook overwrites all mutable fields of an existing book and reassigns
// its owner to the acting identity. The load and save run in one transaction.
func (srv *bookService) UpdateBook(ctx context.Context, actorEmail, id string, input *usecase.BookInput) (*usecase.BookOutput, error) {
	srv.log(ctx).Info("Updating book", slog.String("bookID", id))

	actor, err := srv.resolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if err := requireMutator(actor); err != nil {
		return nil, err
	}

	if !input.Genre.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown genre "+input.Genre.String())
	}

	var updated *entity.Book
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		book, err := bookRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book "+id)
			}

			return errors.Wrap(err, "failed to load book for update")
		}

		book.Title = input.Title
		book.Author = input.Author
		book.ISBN = input.ISBN
		book.Genre = input.Genre
		book.Quantity = input.Quantity
		book.PublicationYear = input.PublicationYear
		book.OwnerID = actor.ID

		if err := bookRepo.Update(ctx, book); err != nil {
			return errors.Wrap(err, "failed to update book")
		}

		updated = book

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.recorder.RecordBookMutation("update")
	srv.log(ctx).Info("Book updated successfully", slog.String("bookID", id))

	return &usecase.BookOutput{Book: updated, ActorName: actor.Name}, nil
}

// RemoveBook deletes an existing book from the store.
func (srv *bookService) RemoveBook(ctx context.Context, actorEmail, id string) (*usecase.BookOutput, error) {
	srv.log(ctx).Info("Removing book", slog.String("bookID", id))

	actor, err := srv.resolveActor(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if err := requireMutator(actor); err != nil {
		return nil, err
	}

	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book "+id)
		}

		return nil, errors.Wrap(err, "failed to load book for removal")
	}

	if err := srv.bookRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book "+id)
		}

		return nil, errors.Wrap(err, "failed to delete book")
	}

	srv.recorder.RecordBookMutation("delete")
	srv.log(ctx).Info("Book removed successfully", slog.String("bookID", id))

	return &usecase.BookOutput{Book: book, ActorName: actor.Name}, nil
}
