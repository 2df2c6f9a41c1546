package postgres

import (
	"context"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// Create persists a new book entity to the database.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("book owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// FindByID retrieves a single book by its identifier.
func (repo *bookRepository) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindAll retrieves every book in the store, regardless of owner.
func (repo *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	var bookMs []model.BookModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&bookMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookMs))
	for i := range bookMs {
		books = append(books, toBookDomain(&bookMs[i]))
	}

	return books, nil
}

// Update overwrites an existing book record.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", bookM.ID).
		Updates(map[string]any{
			"title":            bookM.Title,
			"author":           bookM.Author,
			"isbn":             bookM.ISBN,
			"genre":            bookM.Genre,
			"quantity":         bookM.Quantity,
			"publication_year": bookM.PublicationYear,
			"owner_id":         bookM.OwnerID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes a book record by its identifier.
func (repo *bookRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		ISBN:            data.ISBN,
		Genre:           entity.Genre(data.Genre),
		Quantity:        data.Quantity,
		PublicationYear: data.PublicationYear,
		OwnerID:         data.OwnerID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		ISBN:            data.ISBN,
		Genre:           data.Genre.String(),
		Quantity:        data.Quantity,
		PublicationYear: data.PublicationYear,
		OwnerID:         data.OwnerID,
	}
}
