package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/delivery/http/response"
	"bookstore/internal/domain/entity"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const publicationYearLayout = "2006-01-02"

// BookHandler holds dependencies for the book shelf handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

type bookRequest struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	ISBN            string `json:"isbn" validate:"required"`
	Genre           string `json:"genre" validate:"required"`
	Quantity        int64  `json:"quantity" validate:"gte=0"`
	PublicationYear string `json:"publicationYear" validate:"required"`
}

type bookResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Genre           string `json:"genre"`
	Quantity        int64  `json:"quantity"`
	PublicationYear string `json:"publicationYear"`
	OwnerID         string `json:"ownerId"`
}

func toBookResponse(book *entity.Book) bookResponse {
	return bookResponse{
		ID:              book.ID,
		Title:           book.Title,
		Author:          book.Author,
		ISBN:            book.ISBN,
		Genre:           book.Genre.String(),
		Quantity:        book.Quantity,
		PublicationYear: book.PublicationYear.Format(publicationYearLayout),
		OwnerID:         book.OwnerID,
	}
}

// actorEmail reads the authenticated subject set by the auth middleware.
// Book routes are always registered behind it, so the subject is present.
func actorEmail(c echo.Context) string {
	subject, _ := deliverycontext.GetSubject(c)

	return subject
}

func (h *BookHandler) bindBookInput(c echo.Context) (*usecase.BookInput, error) {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	publicationYear, err := time.Parse(publicationYearLayout, req.PublicationYear)
	if err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "publicationYear must be formatted as YYYY-MM-DD")
	}

	return &usecase.BookInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Genre:           entity.Genre(req.Genre),
		Quantity:        req.Quantity,
		PublicationYear: publicationYear,
	}, nil
}

// Add inserts a new book onto the shelf owned by the authenticated user.
func (h *BookHandler) Add(c echo.Context) error {
	input, err := h.bindBookInput(c)
	if input == nil {
		return err
	}

	output, err := h.uc.AddBook(c.Request().Context(), actorEmail(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := fmt.Sprintf("Book inserted successfully to %s shelve by %s", output.Book.Genre, output.ActorName)

	return response.Success(c, http.StatusCreated, toBookResponse(output.Book), message)
}

// List returns every book on the shelf.
func (h *BookHandler) List(c echo.Context) error {
	output, err := h.uc.ListBooks(c.Request().Context(), actorEmail(c))
	if err != nil {
		return errors.WithStack(err)
	}

	books := make([]bookResponse, 0, len(output.Books))
	for _, book := range output.Books {
		books = append(books, toBookResponse(book))
	}

	message := fmt.Sprintf("Fetched all books for user: %s", output.ActorName)

	return response.Success(c, http.StatusOK, books, message)
}

// Get returns a single book by its id.
func (h *BookHandler) Get(c echo.Context) error {
	id := c.Param("id")

	output, err := h.uc.GetBook(c.Request().Context(), actorEmail(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := fmt.Sprintf("Fetched book with id: %s", output.Book.ID)

	return response.Success(c, http.StatusOK, toBookResponse(output.Book), message)
}

// Update overwrites a book's writable fields and reassigns its owner.
func (h *BookHandler) Update(c echo.Context) error {
	id := c.Param("id")

	input, err := h.bindBookInput(c)
	if input == nil {
		return err
	}

	output, err := h.uc.UpdateBook(c.Request().Context(), actorEmail(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := fmt.Sprintf("Updated book with id: %s by %s", output.Book.ID, output.ActorName)

	return response.Success(c, http.StatusOK, toBookResponse(output.Book), message)
}

// Remove deletes a book from the shelf.
func (h *BookHandler) Remove(c echo.Context) error {
	id := c.Param("id")

	output, err := h.uc.RemoveBook(c.Request().Context(), actorEmail(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	message := fmt.Sprintf("Removed book with id: %s by %s", id, output.ActorName)

	return response.Success(c, http.StatusOK, map[string]string{"id": id}, message)
}
