package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/service"
)

// CreateBook godoc
// @Summary create a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.CreateBookRequest true "book"
// @Success 201 {object} Response{data=model.Book}
// @Failure 400 {object} Response
// @Router /api/books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	const failed = "Validation failed"
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return h.failure(c, bindError(err), failed)
	}
	if err := c.Validate(&req); err != nil {
		return h.failure(c, errs.WithCause(errs.ErrValidation, err), failed)
	}
	book, err := h.bookSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, failed)
	}
	return success(c, http.StatusCreated, "Book created successfully", book)
}

// ListBooks godoc
// @Summary list books
// @Tags books
// @Produce json
// @Param filter query string false "genre"
// @Param sortBy query string false "sort field" default(createdAt)
// @Param sort query string false "asc or desc" default(asc)
// @Param limit query int false "max books, 0 for all" default(10)
// @Success 200 {object} Response{data=[]model.Book}
// @Failure 400 {object} Response
// @Router /api/books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	const failed = "Failed to retrieve books"
	query, err := service.ParseListBooksQuery(
		c.QueryParam("filter"),
		c.QueryParam("sortBy"),
		c.QueryParam("sort"),
		c.QueryParam("limit"),
	)
	if err != nil {
		return h.failure(c, err, failed)
	}
	books, err := h.bookSvc.ListBooks(c.Request().Context(), query)
	if err != nil {
		return h.failure(c, err, failed)
	}
	return success(c, http.StatusOK, "Books retrieved successfully", books)
}

// GetBook godoc
// @Summary get a book
// @Tags books
// @Produce json
// @Param bookId path string true "book id"
// @Success 200 {object} Response{data=model.Book}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/books/{bookId} [get]
func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.bookSvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return h.failure(c, err, bookFailure(err, msgInternal))
	}
	return success(c, http.StatusOK, "Book retrieved successfully", book)
}

// UpdateBook godoc
// @Summary update a book
// @Description PUT and PATCH both apply only the fields present in the body.
// @Tags books
// @Accept json
// @Produce json
// @Param bookId path string true "book id"
// @Param book body model.UpdateBookRequest true "fields to change"
// @Success 200 {object} Response{data=model.Book}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/books/{bookId} [put]
// @Router /api/books/{bookId} [patch]
func (h *Handler) UpdateBook(c echo.Context) error {
	const failed = "Update failed"
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return h.failure(c, bindError(err), failed)
	}
	if err := c.Validate(&req); err != nil {
		return h.failure(c, errs.WithCause(errs.ErrValidation, err), failed)
	}
	book, err := h.bookSvc.UpdateBook(c.Request().Context(), c.Param("bookId"), req)
	if err != nil {
		return h.failure(c, err, bookFailure(err, failed))
	}
	return success(c, http.StatusOK, "Book updated successfully", book)
}

// DeleteBook godoc
// @Summary delete a book
// @Description Deleting a missing book succeeds.
// @Tags books
// @Produce json
// @Param bookId path string true "book id"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/books/{bookId} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.bookSvc.DeleteBook(c.Request().Context(), c.Param("bookId")); err != nil {
		return h.failure(c, err, "Delete failed")
	}
	return success(c, http.StatusOK, "Book deleted successfully", nil)
}

// UpdateAvailability godoc
// @Summary recompute the available flag from the stored copies
// @Tags books
// @Produce json
// @Param bookId path string true "book id"
// @Success 200 {object} Response{data=model.Book}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/books/{bookId}/availability [post]
func (h *Handler) UpdateAvailability(c echo.Context) error {
	book, err := h.bookSvc.UpdateAvailability(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return h.failure(c, err, bookFailure(err, "Update failed"))
	}
	return success(c, http.StatusOK, "Book availability updated successfully", book)
}

func bookFailure(err error, fallback string) string {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return msgBookNotFound
	case errors.Is(err, errs.ErrInvalidID):
		return msgInvalidID
	}
	return fallback
}
