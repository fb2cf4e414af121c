package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
)

// CreateBorrow godoc
// @Summary borrow copies of a book
// @Tags borrow
// @Accept json
// @Produce json
// @Param borrow body model.CreateBorrowRequest true "book id, quantity and due date"
// @Success 201 {object} Response{data=model.BorrowRecord}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /api/borrow [post]
func (h *Handler) CreateBorrow(c echo.Context) error {
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		err = bindError(err)
		return h.failure(c, err, errs.Reason(err))
	}
	if err := c.Validate(&req); err != nil {
		return h.failure(c, errs.WithCause(errs.ErrValidation, err), "Validation failed")
	}
	rec, err := h.borrowSvc.CreateBorrow(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, borrowFailure(err))
	}
	return success(c, http.StatusCreated, "Book borrowed successfully", rec)
}

// BorrowSummary godoc
// @Summary borrowed quantity per book
// @Tags borrow
// @Produce json
// @Success 200 {object} Response{data=[]model.BorrowSummary}
// @Failure 500 {object} Response
// @Router /api/borrow [get]
func (h *Handler) BorrowSummary(c echo.Context) error {
	items, err := h.borrowSvc.BorrowSummary(c.Request().Context())
	if err != nil {
		return h.failure(c, err, "Failed to retrieve summary")
	}
	return success(c, http.StatusOK, "Borrowed books summary retrieved successfully", items)
}

func borrowFailure(err error) string {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return errs.Reason(err)
	case errors.Is(err, errs.ErrInsufficientStock):
		return "Not enough copies available"
	case errors.Is(err, errs.ErrNotFound):
		return msgBookNotFound
	case errors.Is(err, errs.ErrInvalidID):
		return msgInvalidID
	}
	return msgInternal
}
