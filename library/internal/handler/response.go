package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/pkg/validate"
)

const (
	msgInternal     = "Internal server error"
	msgBookNotFound = "Book not found"
	msgInvalidID    = "Invalid book ID"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Name    string            `json:"name"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func success(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrInvalidID),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrQuery):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// failure renders err in the error envelope. Internal details stay in the log.
func (h *Handler) failure(c echo.Context, err error, message string) error {
	code := statusOf(err)
	body := &ErrorBody{
		Name:    errs.Name(err),
		Message: errs.Reason(err),
		Fields:  validate.Fields(err),
	}
	if code == http.StatusInternalServerError {
		h.log.Error(message,
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
		body.Message = msgInternal
	}
	return c.JSON(code, Response{
		Success: false,
		Message: message,
		Error:   body,
	})
}

// bindError turns a body decoding failure into a validation error.
func bindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return errors.Wrap(errs.ErrValidation, msg)
		}
	}
	return errors.Wrap(errs.ErrValidation, err.Error())
}

// httpErrorHandler renders router and middleware errors in the same envelope as handlers.
func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := msgInternal
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	name := "InternalError"
	switch {
	case code == http.StatusNotFound:
		name = "NotFoundError"
	case code < http.StatusInternalServerError:
		name = "ValidationError"
	default:
		h.log.Error("unhandled", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		message = msgInternal
	}

	resp := Response{
		Success: false,
		Message: http.StatusText(code),
		Error:   &ErrorBody{Name: name, Message: message},
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, resp)
	}
	if err != nil {
		h.log.Warn("write error response", zap.Error(err))
	}
}
