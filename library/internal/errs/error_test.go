package errs_test

import (
	"testing"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want string
	}{
		{err: errors.Wrap(errs.ErrValidation, "isbn already exists"), want: "ValidationError"},
		{err: errs.ErrNotFound, want: "NotFoundError"},
		{err: errors.Wrapf(errs.ErrInvalidID, "id %q", "42"), want: "InvalidIdError"},
		{err: errs.ErrInsufficientStock, want: "InsufficientStockError"},
		{err: errors.Wrap(errs.ErrQuery, "limit"), want: "QueryError"},
		{err: errors.New("conn refused"), want: "InternalError"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, errs.Name(tt.err))
	}
}

func TestReason(t *testing.T) {
	t.Parallel()
	require.Equal(t, "isbn already exists", errs.Reason(errors.Wrap(errs.ErrValidation, "isbn already exists")))
	require.Equal(t, "not found", errs.Reason(errs.ErrNotFound))
	require.Equal(t, "conn refused", errs.Reason(errors.New("conn refused")))
}

type fieldError struct{ field string }

func (e fieldError) Error() string { return e.field + " is required" }

func TestWithCause(t *testing.T) {
	t.Parallel()
	err := errs.WithCause(errs.ErrValidation, fieldError{field: "copies"})

	require.ErrorIs(t, err, errs.ErrValidation)
	require.NotErrorIs(t, err, errs.ErrNotFound)
	require.Equal(t, "ValidationError", errs.Name(err))
	require.Equal(t, "copies is required", errs.Reason(err))

	var fe fieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "copies", fe.field)
}
