package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type BookRepository interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	ListBooks(ctx context.Context, query model.ListBooksQuery) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	UpdateBook(ctx context.Context, id string, apply func(book *model.Book) error) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	UpdateAvailability(ctx context.Context, id string) (model.Book, error)
}

type BorrowRepository interface {
	CreateBorrow(ctx context.Context, rec model.BorrowRecord) (model.BorrowRecord, error)
	BorrowSummary(ctx context.Context) ([]model.BorrowSummary, error)
}

type Repository interface {
	BookRepository
	BorrowRepository
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db pool")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

var _ Repository = (*repository)(nil)

const (
	booksTableName   = `books`
	borrowsTableName = `borrows`

	isbnUniqueConstraint = `books_isbn_key`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// classify maps driver errors onto the domain error set.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if pgErr.ConstraintName == isbnUniqueConstraint {
				return errors.Wrap(errs.ErrValidation, "isbn already exists")
			}
			return errors.Wrapf(errs.ErrValidation, "duplicate value violates %s", pgErr.ConstraintName)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return errors.Wrapf(errs.ErrValidation, "constraint %s violated", pgErr.ConstraintName)
		case pgerrcode.InvalidTextRepresentation:
			return errors.Wrap(errs.ErrInvalidID, pgErr.Message)
		}
	}
	return err
}
