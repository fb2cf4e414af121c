package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
)

var borrowColumns = []string{"id", "book_id", "quantity", "due_date", "created_at", "updated_at"}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// CreateBorrow takes rec.Quantity copies off the book and records the loan in one transaction.
// The guarded UPDATE holds the row lock, so concurrent borrows cannot overdraw stock.
func (r *repository) CreateBorrow(ctx context.Context, rec model.BorrowRecord) (model.BorrowRecord, error) {
	var created model.BorrowRecord
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		const decrement = `
update books
    set copies = copies - @quantity, updated_at = now()
where id = @id and copies >= @quantity`
		tag, err := tx.Exec(ctx, decrement, pgx.NamedArgs{
			"id":       rec.BookID,
			"quantity": rec.Quantity,
		})
		if err != nil {
			return classify(err)
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx,
				fmt.Sprintf(`select exists(select 1 from %s where id = $1)`, booksTableName),
				rec.BookID,
			).Scan(&exists); err != nil {
				return classify(err)
			}
			if !exists {
				return errors.Wrap(errs.ErrNotFound, "book not found")
			}
			return errs.ErrInsufficientStock
		}

		if _, err := updateAvailability(ctx, tx, rec.BookID); err != nil {
			return err
		}

		query, args, err := qb.Insert(borrowsTableName).
			Columns("id", "book_id", "quantity", "due_date").
			Values(rec.ID, rec.BookID, rec.Quantity, rec.DueDate).
			Suffix(returning(borrowColumns)).
			ToSql()
		if err != nil {
			return err
		}
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		created, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BorrowRecord])
		return classify(err)
	})
	if err != nil {
		if !errors.Is(err, errs.ErrInsufficientStock) && !errors.Is(err, errs.ErrNotFound) {
			r.log.Error("CreateBorrow", zap.String("book", rec.BookID), zap.Error(err))
		}
		return model.BorrowRecord{}, err
	}
	return created, nil
}

// BorrowSummary totals borrowed copies per existing book in first-borrow order.
func (r *repository) BorrowSummary(ctx context.Context) ([]model.BorrowSummary, error) {
	query, args, err := qb.Select("b.title", "b.isbn", "sum(br.quantity)").
		From(borrowsTableName + " br").
		Join(fmt.Sprintf("%s b on b.id = br.book_id", booksTableName)).
		GroupBy("b.id").
		OrderBy("min(br.created_at)", "b.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BorrowSummary, error) {
		var s model.BorrowSummary
		err := row.Scan(&s.Book.Title, &s.Book.ISBN, &s.TotalQuantity)
		return s, err
	})
	if err != nil {
		r.log.Error("BorrowSummary", zap.String("q", query), zap.Error(err))
		return nil, err
	}
	if items == nil {
		items = []model.BorrowSummary{}
	}
	return items, nil
}
