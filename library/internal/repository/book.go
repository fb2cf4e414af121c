package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
)

var bookColumns = []string{
	"id", "title", "author", "genre", "isbn", "description",
	"copies", "available", "created_at", "updated_at",
}

func collectBook(ctx context.Context, db querier, query string, args []any) (model.Book, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("id", "title", "author", "genre", "isbn", "description", "copies", "available").
		Values(book.ID, book.Title, book.Author, string(book.Genre), book.ISBN, book.Description, book.Copies, book.Available).
		Suffix(returning(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	created, err := collectBook(ctx, r.db, query, args)
	if err != nil {
		r.log.Debug("CreateBook", zap.String("q", query), zap.Error(err))
		return model.Book{}, classify(err)
	}
	return created, nil
}

func (r *repository) ListBooks(ctx context.Context, lq model.ListBooksQuery) ([]model.Book, error) {
	column, ok := model.SortColumn(lq.SortBy)
	if !ok {
		return nil, errors.Wrapf(errs.ErrQuery, "unknown sort field %q", lq.SortBy)
	}
	dir := " ASC"
	if lq.Sort != model.SortAsc {
		dir = " DESC"
	}

	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy(column+dir, "id"+dir)
	if lq.Genre != nil {
		q = q.Where(sq.Eq{"genre": string(*lq.Genre)})
	}
	if lq.Limit > 0 {
		q = q.Limit(lq.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		r.log.Error("ListBooks", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	return getBook(ctx, r.db, id, false)
}

func getBook(ctx context.Context, db querier, id string, forUpdate bool) (model.Book, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.Book{}, err
	}
	book, err := collectBook(ctx, db, query, args)
	if err != nil {
		return model.Book{}, classify(err)
	}
	return book, nil
}

// UpdateBook locks the row, lets apply mutate the stored book and writes the result back.
func (r *repository) UpdateBook(ctx context.Context, id string, apply func(book *model.Book) error) (model.Book, error) {
	var updated model.Book
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		book, err := getBook(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if err := apply(&book); err != nil {
			return err
		}

		query, args, err := qb.Update(booksTableName).
			SetMap(map[string]any{
				"title":       book.Title,
				"author":      book.Author,
				"genre":       string(book.Genre),
				"isbn":        book.ISBN,
				"description": book.Description,
				"copies":      book.Copies,
				"available":   book.Available,
				"updated_at":  sq.Expr("now()"),
			}).
			Where(sq.Eq{"id": id}).
			Suffix(returning(bookColumns)).
			ToSql()
		if err != nil {
			return err
		}
		updated, err = collectBook(ctx, tx, query, args)
		return classify(err)
	})
	if err != nil {
		return model.Book{}, err
	}
	return updated, nil
}

// DeleteBook succeeds whether or not the row existed.
func (r *repository) DeleteBook(ctx context.Context, id string) error {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return classify(err)
	}
	r.log.Debug("DeleteBook", zap.String("id", id), zap.Int64("rows", tag.RowsAffected()))
	return nil
}

func (r *repository) UpdateAvailability(ctx context.Context, id string) (model.Book, error) {
	return updateAvailability(ctx, r.db, id)
}

// updateAvailability is the single SQL path that derives available from copies.
func updateAvailability(ctx context.Context, db querier, id string) (model.Book, error) {
	query, args, err := qb.Update(booksTableName).
		Set("available", sq.Expr("copies > 0")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	book, err := collectBook(ctx, db, query, args)
	if err != nil {
		return model.Book{}, classify(err)
	}
	return book, nil
}
