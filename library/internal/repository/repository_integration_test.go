//go:build integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
)

func newBook(isbn string, copies int) model.Book {
	b := model.Book{
		ID:     uuid.NewString(),
		Title:  "Book " + isbn,
		Author: "Author",
		Genre:  model.GenreScience,
		ISBN:   isbn,
	}
	b.SetCopies(copies)
	return b
}

func borrow(bookID string, quantity int) model.BorrowRecord {
	return model.BorrowRecord{
		ID:       uuid.NewString(),
		BookID:   bookID,
		Quantity: quantity,
		DueDate:  time.Now().Add(14 * 24 * time.Hour).UTC(),
	}
}

func TestRepository(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		created, err := repo.CreateBook(ctx, newBook("isbn-create", 2))
		require.NoError(t, err)
		require.True(t, created.Available)
		require.False(t, created.CreatedAt.IsZero())

		got, err := repo.GetBook(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ISBN, got.ISBN)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		_, err := repo.CreateBook(ctx, newBook("isbn-dup", 1))
		require.NoError(t, err)

		_, err = repo.CreateBook(ctx, newBook("isbn-dup", 1))
		require.ErrorIs(t, err, errs.ErrValidation)

		books, err := repo.ListBooks(ctx, model.ListBooksQuery{SortBy: "isbn", Sort: model.SortAsc})
		require.NoError(t, err)
		n := 0
		for _, b := range books {
			if b.ISBN == "isbn-dup" {
				n++
			}
		}
		require.Equal(t, 1, n)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetBook(ctx, uuid.NewString())
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("borrow more than stock", func(t *testing.T) {
		b, err := repo.CreateBook(ctx, newBook("isbn-short", 3))
		require.NoError(t, err)

		_, err = repo.CreateBorrow(ctx, borrow(b.ID, 5))
		require.ErrorIs(t, err, errs.ErrInsufficientStock)

		got, err := repo.GetBook(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, 3, got.Copies)
	})

	t.Run("borrow decrements", func(t *testing.T) {
		b, err := repo.CreateBook(ctx, newBook("isbn-borrow", 5))
		require.NoError(t, err)

		rec, err := repo.CreateBorrow(ctx, borrow(b.ID, 2))
		require.NoError(t, err)
		require.Equal(t, 2, rec.Quantity)
		require.Equal(t, b.ID, rec.BookID)

		got, err := repo.GetBook(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, 3, got.Copies)
		require.True(t, got.Available)
	})

	t.Run("borrow last copies clears availability", func(t *testing.T) {
		b, err := repo.CreateBook(ctx, newBook("isbn-last", 2))
		require.NoError(t, err)

		_, err = repo.CreateBorrow(ctx, borrow(b.ID, 2))
		require.NoError(t, err)

		got, err := repo.GetBook(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, 0, got.Copies)
		require.False(t, got.Available)
	})

	t.Run("borrow missing book", func(t *testing.T) {
		_, err := repo.CreateBorrow(ctx, borrow(uuid.NewString(), 1))
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("concurrent borrows of the last copy", func(t *testing.T) {
		b, err := repo.CreateBook(ctx, newBook("isbn-race", 1))
		require.NoError(t, err)

		const workers = 2
		results := make([]error, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, results[i] = repo.CreateBorrow(ctx, borrow(b.ID, 1))
			}(i)
		}
		wg.Wait()

		var ok, short int
		for _, err := range results {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, errs.ErrInsufficientStock):
				short++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, ok)
		require.Equal(t, 1, short)

		got, err := repo.GetBook(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, 0, got.Copies)
		require.False(t, got.Available)
	})

	t.Run("update copies to zero", func(t *testing.T) {
		b, err := repo.CreateBook(ctx, newBook("isbn-patch", 4))
		require.NoError(t, err)

		updated, err := repo.UpdateBook(ctx, b.ID, func(book *model.Book) error {
			book.SetCopies(0)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 0, updated.Copies)
		require.False(t, updated.Available)
		require.True(t, updated.UpdatedAt.After(b.UpdatedAt) || updated.UpdatedAt.Equal(b.UpdatedAt))
	})

	t.Run("update rejected by apply leaves row intact", func(t *testing.T) {
		b, err := repo.CreateBook(ctx, newBook("isbn-reject", 4))
		require.NoError(t, err)

		_, err = repo.UpdateBook(ctx, b.ID, func(book *model.Book) error {
			book.SetCopies(1)
			return errs.ErrValidation
		})
		require.ErrorIs(t, err, errs.ErrValidation)

		got, err := repo.GetBook(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, 4, got.Copies)
	})

	t.Run("update missing book", func(t *testing.T) {
		_, err := repo.UpdateBook(ctx, uuid.NewString(), func(*model.Book) error { return nil })
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("update availability", func(t *testing.T) {
		b, err := repo.CreateBook(ctx, newBook("isbn-avail", 1))
		require.NoError(t, err)

		got, err := repo.UpdateAvailability(ctx, b.ID)
		require.NoError(t, err)
		require.True(t, got.Available)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		b, err := repo.CreateBook(ctx, newBook("isbn-delete", 1))
		require.NoError(t, err)

		require.NoError(t, repo.DeleteBook(ctx, b.ID))
		require.NoError(t, repo.DeleteBook(ctx, b.ID))
		require.NoError(t, repo.DeleteBook(ctx, uuid.NewString()))

		_, err = repo.GetBook(ctx, b.ID)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestRepository_ListBooks(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	for i, isbn := range []string{"c", "a", "b"} {
		b := newBook(isbn, i)
		if isbn == "a" {
			b.Genre = model.GenreHistory
		}
		_, err := repo.CreateBook(ctx, b)
		require.NoError(t, err)
	}

	isbns := func(books []model.Book) []string {
		out := make([]string, 0, len(books))
		for _, b := range books {
			out = append(out, b.ISBN)
		}
		return out
	}

	books, err := repo.ListBooks(ctx, model.DefaultListBooksQuery())
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, isbns(books))

	books, err = repo.ListBooks(ctx, model.ListBooksQuery{SortBy: "isbn", Sort: model.SortDesc, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b"}, isbns(books))

	history := model.GenreHistory
	books, err = repo.ListBooks(ctx, model.ListBooksQuery{Genre: &history, SortBy: "title", Sort: model.SortAsc})
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, isbns(books))

	_, err = repo.ListBooks(ctx, model.ListBooksQuery{SortBy: "rating"})
	require.ErrorIs(t, err, errs.ErrQuery)
}

func TestRepository_BorrowSummary(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	summary, err := repo.BorrowSummary(ctx)
	require.NoError(t, err)
	require.Empty(t, summary)

	dune, err := repo.CreateBook(ctx, newBook("978-0441013593", 10))
	require.NoError(t, err)
	gone, err := repo.CreateBook(ctx, newBook("gone", 10))
	require.NoError(t, err)

	_, err = repo.CreateBorrow(ctx, borrow(dune.ID, 2))
	require.NoError(t, err)
	_, err = repo.CreateBorrow(ctx, borrow(gone.ID, 1))
	require.NoError(t, err)
	_, err = repo.CreateBorrow(ctx, borrow(dune.ID, 3))
	require.NoError(t, err)
	require.NoError(t, repo.DeleteBook(ctx, gone.ID))

	summary, err = repo.BorrowSummary(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.BorrowSummary{
		{Book: model.BookSummary{Title: dune.Title, ISBN: dune.ISBN}, TotalQuantity: 5},
	}, summary)
}
