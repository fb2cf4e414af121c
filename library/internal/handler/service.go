package handler

import (
	"context"

	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	ListBooks(ctx context.Context, query model.ListBooksQuery) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	UpdateAvailability(ctx context.Context, id string) (model.Book, error)
}

type BorrowService interface {
	CreateBorrow(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRecord, error)
	BorrowSummary(ctx context.Context) ([]model.BorrowSummary, error)
}

var (
	_ BookService   = (*service.BookService)(nil)
	_ BorrowService = (*service.BorrowService)(nil)
)
