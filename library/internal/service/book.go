package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/library/internal/repository"
	"github.com/Astemirdum/library-management/pkg/kafka"
	"github.com/Astemirdum/library-management/pkg/metrics"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

type BookService struct {
	log     *zap.Logger
	repo    repository.BookRepository
	events  kafka.EventLog
	metrics *metrics.Metrics
}

func NewBookService(repo repository.BookRepository, log *zap.Logger, events kafka.EventLog, m *metrics.Metrics) *BookService {
	return &BookService{
		log:     log.Named("books"),
		repo:    repo,
		events:  events,
		metrics: m,
	}
}

func (s *BookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	if req.Copies == nil {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "copies is required")
	}
	req.Normalize()
	book := req.Book()
	if msg := book.Check(); msg != "" {
		return model.Book{}, errors.Wrap(errs.ErrValidation, msg)
	}
	book.ID = uuid.NewString()

	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.metrics.BookWritten(opCreate)
	publish(s.log, s.events, kafka.Event{
		EventType: kafka.EventBookCreated,
		BookID:    created.ID,
		ISBN:      created.ISBN,
		Copies:    created.Copies,
	})
	return created, nil
}

func (s *BookService) ListBooks(ctx context.Context, query model.ListBooksQuery) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, query)
}

func (s *BookService) GetBook(ctx context.Context, id string) (model.Book, error) {
	id, err := parseID(id)
	if err != nil {
		return model.Book{}, err
	}
	return s.repo.GetBook(ctx, id)
}

// UpdateBook applies the set fields of req to the stored book. PUT and PATCH share it.
func (s *BookService) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (model.Book, error) {
	id, err := parseID(id)
	if err != nil {
		return model.Book{}, err
	}
	if req.Empty() {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "no fields to update")
	}
	req.Normalize()

	updated, err := s.repo.UpdateBook(ctx, id, func(book *model.Book) error {
		req.Apply(book)
		if msg := book.Check(); msg != "" {
			return errors.Wrap(errs.ErrValidation, msg)
		}
		return nil
	})
	if err != nil {
		return model.Book{}, err
	}
	s.metrics.BookWritten(opUpdate)
	publish(s.log, s.events, kafka.Event{
		EventType: kafka.EventBookUpdated,
		BookID:    updated.ID,
		ISBN:      updated.ISBN,
		Copies:    updated.Copies,
	})
	return updated, nil
}

// DeleteBook is idempotent: deleting a missing book is not an error.
func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.metrics.BookWritten(opDelete)
	publish(s.log, s.events, kafka.Event{
		EventType: kafka.EventBookDeleted,
		BookID:    id,
	})
	return nil
}

// UpdateAvailability re-derives available from the stored copies.
func (s *BookService) UpdateAvailability(ctx context.Context, id string) (model.Book, error) {
	id, err := parseID(id)
	if err != nil {
		return model.Book{}, err
	}
	return s.repo.UpdateAvailability(ctx, id)
}
