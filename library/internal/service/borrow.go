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

const MissingBorrowFields = "Missing required fields: book, quantity, dueDate"

type BorrowService struct {
	log     *zap.Logger
	repo    repository.BorrowRepository
	events  kafka.EventLog
	metrics *metrics.Metrics
}

func NewBorrowService(repo repository.BorrowRepository, log *zap.Logger, events kafka.EventLog, m *metrics.Metrics) *BorrowService {
	return &BorrowService{
		log:     log.Named("borrows"),
		repo:    repo,
		events:  events,
		metrics: m,
	}
}

// CreateBorrow records a loan and takes the copies off the book atomically.
func (s *BorrowService) CreateBorrow(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRecord, error) {
	if !req.Complete() {
		s.metrics.BorrowRejected(metrics.ReasonValidation)
		return model.BorrowRecord{}, errors.Wrap(errs.ErrValidation, MissingBorrowFields)
	}
	if *req.Quantity < 1 {
		s.metrics.BorrowRejected(metrics.ReasonValidation)
		return model.BorrowRecord{}, errors.Wrap(errs.ErrValidation, "quantity must be at least 1")
	}
	if *req.Quantity > model.MaxCount {
		s.metrics.BorrowRejected(metrics.ReasonValidation)
		return model.BorrowRecord{}, errors.Wrap(errs.ErrValidation, "quantity is out of range")
	}
	bookID, err := parseID(req.Book)
	if err != nil {
		s.metrics.BorrowRejected(metrics.ReasonValidation)
		return model.BorrowRecord{}, err
	}

	rec, err := s.repo.CreateBorrow(ctx, model.BorrowRecord{
		ID:       uuid.NewString(),
		BookID:   bookID,
		Quantity: *req.Quantity,
		DueDate:  req.DueDate.Time,
	})
	switch {
	case errors.Is(err, errs.ErrNotFound):
		s.metrics.BorrowRejected(metrics.ReasonNotFound)
		return model.BorrowRecord{}, err
	case errors.Is(err, errs.ErrInsufficientStock):
		s.metrics.BorrowRejected(metrics.ReasonInsufficientStock)
		return model.BorrowRecord{}, err
	case err != nil:
		return model.BorrowRecord{}, err
	}

	s.metrics.Borrowed(rec.Quantity)
	publish(s.log, s.events, kafka.Event{
		EventType: kafka.EventBookBorrowed,
		BookID:    rec.BookID,
		Quantity:  rec.Quantity,
		BorrowID:  rec.ID,
	})
	s.log.Debug("borrowed", zap.String("book", rec.BookID), zap.Int("quantity", rec.Quantity))
	return rec, nil
}

func (s *BorrowService) BorrowSummary(ctx context.Context) ([]model.BorrowSummary, error) {
	return s.repo.BorrowSummary(ctx)
}
