package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	repo_mocks "github.com/Astemirdum/library-management/library/internal/repository/mocks"
	"github.com/Astemirdum/library-management/library/internal/service"
	"github.com/Astemirdum/library-management/pkg/kafka"
	"github.com/Astemirdum/library-management/pkg/metrics"
)

func TestBorrowService_CreateBorrow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	due := &model.Date{Time: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)}

	type mockBehavior func(r *repo_mocks.MockBorrowRepository)

	tests := []struct {
		name         string
		req          model.CreateBorrowRequest
		mockBehavior mockBehavior
		wantErr      error
		wantEvents   []kafka.EventType
		wantMetrics  string
	}{
		{
			name: "ok",
			req:  model.CreateBorrowRequest{Book: bookID, Quantity: intPtr(2), DueDate: due},
			mockBehavior: func(r *repo_mocks.MockBorrowRepository) {
				r.EXPECT().
					CreateBorrow(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, rec model.BorrowRecord) (model.BorrowRecord, error) {
						if rec.BookID != bookID || rec.Quantity != 2 || !rec.DueDate.Equal(due.Time) || rec.ID == "" {
							return model.BorrowRecord{}, errors.Errorf("unexpected record %+v", rec)
						}
						return rec, nil
					})
			},
			wantEvents: []kafka.EventType{kafka.EventBookBorrowed},
			wantMetrics: `
# HELP library_borrowed_copies_total Copies handed out through borrow records.
# TYPE library_borrowed_copies_total counter
library_borrowed_copies_total 2
`,
		},
		{
			name:         "missing due date",
			req:          model.CreateBorrowRequest{Book: bookID, Quantity: intPtr(1)},
			mockBehavior: func(r *repo_mocks.MockBorrowRepository) {},
			wantErr:      errs.ErrValidation,
			wantMetrics: `
# HELP library_borrows_rejected_total Borrow requests rejected by reason.
# TYPE library_borrows_rejected_total counter
library_borrows_rejected_total{reason="validation"} 1
`,
		},
		{
			name:         "zero quantity",
			req:          model.CreateBorrowRequest{Book: bookID, Quantity: intPtr(0), DueDate: due},
			mockBehavior: func(r *repo_mocks.MockBorrowRepository) {},
			wantErr:      errs.ErrValidation,
		},
		{
			name:         "quantity beyond integer column",
			req:          model.CreateBorrowRequest{Book: bookID, Quantity: intPtr(3_000_000_000), DueDate: due},
			mockBehavior: func(r *repo_mocks.MockBorrowRepository) {},
			wantErr:      errs.ErrValidation,
			wantMetrics: `
# HELP library_borrows_rejected_total Borrow requests rejected by reason.
# TYPE library_borrows_rejected_total counter
library_borrows_rejected_total{reason="validation"} 1
`,
		},
		{
			name:         "malformed book id",
			req:          model.CreateBorrowRequest{Book: "abc", Quantity: intPtr(1), DueDate: due},
			mockBehavior: func(r *repo_mocks.MockBorrowRepository) {},
			wantErr:      errs.ErrInvalidID,
		},
		{
			name: "not enough copies",
			req:  model.CreateBorrowRequest{Book: bookID, Quantity: intPtr(5), DueDate: due},
			mockBehavior: func(r *repo_mocks.MockBorrowRepository) {
				r.EXPECT().CreateBorrow(ctx, gomock.Any()).Return(model.BorrowRecord{}, errs.ErrInsufficientStock)
			},
			wantErr: errs.ErrInsufficientStock,
			wantMetrics: `
# HELP library_borrows_rejected_total Borrow requests rejected by reason.
# TYPE library_borrows_rejected_total counter
library_borrows_rejected_total{reason="insufficient_stock"} 1
`,
		},
		{
			name: "book not found",
			req:  model.CreateBorrowRequest{Book: bookID, Quantity: intPtr(1), DueDate: due},
			mockBehavior: func(r *repo_mocks.MockBorrowRepository) {
				r.EXPECT().CreateBorrow(ctx, gomock.Any()).Return(model.BorrowRecord{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			repo := repo_mocks.NewMockBorrowRepository(c)
			events := &recordingLog{}
			reg := prometheus.NewRegistry()
			svc := service.NewBorrowService(repo, zap.NewNop(), events, metrics.New(reg))

			tt.mockBehavior(repo)
			_, err := svc.CreateBorrow(ctx, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, len(tt.wantEvents), len(events.types()))
			if tt.wantMetrics != "" {
				name := "library_borrowed_copies_total"
				if strings.Contains(tt.wantMetrics, "rejected") {
					name = "library_borrows_rejected_total"
				}
				require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(tt.wantMetrics), name))
			}
		})
	}
}

func TestBorrowService_MissingFieldsMessage(t *testing.T) {
	t.Parallel()
	svc := service.NewBorrowService(nil, zap.NewNop(), kafka.NewNopEventLog(), nil)
	_, err := svc.CreateBorrow(context.Background(), model.CreateBorrowRequest{})
	require.ErrorIs(t, err, errs.ErrValidation)
	require.Equal(t, service.MissingBorrowFields, errs.Reason(err))
}

func TestBorrowService_BorrowSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockBorrowRepository(c)
	svc := service.NewBorrowService(repo, zap.NewNop(), kafka.NewNopEventLog(), nil)

	want := []model.BorrowSummary{{Book: model.BookSummary{Title: "Dune", ISBN: "978-0441013593"}, TotalQuantity: 5}}
	repo.EXPECT().BorrowSummary(ctx).Return(want, nil)

	got, err := svc.BorrowSummary(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
