package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-management/library/internal/errs"
	"github.com/Astemirdum/library-management/library/internal/model"
	"github.com/Astemirdum/library-management/pkg/kafka"
)

// parseID normalizes a client supplied book id.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", errors.Wrapf(errs.ErrInvalidID, "malformed id %q", id)
	}
	return u.String(), nil
}

// publish never fails the caller; delivery problems are only logged.
func publish(log *zap.Logger, events kafka.EventLog, e kafka.Event) {
	e.Timestamp = time.Now().UTC()
	if err := events.Log(e); err != nil {
		log.Warn("publish event",
			zap.String("type", string(e.EventType)),
			zap.String("book", e.BookID),
			zap.Error(err))
	}
}

// ParseListBooksQuery turns raw query parameters into a ListBooksQuery.
// Empty values fall back to createdAt, asc and 10. Any sort other than "asc" means descending.
func ParseListBooksQuery(filter, sortBy, sort, limit string) (model.ListBooksQuery, error) {
	q := model.DefaultListBooksQuery()

	if filter != "" {
		g := model.Genre(filter)
		if !g.Valid() {
			return model.ListBooksQuery{}, errors.Wrapf(errs.ErrQuery, "unknown genre %q", filter)
		}
		q.Genre = &g
	}
	if sortBy != "" {
		if _, ok := model.SortColumn(sortBy); !ok {
			return model.ListBooksQuery{}, errors.Wrapf(errs.ErrQuery, "unknown sort field %q", sortBy)
		}
		q.SortBy = sortBy
	}
	if sort != "" && sort != string(model.SortAsc) {
		q.Sort = model.SortDesc
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return model.ListBooksQuery{}, errors.Wrapf(errs.ErrQuery, "limit must be a non-negative integer, got %q", limit)
		}
		q.Limit = uint64(n)
	}
	return q, nil
}
