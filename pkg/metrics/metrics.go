package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "library"

// Borrow rejection reasons.
const (
	ReasonValidation        = "validation"
	ReasonNotFound          = "not_found"
	ReasonInsufficientStock = "insufficient_stock"
)

type Metrics struct {
	books          *prometheus.CounterVec
	borrows        prometheus.Counter
	borrowedCopies prometheus.Counter
	rejected       *prometheus.CounterVec
}

// New registers the library collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		books: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "book_operations_total",
			Help:      "Successful book writes by operation.",
		}, []string{"op"}),
		borrows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "borrows_total",
			Help:      "Borrow records created.",
		}),
		borrowedCopies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "borrowed_copies_total",
			Help:      "Copies handed out through borrow records.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "borrows_rejected_total",
			Help:      "Borrow requests rejected by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.books, m.borrows, m.borrowedCopies, m.rejected)
	return m
}

// Nil receivers are no-ops so callers may run without metrics.

func (m *Metrics) BookWritten(op string) {
	if m == nil {
		return
	}
	m.books.WithLabelValues(op).Inc()
}

func (m *Metrics) Borrowed(quantity int) {
	if m == nil {
		return
	}
	m.borrows.Inc()
	m.borrowedCopies.Add(float64(quantity))
}

func (m *Metrics) BorrowRejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}
