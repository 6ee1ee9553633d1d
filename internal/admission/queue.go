package admission

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kitmak72/room-booking-system/internal/domain/booking"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
)

type PendingSource interface {
	ListPending(ctx context.Context) ([]*booking.Booking, error)
}

// Queue is the ordered hand-off between submission producers and the
// single settlement consumer. Capacity is unbounded: Add never blocks,
// settlement is assumed cheap relative to arrival rate. Every item has
// already been persisted as PENDING before it becomes visible here, so
// a lost process loses no bookings — Rehydrate rebuilds the queue from
// the store at startup.
type Queue struct {
	source PendingSource
	logger *slog.Logger

	mu     sync.Mutex
	items  []*booking.Booking
	notify chan struct{}
}

func NewQueue(source PendingSource, logger *slog.Logger) *Queue {
	return &Queue{
		source: source,
		logger: logger,
		notify: make(chan struct{}, 1),
	}
}

// Rehydrate seeds the queue with every pending booking, in request-time
// order (ties broken by id). It must complete before any Add from new
// submissions so recovered items keep their place in line.
func (q *Queue) Rehydrate(ctx context.Context) error {
	pending, err := q.source.ListPending(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to rehydrate admission queue")
	}

	q.mu.Lock()
	q.items = append(q.items, pending...)
	q.mu.Unlock()

	if len(pending) > 0 {
		q.logger.Info("rehydrated admission queue", "pending", len(pending))
		q.wake()
	}

	return nil
}

// Add appends to the tail without blocking the caller.
func (q *Queue) Add(b *booking.Booking) {
	q.mu.Lock()
	q.items = append(q.items, b)
	q.mu.Unlock()

	q.logger.Info("booking added to admission queue", "booking_id", b.ID())
	q.wake()
}

// Consume blocks until an item is available or ctx is canceled, then
// returns the head in FIFO order. Single consumer only.
func (q *Queue) Consume(ctx context.Context) (*booking.Booking, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			head := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return head, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-q.notify:
		}
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}
