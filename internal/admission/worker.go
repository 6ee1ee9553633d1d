package admission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kitmak72/room-booking-system/internal/domain/booking"
)

type Settler interface {
	Settle(ctx context.Context, b *booking.Booking) (booking.Status, error)
}

// Worker is the sole settlement consumer. Funneling every accept/reject
// decision through one loop gives total ordering of conflict decisions
// per room without distributed locks.
type Worker struct {
	queue   *Queue
	settler Settler
	logger  *slog.Logger
	done    chan struct{}
}

func NewWorker(queue *Queue, settler Settler, logger *slog.Logger) *Worker {
	return &Worker{
		queue:   queue,
		settler: settler,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start launches the consume/settle loop. Cancel ctx to stop it; a
// booking already dequeued is settled to completion before exit.
func (w *Worker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)

	w.logger.Info("settlement worker started")
	for {
		b, err := w.queue.Consume(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				w.logger.Info("settlement worker stopping")
				return
			}
			w.logger.Error("failed to consume from admission queue", "error", err)
			return
		}

		w.logger.Info("processing booking", "booking_id", b.ID())

		// The in-flight item must not be abandoned mid-settlement on
		// shutdown; it either settles or stays PENDING in the store.
		status, err := w.settler.Settle(context.WithoutCancel(ctx), b)
		if err != nil {
			// Isolate the failure to this item; it remains PENDING in
			// the store and is recovered at next startup.
			w.logger.Error("failed to settle booking", "booking_id", b.ID(), "error", err)
			continue
		}

		w.logger.Info("booking settled", "booking_id", b.ID(), "status", status.String())
	}
}

// Stop waits for the loop to exit after its context has been canceled.
func (w *Worker) Stop(ctx context.Context) error {
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
