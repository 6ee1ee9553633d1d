//go:build unit

package admission_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/kitmak72/room-booking-system/internal/admission"
	"github.com/kitmak72/room-booking-system/internal/domain/booking"

	"github.com/stretchr/testify/require"
)

type stubPendingSource struct {
	listPendingFunc func(ctx context.Context) ([]*booking.Booking, error)
}

func (s *stubPendingSource) ListPending(ctx context.Context) ([]*booking.Booking, error) {
	if s.listPendingFunc != nil {
		return s.listPendingFunc(ctx)
	}
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func pendingBooking(t *testing.T, id int64) *booking.Booking {
	t.Helper()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(start, start.Add(time.Hour))
	require.NoError(t, err)
	b, err := booking.ReconstructBooking(id, 1, slot, start.AddDate(0, 0, -1), booking.StatusPending)
	require.NoError(t, err)
	return b
}

func TestQueueFIFO(t *testing.T) {
	q := admission.NewQueue(&stubPendingSource{}, discardLogger())

	q.Add(pendingBooking(t, 1))
	q.Add(pendingBooking(t, 2))
	q.Add(pendingBooking(t, 3))

	ctx := context.Background()
	for _, want := range []int64{1, 2, 3} {
		got, err := q.Consume(ctx)
		require.NoError(t, err)
		require.Equal(t, want, got.ID())
	}
	require.Equal(t, 0, q.Len())
}

func TestQueueConsumeBlocksUntilAdd(t *testing.T) {
	q := admission.NewQueue(&stubPendingSource{}, discardLogger())

	got := make(chan *booking.Booking, 1)
	go func() {
		b, err := q.Consume(context.Background())
		if err == nil {
			got <- b
		}
	}()

	// Give the consumer time to block on an empty queue
	time.Sleep(50 * time.Millisecond)
	q.Add(pendingBooking(t, 7))

	select {
	case b := <-got:
		require.Equal(t, int64(7), b.ID())
	case <-time.After(2 * time.Second):
		t.Fatal("consumer was not woken by Add")
	}
}

func TestQueueConsumeCancellation(t *testing.T) {
	q := admission.NewQueue(&stubPendingSource{}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := q.Consume(ctx)
		errCh <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("blocked consumer did not return after cancellation")
	}
}

func TestQueueRehydrate(t *testing.T) {
	t.Run("recovered bookings precede new submissions", func(t *testing.T) {
		source := &stubPendingSource{
			listPendingFunc: func(_ context.Context) ([]*booking.Booking, error) {
				return []*booking.Booking{pendingBooking(t, 1), pendingBooking(t, 2)}, nil
			},
		}
		q := admission.NewQueue(source, discardLogger())

		require.NoError(t, q.Rehydrate(context.Background()))
		q.Add(pendingBooking(t, 3))

		ctx := context.Background()
		for _, want := range []int64{1, 2, 3} {
			got, err := q.Consume(ctx)
			require.NoError(t, err)
			require.Equal(t, want, got.ID())
		}
	})

	t.Run("store failure is propagated", func(t *testing.T) {
		source := &stubPendingSource{
			listPendingFunc: func(_ context.Context) ([]*booking.Booking, error) {
				return nil, context.DeadlineExceeded
			},
		}
		q := admission.NewQueue(source, discardLogger())

		require.Error(t, q.Rehydrate(context.Background()))
	})
}
