//go:build unit

package admission_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kitmak72/room-booking-system/internal/admission"
	"github.com/kitmak72/room-booking-system/internal/domain/booking"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// memorySettler resolves bookings against an in-memory accepted set per
// room, mirroring the store-backed settlement command.
type memorySettler struct {
	mu       sync.Mutex
	accepted map[int64][]booking.TimeSlot
	settled  []int64
	failOn   map[int64]error
	block    chan struct{} // when set, Settle waits on it once per call
}

func newMemorySettler() *memorySettler {
	return &memorySettler{
		accepted: make(map[int64][]booking.TimeSlot),
		failOn:   make(map[int64]error),
	}
}

func (s *memorySettler) Settle(_ context.Context, b *booking.Booking) (booking.Status, error) {
	if s.block != nil {
		<-s.block
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failOn[b.ID()]; err != nil {
		return "", err
	}

	if !b.IsPending() {
		return b.Status(), nil
	}

	s.settled = append(s.settled, b.ID())

	for _, slot := range s.accepted[b.RoomID()] {
		if slot.Overlaps(b.Slot()) {
			_ = b.Settle(false)
			return booking.StatusRejected, nil
		}
	}

	s.accepted[b.RoomID()] = append(s.accepted[b.RoomID()], b.Slot())
	_ = b.Settle(true)
	return booking.StatusAccepted, nil
}

func (s *memorySettler) settledOrder() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.settled...)
}

func bookingWithSlot(t *testing.T, id, roomID int64, startHour, endHour int) *booking.Booking {
	t.Helper()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	slot, err := booking.NewTimeSlot(
		day.Add(time.Duration(startHour)*time.Hour),
		day.Add(time.Duration(endHour)*time.Hour),
	)
	require.NoError(t, err)
	b, err := booking.ReconstructBooking(id, roomID, slot, day.Add(time.Duration(id)*time.Second), booking.StatusPending)
	require.NoError(t, err)
	return b
}

func drainAndStop(t *testing.T, q *admission.Queue, w *admission.Worker, cancel context.CancelFunc) {
	t.Helper()
	require.Eventually(t, func() bool { return q.Len() == 0 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	require.NoError(t, w.Stop(stopCtx))
}

func TestWorkerFirstSubmittedWins(t *testing.T) {
	q := admission.NewQueue(&stubPendingSource{}, discardLogger())
	settler := newMemorySettler()
	w := admission.NewWorker(q, settler, discardLogger())

	first := bookingWithSlot(t, 1, 1, 9, 10)
	second := bookingWithSlot(t, 2, 1, 9, 11) // overlaps first
	touching := bookingWithSlot(t, 3, 1, 10, 11)
	otherRoom := bookingWithSlot(t, 4, 2, 9, 10)

	q.Add(first)
	q.Add(second)
	q.Add(touching)
	q.Add(otherRoom)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	drainAndStop(t, q, w, cancel)

	require.Equal(t, []int64{1, 2, 3, 4}, settler.settledOrder())
	require.Equal(t, booking.StatusAccepted, first.Status())
	require.Equal(t, booking.StatusRejected, second.Status())
	require.Equal(t, booking.StatusAccepted, touching.Status(), "touching endpoints must not conflict")
	require.Equal(t, booking.StatusAccepted, otherRoom.Status(), "rooms are independent")
}

func TestWorkerIsolatesSettlementFailure(t *testing.T) {
	q := admission.NewQueue(&stubPendingSource{}, discardLogger())
	settler := newMemorySettler()
	settler.failOn[2] = errs.New("store unavailable")
	w := admission.NewWorker(q, settler, discardLogger())

	q.Add(bookingWithSlot(t, 1, 1, 9, 10))
	q.Add(bookingWithSlot(t, 2, 1, 11, 12))
	q.Add(bookingWithSlot(t, 3, 1, 13, 14))

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	drainAndStop(t, q, w, cancel)

	// Booking 2 failed but 3 was still settled
	require.Equal(t, []int64{1, 3}, settler.settledOrder())
}

func TestWorkerFinishesInFlightItemOnShutdown(t *testing.T) {
	q := admission.NewQueue(&stubPendingSource{}, discardLogger())
	settler := newMemorySettler()
	settler.block = make(chan struct{})
	w := admission.NewWorker(q, settler, discardLogger())

	b := bookingWithSlot(t, 1, 1, 9, 10)
	q.Add(b)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	// Wait until the worker has dequeued and is blocked inside Settle
	require.Eventually(t, func() bool { return q.Len() == 0 }, 2*time.Second, 10*time.Millisecond)

	// Shut down while the item is in flight, then release the settler
	cancel()
	settler.block <- struct{}{}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	require.NoError(t, w.Stop(stopCtx))

	require.Equal(t, booking.StatusAccepted, b.Status(), "in-flight booking must be settled before exit")
}

func TestWorkerStopsWhenIdle(t *testing.T) {
	q := admission.NewQueue(&stubPendingSource{}, discardLogger())
	w := admission.NewWorker(q, newMemorySettler(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)

	cancel()
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	require.NoError(t, w.Stop(stopCtx))
}
