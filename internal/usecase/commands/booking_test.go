//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/kitmak72/room-booking-system/internal/domain/booking"
	"github.com/kitmak72/room-booking-system/internal/pkg/clock"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
	"github.com/kitmak72/room-booking-system/internal/usecase/commands"

	"github.com/stretchr/testify/require"
)

type stubQueue struct {
	added []*booking.Booking
}

func (q *stubQueue) Add(b *booking.Booking) {
	q.added = append(q.added, b)
}

// A rejected submission must never reach the store or the queue, so a
// nil pool is safe here: the pipeline short-circuits before any
// transaction begins.
func TestSubmitRejectsBeforePersistence(t *testing.T) {
	policy := booking.NewAdmissionPolicy(8, 18)
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC) // Monday 07:00
	queue := &stubQueue{}

	cmds := commands.NewBookingCommands(nil, nil, queue, policy, nil, clock.NewMockClock(now))

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "start equal to end",
			start: now.Add(2 * time.Hour),
			end:   now.Add(2 * time.Hour),
			errIs: booking.ErrStartNotBeforeEnd,
		},
		{
			name:  "times in the past",
			start: now.Add(-2 * time.Hour),
			end:   now.Add(-1 * time.Hour),
			errIs: booking.ErrNotInFuture,
		},
		{
			name:  "outside business window",
			start: now.AddDate(0, 0, 5), // Saturday 07:00
			end:   now.AddDate(0, 0, 5).Add(time.Hour),
			errIs: booking.ErrOutsideBusinessWindow,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := cmds.Submit(context.Background(), 1, c.start, c.end)

			require.ErrorIs(t, err, errs.ErrInvalidBooking)
			require.ErrorIs(t, err, c.errIs)
			require.Empty(t, queue.added, "nothing may be enqueued on a rejected submission")
		})
	}
}
