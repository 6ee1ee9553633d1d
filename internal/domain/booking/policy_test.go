//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/kitmak72/room-booking-system/internal/domain/booking"

	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday, 2026-03-06 a Friday, 2026-03-07 a Saturday,
// 2026-03-08 a Sunday.
var (
	monday   = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	friday   = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func at(day time.Time, hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func slot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	ts, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return ts
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("start equal to end is invalid", func(t *testing.T) {
		_, err := booking.NewTimeSlot(at(monday, 9, 0), at(monday, 9, 0))
		require.ErrorIs(t, err, booking.ErrStartNotBeforeEnd)
	})

	t.Run("start after end is invalid", func(t *testing.T) {
		_, err := booking.NewTimeSlot(at(monday, 10, 0), at(monday, 9, 0))
		require.ErrorIs(t, err, booking.ErrStartNotBeforeEnd)
	})

	t.Run("start before end is valid", func(t *testing.T) {
		_, err := booking.NewTimeSlot(at(monday, 9, 0), at(monday, 10, 0))
		require.NoError(t, err)
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := slot(t, at(monday, 9, 0), at(monday, 10, 0))

	cases := []struct {
		name     string
		other    booking.TimeSlot
		overlaps bool
	}{
		{
			name:     "identical slots overlap",
			other:    slot(t, at(monday, 9, 0), at(monday, 10, 0)),
			overlaps: true,
		},
		{
			name:     "partial overlap at tail",
			other:    slot(t, at(monday, 9, 30), at(monday, 10, 30)),
			overlaps: true,
		},
		{
			name:     "contained slot overlaps",
			other:    slot(t, at(monday, 9, 15), at(monday, 9, 45)),
			overlaps: true,
		},
		{
			name:     "touching at end does not overlap",
			other:    slot(t, at(monday, 10, 0), at(monday, 11, 0)),
			overlaps: false,
		},
		{
			name:     "touching at start does not overlap",
			other:    slot(t, at(monday, 8, 0), at(monday, 9, 0)),
			overlaps: false,
		},
		{
			name:     "disjoint slots do not overlap",
			other:    slot(t, at(monday, 11, 0), at(monday, 12, 0)),
			overlaps: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.overlaps, base.Overlaps(c.other))
			require.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}

func TestAdmissionPolicyValidate(t *testing.T) {
	policy := booking.NewAdmissionPolicy(8, 18)
	now := at(monday, 0, 0)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "weekday within business hours",
			start: at(monday, 9, 0),
			end:   at(monday, 10, 0),
		},
		{
			name:  "start in the past",
			start: at(monday, 9, 0).AddDate(0, 0, -7),
			end:   at(monday, 10, 0),
			errIs: booking.ErrNotInFuture,
		},
		{
			name:  "start exactly now",
			start: now,
			end:   at(monday, 10, 0),
			errIs: booking.ErrNotInFuture,
		},
		{
			name:  "both endpoints before opening",
			start: at(monday, 7, 0),
			end:   at(monday, 7, 30),
			errIs: booking.ErrOutsideBusinessWindow,
		},
		{
			name:  "one endpoint inside hours is enough",
			start: at(monday, 7, 30),
			end:   at(monday, 9, 0),
		},
		{
			name:  "open and close bounds are exclusive",
			start: at(monday, 8, 0),
			end:   at(monday, 18, 0),
			errIs: booking.ErrOutsideBusinessWindow,
		},
		{
			name:  "just inside both bounds",
			start: at(monday, 8, 1),
			end:   at(monday, 17, 59),
		},
		{
			name:  "saturday is rejected even within hours",
			start: at(saturday, 9, 0),
			end:   at(saturday, 10, 0),
			errIs: booking.ErrOutsideBusinessWindow,
		},
		{
			name:  "saturday to sunday is rejected",
			start: at(saturday, 9, 0),
			end:   at(sunday, 10, 0),
			errIs: booking.ErrOutsideBusinessWindow,
		},
		{
			// Historical compound rule: one weekday endpoint plus one
			// in-hours endpoint admits a slot crossing into the weekend.
			name:  "friday into saturday within hours is admitted",
			start: at(friday, 17, 0),
			end:   at(saturday, 10, 0),
		},
		{
			name:  "friday into saturday after hours is rejected",
			start: at(friday, 20, 0),
			end:   at(saturday, 21, 0),
			errIs: booking.ErrOutsideBusinessWindow,
		},
		{
			name:  "weekday overnight outside hours is rejected",
			start: at(monday, 19, 0),
			end:   at(monday, 23, 0),
			errIs: booking.ErrOutsideBusinessWindow,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts := slot(t, c.start, c.end)

			err := policy.Validate(ts, now)

			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
