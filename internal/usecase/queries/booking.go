package queries

import (
	"context"
	"time"

	"github.com/kitmak72/room-booking-system/internal/infra"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
)

// BookingView is the read model returned to the transport layer. A
// freshly submitted booking may read as PENDING until the settlement
// worker reaches it.
type BookingView struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"roomId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	RequestTime time.Time `json:"requestTime"`
	Status      string    `json:"status"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id int64) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
	}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id int64) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	return view, nil
}
