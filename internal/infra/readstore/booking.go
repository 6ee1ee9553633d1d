package readstore

import (
	"context"
	"errors"

	"github.com/kitmak72/room-booking-system/internal/infra"
	"github.com/kitmak72/room-booking-system/internal/infra/db"
	"github.com/kitmak72/room-booking-system/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		db: pool,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	var view queries.BookingView
	err := r.db.QueryRow(ctx,
		`SELECT id, room_id, start_time, end_time, request_time, status
		 FROM bookings
		 WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.RoomID, &view.StartTime, &view.EndTime, &view.RequestTime, &view.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}
