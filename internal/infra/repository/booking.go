package repository

import (
	"context"
	"time"

	"github.com/kitmak72/room-booking-system/internal/domain/booking"
	"github.com/kitmak72/room-booking-system/internal/infra"
	"github.com/kitmak72/room-booking-system/internal/infra/db"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{
		db: pool,
	}
}

// Create persists a new pending booking; the store assigns id and
// request_time. Callers pass the transaction so creation shares a
// scope with the room-existence check.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (*booking.Booking, error) {
	var (
		id          int64
		requestTime time.Time
	)
	err := tx.QueryRow(ctx,
		`INSERT INTO bookings (room_id, start_time, end_time, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, request_time`,
		b.RoomID(), b.Slot().Start(), b.Slot().End(), b.Status().String(),
	).Scan(&id, &requestTime)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	created, err := booking.ReconstructBooking(id, b.RoomID(), b.Slot(), requestTime, b.Status())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reconstruct created booking", err)
	}

	return created, nil
}

// ListPending returns every pending booking in settlement order:
// request_time ascending, ties broken by id.
func (r *BookingRepository) ListPending(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, room_id, start_time, end_time, request_time, status
		 FROM bookings
		 WHERE status = 'PENDING'
		 ORDER BY request_time, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending bookings", err)
	}
	defer rows.Close()

	var pending []*booking.Booking
	for rows.Next() {
		b, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan pending booking", scanErr)
		}
		pending = append(pending, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pending bookings", err)
	}

	return pending, nil
}

// ExistsAcceptedOverlap reports whether an accepted booking for the room
// intersects the half-open interval [start, end).
func (r *BookingRepository) ExistsAcceptedOverlap(ctx context.Context, tx db.DBTX, roomID int64, start, end time.Time) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND status = 'ACCEPTED'
			  AND start_time < $3
			  AND end_time > $2
		 )`,
		roomID, start, end,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check accepted overlap", err)
	}

	return exists, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id int64, status booking.Status) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2 WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id          int64
		roomID      int64
		start       time.Time
		end         time.Time
		requestTime time.Time
		status      string
	)
	if err := row.Scan(&id, &roomID, &start, &end, &requestTime, &status); err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(id, roomID, slot, requestTime, booking.Status(status))
}
