package commands

import (
	"context"
	"errors"
	"time"

	"github.com/kitmak72/room-booking-system/internal/domain/booking"
	"github.com/kitmak72/room-booking-system/internal/infra/db"
	"github.com/kitmak72/room-booking-system/internal/pkg/clock"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
	"github.com/kitmak72/room-booking-system/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (*booking.Booking, error)
}

type RoomRepository interface {
	Exists(ctx context.Context, tx db.DBTX, id int64) (bool, error)
}

type AdmissionQueue interface {
	Add(b *booking.Booking)
}

type BookingCommands interface {
	Submit(ctx context.Context, roomID int64, start, end time.Time) (int64, error)
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	queue       AdmissionQueue
	policy      booking.AdmissionPolicy
	pool        *pgxpool.Pool
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	queue AdmissionQueue,
	policy booking.AdmissionPolicy,
	pool *pgxpool.Pool,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		queue:       queue,
		policy:      policy,
		pool:        pool,
		clock:       clk,
	}
}

// Submit runs the admission pipeline's write path: validate, persist as
// PENDING inside one transaction with the room-existence check, then
// enqueue for settlement. Persist-then-enqueue: a crash between commit
// and Add leaves the booking PENDING in the store, where queue
// rehydration picks it up at next startup.
func (c *bookingCommandsImpl) Submit(ctx context.Context, roomID int64, start, end time.Time) (int64, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidBooking)
	}

	if err := c.policy.Validate(slot, c.clock.Now()); err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidBooking)
	}

	created, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (*booking.Booking, error) {
		exists, existsErr := c.roomRepo.Exists(ctx, tx, roomID)
		if existsErr != nil {
			return nil, existsErr
		}
		if !exists {
			return nil, errs.ErrRoomNotFound
		}

		return c.bookingRepo.Create(ctx, tx, booking.NewBooking(roomID, slot))
	})
	if err != nil {
		if errors.Is(err, errs.ErrRoomNotFound) {
			return 0, errs.ErrRoomNotFound
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.queue.Add(created)

	return created.ID(), nil
}
