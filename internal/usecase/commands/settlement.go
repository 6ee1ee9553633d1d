package commands

import (
	"context"
	"time"

	"github.com/kitmak72/room-booking-system/internal/domain/booking"
	"github.com/kitmak72/room-booking-system/internal/infra/db"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
	"github.com/kitmak72/room-booking-system/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettlementStore interface {
	ExistsAcceptedOverlap(ctx context.Context, tx db.DBTX, roomID int64, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id int64, status booking.Status) error
}

type SettlementCommands interface {
	Settle(ctx context.Context, b *booking.Booking) (booking.Status, error)
}

type settlementCommandsImpl struct {
	store   SettlementStore
	pool    *pgxpool.Pool
	retries int
}

func NewSettlementCommands(store SettlementStore, pool *pgxpool.Pool, retries int) SettlementCommands {
	return &settlementCommandsImpl{
		store:   store,
		pool:    pool,
		retries: retries,
	}
}

// Settle resolves one pending booking against the current accepted set
// for its room. The conflict query and the status write share one
// transaction scope, so no later settlement can observe a half-updated
// acceptance set. Settling a booking that is already terminal is a
// no-op.
func (c *settlementCommandsImpl) Settle(ctx context.Context, b *booking.Booking) (booking.Status, error) {
	if !b.IsPending() {
		return b.Status(), nil
	}

	status, err := shared.RunInTxWithRetry(ctx, c.pool, c.retries, func(tx db.DBTX) (booking.Status, error) {
		conflict, conflictErr := c.store.ExistsAcceptedOverlap(ctx, tx, b.RoomID(), b.Slot().Start(), b.Slot().End())
		if conflictErr != nil {
			return "", conflictErr
		}

		decided := booking.StatusAccepted
		if conflict {
			decided = booking.StatusRejected
		}

		if updateErr := c.store.UpdateStatus(ctx, tx, b.ID(), decided); updateErr != nil {
			return "", updateErr
		}

		return decided, nil
	})
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Reflect the persisted decision on the in-memory entity only after
	// the transaction committed, keeping the scope retry-safe.
	if err := b.Settle(status == booking.StatusAccepted); err != nil {
		return "", err
	}

	return status, nil
}
