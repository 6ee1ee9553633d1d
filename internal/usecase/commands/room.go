package commands

import (
	"context"

	"github.com/kitmak72/room-booking-system/internal/domain/room"
	"github.com/kitmak72/room-booking-system/internal/infra/db"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
	"github.com/kitmak72/room-booking-system/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomWriteRepository interface {
	Create(ctx context.Context, tx db.DBTX, rm *room.Room) (int64, error)
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, name string) (int64, error)
}

type roomCommandsImpl struct {
	roomRepo RoomWriteRepository
	pool     *pgxpool.Pool
}

func NewRoomCommands(roomRepo RoomWriteRepository, pool *pgxpool.Pool) RoomCommands {
	return &roomCommandsImpl{
		roomRepo: roomRepo,
		pool:     pool,
	}
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, name string) (int64, error) {
	rm, err := room.NewRoom(name)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidRoom)
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (int64, error) {
		return c.roomRepo.Create(ctx, tx, rm)
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return id, nil
}
