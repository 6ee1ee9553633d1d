package repository

import (
	"context"

	"github.com/kitmak72/room-booking-system/internal/domain/room"
	"github.com/kitmak72/room-booking-system/internal/infra"
	"github.com/kitmak72/room-booking-system/internal/infra/db"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(pool db.DBTX) *RoomRepository {
	return &RoomRepository{
		db: pool,
	}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO rooms (name) VALUES ($1) RETURNING id`,
		rm.Name(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err)
	}

	return id, nil
}

func (r *RoomRepository) Exists(ctx context.Context, tx db.DBTX, id int64) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room existence", err)
	}

	return exists, nil
}
