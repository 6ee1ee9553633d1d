package readstore

import (
	"context"

	"github.com/kitmak72/room-booking-system/internal/infra"
	"github.com/kitmak72/room-booking-system/internal/infra/db"
	"github.com/kitmak72/room-booking-system/internal/usecase/queries"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(pool db.DBTX) *RoomReadStore {
	return &RoomReadStore{
		db: pool,
	}
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM rooms ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		var view queries.RoomView
		if scanErr := rows.Scan(&view.ID, &view.Name); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room", scanErr)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms", err)
	}

	return views, nil
}
