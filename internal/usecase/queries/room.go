package queries

import (
	"context"

	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
)

type RoomView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RoomReadStore interface {
	List(ctx context.Context) ([]*RoomView, error)
}

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{
		store: store,
	}
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rooms")
	}

	return rooms, nil
}
