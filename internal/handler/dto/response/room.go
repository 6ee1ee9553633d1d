package response

import (
	"github.com/kitmak72/room-booking-system/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreateRoomResponse struct {
	RoomID int64 `json:"roomId"`
}

type RoomResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	resp := make([]*RoomResponse, len(views))
	for i, view := range views {
		var r RoomResponse
		_ = copier.Copy(&r, view)
		resp[i] = &r
	}
	return resp
}
