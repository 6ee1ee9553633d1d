package response

import (
	"time"

	"github.com/kitmak72/room-booking-system/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreateBookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

type BookingResponse struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"roomId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	RequestTime time.Time `json:"requestTime"`
	Status      string    `json:"status"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
