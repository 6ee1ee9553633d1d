package request

import (
	"time"
)

type CreateBookingRequest struct {
	RoomID    int64     `json:"roomId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}
