package booking

import (
	"errors"
	"time"
)

var (
	ErrStartNotBeforeEnd     = errors.New("start time must be before end time")
	ErrNotInFuture           = errors.New("booking times must be in the future")
	ErrOutsideBusinessWindow = errors.New("booking must be within business hours")
	ErrAlreadySettled        = errors.New("booking is already settled")
	ErrInvalidStatus         = errors.New("invalid booking status")
)

// Booking is a request to hold a room for a time slot. The id and
// request time are assigned by the store on creation and are zero
// before the booking has been persisted.
type Booking struct {
	id          int64
	roomID      int64
	slot        TimeSlot
	requestTime time.Time
	status      Status
}

func NewBooking(roomID int64, slot TimeSlot) *Booking {
	return &Booking{
		roomID: roomID,
		slot:   slot,
		status: StatusPending,
	}
}

func ReconstructBooking(id, roomID int64, slot TimeSlot, requestTime time.Time, status Status) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:          id,
		roomID:      roomID,
		slot:        slot,
		requestTime: requestTime,
		status:      status,
	}, nil
}

// Settle finalizes a pending booking. Terminal bookings stay unchanged.
func (b *Booking) Settle(accepted bool) error {
	if b.status.IsTerminal() {
		return ErrAlreadySettled
	}
	if accepted {
		b.status = StatusAccepted
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() int64              { return b.id }
func (b *Booking) RoomID() int64          { return b.roomID }
func (b *Booking) Slot() TimeSlot         { return b.slot }
func (b *Booking) RequestTime() time.Time { return b.requestTime }
func (b *Booking) Status() Status         { return b.status }
