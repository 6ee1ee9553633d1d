package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrInvalidBooking  = errors.New("invalid booking")
	ErrBookingNotFound = errors.New("booking not found")

	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrInvalidRoom  = errors.New("invalid room")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
