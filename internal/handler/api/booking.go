package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "github.com/kitmak72/room-booking-system/internal/handler/dto/request"
	resdto "github.com/kitmak72/room-booking-system/internal/handler/dto/response"
	"github.com/kitmak72/room-booking-system/internal/handler/httperr"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
	"github.com/kitmak72/room-booking-system/internal/usecase/commands"
	"github.com/kitmak72/room-booking-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit booking
// @Description Submit a booking request for a room; the decision is made asynchronously
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/new [post]
func (h *BookingHandler) NewBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	bookingID, err := h.bookingCommands.Submit(c.Request.Context(), req.RoomID, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errors.Is(err, errs.ErrInvalidBooking):
			// The domain reason is the user-facing message
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{BookingID: bookingID})
}

// @Summary Get booking status
// @Description Get a booking and its settlement status by ID
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id}/status [get]
func (h *BookingHandler) GetBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
