package api

import (
	"errors"
	"net/http"

	reqdto "github.com/kitmak72/room-booking-system/internal/handler/dto/request"
	resdto "github.com/kitmak72/room-booking-system/internal/handler/dto/response"
	"github.com/kitmak72/room-booking-system/internal/handler/httperr"
	"github.com/kitmak72/room-booking-system/internal/pkg/errs"
	"github.com/kitmak72/room-booking-system/internal/usecase/commands"
	"github.com/kitmak72/room-booking-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary Create room
// @Description Create a room that bookings can be submitted against
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.CreateRoomResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	roomID, err := h.roomCommands.CreateRoom(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRoom):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRoomResponse{RoomID: roomID})
}

// @Summary List rooms
// @Description List all rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.roomQueries.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}
