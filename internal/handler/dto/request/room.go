package request

type CreateRoomRequest struct {
	Name string `json:"name" binding:"required"`
}
