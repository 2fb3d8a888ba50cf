package dto

// AddRoomRequest registers a new physical room.
type AddRoomRequest struct {
	RoomID string `json:"roomID" binding:"required"`
	Floor  int    `json:"floor" binding:"required,min=1"`
	Type   string `json:"type" binding:"required"`
}

// UpdateRoomStatusRequest changes a room's physical status (maintenance
// in/out, manual corrections).
type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=AVAILABLE OCCUPIED CLEANING MAINTENANCE CHECKOUT_PENDING"`
}
