package domain

// RoomStatus indicates the physical state of a room.
type RoomStatus string

const (
	RoomAvailable       RoomStatus = "AVAILABLE"
	RoomOccupied        RoomStatus = "OCCUPIED"
	RoomCleaning        RoomStatus = "CLEANING"
	RoomMaintenance     RoomStatus = "MAINTENANCE"
	RoomCheckoutPending RoomStatus = "CHECKOUT_PENDING"
)

// Room is a physical room. It is owned by the room registry and mutated
// only by the lifecycle controller and housekeeping.
type Room struct {
	RoomID  string     `json:"roomID"`
	Floor   int        `json:"floor"`
	Type    string     `json:"type"` // Simple, Doble, Suite
	Status  RoomStatus `json:"status"`
	GuestID string     `json:"guestID,omitempty"` // linked guest while occupied
	AuditFields
}
