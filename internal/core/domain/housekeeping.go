package domain

import "time"

// HousekeepingStatus indicates the progress of a cleaning task.
type HousekeepingStatus string

const (
	HKPending    HousekeepingStatus = "PENDING"
	HKInProgress HousekeepingStatus = "IN_PROGRESS"
	HKInspected  HousekeepingStatus = "INSPECTED"
)

// HousekeepingTask is a cleaning job for a room. Checkout creates one
// automatically; advancing it to inspected releases the room.
type HousekeepingTask struct {
	TaskID    string             `json:"taskID"`
	RoomID    string             `json:"roomID"`
	Type      string             `json:"type"` // e.g. "Limpieza de Salida"
	Priority  string             `json:"priority"`
	Status    HousekeepingStatus `json:"status"`
	Assignee  string             `json:"assignee,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
}
