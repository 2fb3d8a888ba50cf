package services

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"
)

// RoomSvcFacade manages the physical room registry and its status machine.
type RoomSvcFacade interface {
	// GetRoomByID retrieves a room.
	GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRooms retrieves rooms, optionally filtered by status.
	ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error)

	// AddRoom registers a new room as available.
	AddRoom(ctx context.Context, req dto.AddRoomRequest, creatorUserID string) (*domain.Room, error)

	// ChangeStatus applies a manual status transition (maintenance in/out
	// and corrections). Transitions driven by the reservation lifecycle go
	// through Occupy/Release/MarkCleaned instead.
	ChangeStatus(ctx context.Context, roomID string, status domain.RoomStatus, userID string) (*domain.Room, error)

	// Occupy links a guest and marks the room occupied (check-in).
	Occupy(ctx context.Context, roomID string, guestID string, userID string) error

	// ReleaseToCleaning unlinks the guest and marks the room for cleaning
	// (checkout).
	ReleaseToCleaning(ctx context.Context, roomID string, userID string) error

	// MarkCleaned returns a cleaned room to the available pool.
	MarkCleaned(ctx context.Context, roomID string, userID string) error

	// FindAvailableByType picks an available room of the given type for
	// auto-assignment.
	FindAvailableByType(ctx context.Context, roomType string) (*domain.Room, error)
}
