package repositories

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// RoomReader defines read operations for room data
type RoomReader interface {
	// FindRoomByID retrieves a specific room by its identifier.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRooms retrieves all rooms, optionally filtered by status.
	ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error)

	// FindAvailableRoomByType retrieves one available room of the given type,
	// or apperrors.ErrNotFound when none is free.
	FindAvailableRoomByType(ctx context.Context, roomType string) (*domain.Room, error)
}

// RoomWriter defines write operations for room data
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, room domain.Room) error
}

// RoomRepositoryFacade combines all room repository interfaces
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}
