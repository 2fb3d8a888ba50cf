package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// MemRoomRepository stores the room registry in process memory.
type MemRoomRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Room
}

// NewMemRoomRepository creates a room store seeded with the given rooms.
func NewMemRoomRepository(seed []domain.Room) portsrepo.RoomRepositoryFacade {
	items := make(map[string]domain.Room, len(seed))
	for _, room := range seed {
		items[room.RoomID] = room
	}
	return &MemRoomRepository{items: items}
}

func (r *MemRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.items[roomID]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r *MemRoomRepository) ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Room, 0, len(r.items))
	for _, room := range r.items {
		if status != nil && room.Status != *status {
			continue
		}
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out, nil
}

// FindAvailableRoomByType returns the lowest-numbered available room of the
// type, so assignment order is deterministic.
func (r *MemRoomRepository) FindAvailableRoomByType(ctx context.Context, roomType string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var candidates []domain.Room
	for _, room := range r.items {
		if room.Type == roomType && room.Status == domain.RoomAvailable {
			candidates = append(candidates, room)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].RoomID < candidates[j].RoomID })
	room := candidates[0]
	return &room, nil
}

func (r *MemRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[room.RoomID]; exists {
		return apperrors.ErrDuplicate
	}
	r.items[room.RoomID] = room
	return nil
}

func (r *MemRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[room.RoomID]; !exists {
		return apperrors.ErrNotFound
	}
	r.items[room.RoomID] = room
	return nil
}
