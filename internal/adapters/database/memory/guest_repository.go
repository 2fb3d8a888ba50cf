package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// MemGuestRepository stores guest profiles in process memory, indexed by
// id and by document id.
type MemGuestRepository struct {
	mu         sync.RWMutex
	items      map[string]domain.Guest
	byDocument map[string]string // document id -> guest id
}

// NewMemGuestRepository creates an empty in-memory guest store.
func NewMemGuestRepository() portsrepo.GuestRepositoryFacade {
	return &MemGuestRepository{
		items:      make(map[string]domain.Guest),
		byDocument: make(map[string]string),
	}
}

func (r *MemGuestRepository) FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	guest, ok := r.items[guestID]
	if !ok {
		return nil, nil
	}
	return &guest, nil
}

func (r *MemGuestRepository) FindGuestByDocumentID(ctx context.Context, documentID string) (*domain.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	guestID, ok := r.byDocument[documentID]
	if !ok {
		return nil, nil
	}
	guest := r.items[guestID]
	return &guest, nil
}

func (r *MemGuestRepository) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Guest, 0, len(r.items))
	for _, guest := range r.items {
		out = append(out, guest)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GuestID < out[j].GuestID })
	return out, nil
}

func (r *MemGuestRepository) SaveGuest(ctx context.Context, guest domain.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[guest.GuestID]; exists {
		return apperrors.ErrDuplicate
	}
	r.items[guest.GuestID] = guest
	if guest.DocumentID != "" {
		r.byDocument[guest.DocumentID] = guest.GuestID
	}
	return nil
}

func (r *MemGuestRepository) UpdateGuest(ctx context.Context, guest domain.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, exists := r.items[guest.GuestID]
	if !exists {
		return apperrors.ErrNotFound
	}
	if old.DocumentID != "" && old.DocumentID != guest.DocumentID {
		delete(r.byDocument, old.DocumentID)
	}
	r.items[guest.GuestID] = guest
	if guest.DocumentID != "" {
		r.byDocument[guest.DocumentID] = guest.GuestID
	}
	return nil
}
