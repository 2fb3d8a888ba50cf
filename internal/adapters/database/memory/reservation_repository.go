package memory

import (
	"context"
	"sync"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// MemReservationRepository stores reservations in process memory. Values
// are deep-copied on the way in and out so callers can never alias the
// stored folio slice.
type MemReservationRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Reservation
}

// NewMemReservationRepository creates an empty in-memory reservation store.
func NewMemReservationRepository() portsrepo.ReservationRepositoryFacade {
	return &MemReservationRepository{items: make(map[string]domain.Reservation)}
}

func cloneReservation(r domain.Reservation) domain.Reservation {
	c := r
	c.Folio = make([]domain.FolioEntry, len(r.Folio))
	copy(c.Folio, r.Folio)
	if r.RoomID != nil {
		roomID := *r.RoomID
		c.RoomID = &roomID
	}
	if r.InvoiceNumber != nil {
		n := *r.InvoiceNumber
		c.InvoiceNumber = &n
	}
	if r.ControlNumber != nil {
		n := *r.ControlNumber
		c.ControlNumber = &n
	}
	return c
}

func (r *MemReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[reservationID]
	if !ok {
		return nil, nil
	}
	c := cloneReservation(res)
	return &c, nil
}

func (r *MemReservationRepository) ListReservations(ctx context.Context, status *domain.ReservationStatus) ([]domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Reservation, 0, len(r.items))
	for _, res := range r.items {
		if status != nil && res.Status != *status {
			continue
		}
		out = append(out, cloneReservation(res))
	}
	return out, nil
}

func (r *MemReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[reservation.ReservationID]; exists {
		return apperrors.ErrDuplicate
	}
	r.items[reservation.ReservationID] = cloneReservation(reservation)
	return nil
}

func (r *MemReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[reservation.ReservationID]; !exists {
		return apperrors.ErrNotFound
	}
	r.items[reservation.ReservationID] = cloneReservation(reservation)
	return nil
}
