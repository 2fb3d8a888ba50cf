package repositories

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// ReservationReader defines read operations for reservation data
type ReservationReader interface {
	// FindReservationByID retrieves a specific reservation by its unique identifier.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// ListReservations retrieves all reservations, optionally filtered by status.
	ListReservations(ctx context.Context, status *domain.ReservationStatus) ([]domain.Reservation, error)
}

// ReservationWriter defines write operations for reservation data
type ReservationWriter interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservation replaces an existing reservation's state, folio included.
	UpdateReservation(ctx context.Context, reservation domain.Reservation) error
}

// ReservationRepositoryFacade combines all reservation repository interfaces
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
