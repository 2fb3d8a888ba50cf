package repositories

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// GuestReader defines read operations for guest data
type GuestReader interface {
	// FindGuestByID retrieves a specific guest by their identifier.
	FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error)

	// FindGuestByDocumentID retrieves a guest by identity document number.
	FindGuestByDocumentID(ctx context.Context, documentID string) (*domain.Guest, error)

	// ListGuests retrieves all guest profiles.
	ListGuests(ctx context.Context) ([]domain.Guest, error)
}

// GuestWriter defines write operations for guest data
type GuestWriter interface {
	// SaveGuest persists a new guest profile.
	SaveGuest(ctx context.Context, guest domain.Guest) error

	// UpdateGuest updates an existing guest profile.
	UpdateGuest(ctx context.Context, guest domain.Guest) error
}

// GuestRepositoryFacade combines all guest repository interfaces
type GuestRepositoryFacade interface {
	GuestReader
	GuestWriter
}
