package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"
)

// GuestSvcFacade is the guest directory: profiles, stay counters, loyalty.
type GuestSvcFacade interface {
	// GetGuestByID retrieves a guest profile.
	GetGuestByID(ctx context.Context, guestID string) (*domain.Guest, error)

	// ListGuests retrieves all guest profiles.
	ListGuests(ctx context.Context) ([]domain.Guest, error)

	// UpsertFromRegistration creates or updates the guest profile captured
	// at check-in, matching by document id, and returns it.
	UpsertFromRegistration(ctx context.Context, req dto.CheckInRequest, userID string) (*domain.Guest, error)

	// FinalizeStay increments the stay counter and lifetime spend at
	// checkout and recomputes the loyalty tier. Tiers never regress.
	FinalizeStay(ctx context.Context, guestID string, spent decimal.Decimal, checkoutDate string, userID string) (*domain.Guest, error)
}
