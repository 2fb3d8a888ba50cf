package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"
	"github.com/nuevatoledo/hotel_pms_app/internal/middleware"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// Loyalty thresholds. A tier is reached by stay count or lifetime spend,
// whichever comes first.
var (
	platinumStays = 10
	platinumSpend = decimal.NewFromInt(5000)
	goldStays     = 5
	goldSpend     = decimal.NewFromInt(2000)
	silverStays   = 3
	silverSpend   = decimal.NewFromInt(1000)
)

// GuestService is the guest directory: profiles, stay counters, loyalty.
type GuestService struct {
	guestRepo portsrepo.GuestRepositoryFacade
}

func NewGuestService(guestRepo portsrepo.GuestRepositoryFacade) *GuestService {
	return &GuestService{guestRepo: guestRepo}
}

func (s *GuestService) GetGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	guest, err := s.guestRepo.FindGuestByID(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guest %s: %w", guestID, err)
	}
	if guest == nil {
		return nil, apperrors.ErrNotFound
	}
	return guest, nil
}

func (s *GuestService) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	guests, err := s.guestRepo.ListGuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	if guests == nil {
		return []domain.Guest{}, nil
	}
	return guests, nil
}

// UpsertFromRegistration creates or updates the guest profile captured at
// check-in. Guests are matched by document id so returning guests keep
// their history; registration data always refreshes the profile fields.
func (s *GuestService) UpsertFromRegistration(ctx context.Context, req dto.CheckInRequest, userID string) (*domain.Guest, error) {
	now := time.Now()

	var guest *domain.Guest
	if req.DocumentID != "" {
		existing, err := s.guestRepo.FindGuestByDocumentID(ctx, req.DocumentID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up guest by document: %w", err)
		}
		guest = existing
	}

	isNew := guest == nil
	if isNew {
		guest = &domain.Guest{
			GuestID:    uuid.New().String(),
			DocumentID: req.DocumentID,
			Tier:       domain.TierBronze,
			TotalSpent: decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				CreatedBy: userID,
			},
		}
	}

	guest.FirstName = req.FirstName
	guest.LastName = req.LastName
	if req.BirthDate != "" {
		guest.BirthDate = req.BirthDate
	}
	if req.Nationality != "" {
		guest.Nationality = req.Nationality
	}
	if req.Address != "" {
		guest.Address = req.Address
	}
	if req.Phone != "" {
		guest.Phone = req.Phone
	}
	if req.Occupation != "" {
		guest.Occupation = req.Occupation
	}
	guest.LastUpdatedAt = now
	guest.LastUpdatedBy = userID

	if isNew {
		if err := s.guestRepo.SaveGuest(ctx, *guest); err != nil {
			return nil, fmt.Errorf("failed to save guest: %w", err)
		}
		middleware.GetLoggerFromCtx(ctx).Info("Guest registered", slog.String("guest_id", guest.GuestID))
	} else {
		if err := s.guestRepo.UpdateGuest(ctx, *guest); err != nil {
			return nil, fmt.Errorf("failed to update guest: %w", err)
		}
	}
	return guest, nil
}

// FinalizeStay increments the stay counter and lifetime spend at checkout
// and recomputes the loyalty tier. Tiers never regress: a recomputed tier
// below the stored one is discarded.
func (s *GuestService) FinalizeStay(ctx context.Context, guestID string, spent decimal.Decimal, checkoutDate string, userID string) (*domain.Guest, error) {
	guest, err := s.GetGuestByID(ctx, guestID)
	if err != nil {
		return nil, err
	}

	guest.Stays++
	guest.TotalSpent = guest.TotalSpent.Add(spent)
	guest.LastCheckout = checkoutDate

	computed := tierFor(guest.Stays, guest.TotalSpent)
	if computed.AtLeast(guest.Tier) {
		guest.Tier = computed
	}

	guest.LastUpdatedAt = time.Now()
	guest.LastUpdatedBy = userID

	if err := s.guestRepo.UpdateGuest(ctx, *guest); err != nil {
		return nil, fmt.Errorf("failed to finalize guest %s: %w", guestID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Guest stay finalized",
		slog.String("guest_id", guestID),
		slog.Int("stays", guest.Stays),
		slog.String("tier", string(guest.Tier)),
	)
	return guest, nil
}

func tierFor(stays int, spent decimal.Decimal) domain.GuestTier {
	switch {
	case stays >= platinumStays || spent.GreaterThanOrEqual(platinumSpend):
		return domain.TierPlatinum
	case stays >= goldStays || spent.GreaterThanOrEqual(goldSpend):
		return domain.TierGold
	case stays >= silverStays || spent.GreaterThanOrEqual(silverSpend):
		return domain.TierSilver
	default:
		return domain.TierBronze
	}
}
