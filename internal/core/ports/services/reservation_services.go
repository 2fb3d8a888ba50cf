package services

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"
)

// ReservationReaderSvc defines read operations on reservations.
type ReservationReaderSvc interface {
	// GetReservationByID retrieves a reservation with its folio.
	GetReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// ListReservations retrieves reservations, optionally filtered by status.
	ListReservations(ctx context.Context, status *domain.ReservationStatus) ([]domain.Reservation, error)

	// ComputeSettlement derives the financial summary of a reservation's
	// folio. Strictly read-only: it never assigns document numbers.
	ComputeSettlement(ctx context.Context, reservationID string) (*domain.Settlement, error)

	// ForeignTopUpQuote computes the foreign-regime payment amount that
	// exactly completes the base due under the mixed-regime rule.
	ForeignTopUpQuote(ctx context.Context, reservationID string) (*dto.ForeignTopUpQuote, error)

	// Invoice assembles the printable fiscal document fields. The
	// reservation must already be numbered.
	Invoice(ctx context.Context, reservationID string) (*dto.InvoiceResponse, error)
}

// FolioWriterSvc defines the ledger mutations exposed to collaborators.
type FolioWriterSvc interface {
	// AppendCharge posts a positive charge to the folio.
	AppendCharge(ctx context.Context, reservationID string, req dto.AppendChargeRequest, userID string) (*domain.FolioEntry, error)

	// RecordPayment records a confirmed payment and returns the resulting
	// settlement.
	RecordPayment(ctx context.Context, reservationID string, req dto.RecordPaymentRequest, userID string) (*domain.Settlement, error)

	// RecordWithholding records a VAT withholding voucher.
	RecordWithholding(ctx context.Context, reservationID string, req dto.RecordWithholdingRequest, userID string) (*domain.Settlement, error)

	// MoveEntry reassigns a folio entry to the target bucket.
	MoveEntry(ctx context.Context, reservationID string, entryID string, target domain.FolioBucket, userID string) error
}

// LifecycleSvc defines reservation/room state transitions.
type LifecycleSvc interface {
	// CreateReservation opens a reservation and seeds the initial-stay charge.
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error)

	// PreCheckIn applies the optional guest self-service registration.
	PreCheckIn(ctx context.Context, reservationID string, req dto.PreCheckInRequest) (*domain.Reservation, error)

	// CheckIn registers the guest and moves the reservation in-house.
	CheckIn(ctx context.Context, reservationID string, req dto.CheckInRequest, userID string) (*domain.Reservation, error)

	// Checkout settles and completes the stay, releasing the room to cleaning.
	Checkout(ctx context.Context, reservationID string, userID string) (*domain.Reservation, error)

	// ExtendStay pushes the checkout date and posts the extra-night charge.
	ExtendStay(ctx context.Context, reservationID string, req dto.ExtendStayRequest, userID string) (*domain.Reservation, error)

	// Cancel cancels a confirmed reservation.
	Cancel(ctx context.Context, reservationID string, userID string) (*domain.Reservation, error)

	// UpdateBilling sets the fiscal billing profile for the stay.
	UpdateBilling(ctx context.Context, reservationID string, req dto.UpdateBillingRequest, userID string) (*domain.Reservation, error)
}

// ReservationSvcFacade combines all reservation-related service interfaces.
type ReservationSvcFacade interface {
	ReservationReaderSvc
	FolioWriterSvc
	LifecycleSvc
}
