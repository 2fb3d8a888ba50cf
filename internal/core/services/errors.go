package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
)

// Sentinel errors for folio and lifecycle operations. Handlers map these to
// HTTP statuses through the apperrors category they wrap.
var (
	ErrInvalidAmount         = fmt.Errorf("amount must be greater than zero: %w", apperrors.ErrValidation)
	ErrUnknownMethod         = fmt.Errorf("unknown payment method: %w", apperrors.ErrValidation)
	ErrOverpaymentBlocked    = fmt.Errorf("payment exceeds remaining base due: %w", apperrors.ErrConflict)
	ErrNoTaxAccrued          = fmt.Errorf("withholding requires accrued VAT: %w", apperrors.ErrConflict)
	ErrEntryNotFound         = fmt.Errorf("folio entry not found: %w", apperrors.ErrNotFound)
	ErrRoomUnavailable       = fmt.Errorf("no available room of the requested type: %w", apperrors.ErrConflict)
	ErrMissingIdentification = fmt.Errorf("guest identification required before check-in: %w", apperrors.ErrValidation)
	ErrAlreadyNumbered       = fmt.Errorf("fiscal documents already issued for reservation: %w", apperrors.ErrConflict)
	ErrNotCheckedIn          = fmt.Errorf("reservation is not checked in: %w", apperrors.ErrConflict)
	ErrReservationClosed     = fmt.Errorf("reservation is completed or cancelled: %w", apperrors.ErrConflict)
	ErrNotNumbered           = fmt.Errorf("fiscal documents not yet issued for reservation: %w", apperrors.ErrConflict)
)

// BalanceOutstandingError is returned by Checkout when the folio is not
// settled within tolerance. It carries the remaining amount so the caller
// can present it.
type BalanceOutstandingError struct {
	Remaining decimal.Decimal
}

func (e *BalanceOutstandingError) Error() string {
	return fmt.Sprintf("outstanding balance of %s blocks checkout", e.Remaining.StringFixed(2))
}

// Unwrap lets errors.Is map the error to the conflict category.
func (e *BalanceOutstandingError) Unwrap() error {
	return apperrors.ErrConflict
}
