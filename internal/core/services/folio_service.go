package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// folioLedger builds and rearranges folio entries. Entries are append-only:
// amounts and tax portions are fixed at creation, and the only later
// mutation allowed is moving an entry between sub-ledgers.
type folioLedger struct {
	calc *SettlementCalculator
}

func newFolioLedger(calc *SettlementCalculator) *folioLedger {
	return &folioLedger{calc: calc}
}

func (l *folioLedger) newCharge(description string, amount decimal.Decimal, bucket domain.FolioBucket) domain.FolioEntry {
	return domain.FolioEntry{
		EntryID:     uuid.New().String(),
		Description: description,
		Amount:      amount,
		Bucket:      bucket,
		RecordedAt:  time.Now().UTC(),
	}
}

// newPayment records a tax-inclusive payment. The regime split is computed
// here, once, and persisted on the entry so later settlement passes never
// re-derive it under a different rate.
func (l *folioLedger) newPayment(method domain.PaymentMethod, amount decimal.Decimal, bucket domain.FolioBucket, reference string, exchangeRate decimal.Decimal) domain.FolioEntry {
	base, vat, fxTax := l.calc.SplitPayment(method.Regime, amount)
	return domain.FolioEntry{
		EntryID:      uuid.New().String(),
		Description:  "Pago " + method.Name,
		Amount:       amount.Neg(),
		Bucket:       bucket,
		IsPayment:    true,
		MethodID:     method.MethodID,
		Regime:       method.Regime,
		Reference:    reference,
		BasePortion:  base,
		VATPortion:   vat,
		FXTaxPortion: fxTax,
		LocalAmount:  amount.Mul(exchangeRate),
		ExchangeRate: exchangeRate,
		RecordedAt:   time.Now().UTC(),
	}
}

// newWithholding records a payer-side VAT withholding voucher. The
// description carries the voucher amount as a percentage of the VAT
// accrued at recording time.
func (l *folioLedger) newWithholding(amount decimal.Decimal, accruedVAT decimal.Decimal, bucket domain.FolioBucket, reference string) domain.FolioEntry {
	pct := amount.Div(accruedVAT).Mul(decimal.NewFromInt(100)).Round(0)
	return domain.FolioEntry{
		EntryID:       uuid.New().String(),
		Description:   fmt.Sprintf("Retención IVA (%s%%)", pct),
		Amount:        amount.Neg(),
		Bucket:        bucket,
		IsWithholding: true,
		Reference:     reference,
		RecordedAt:    time.Now().UTC(),
	}
}

// moveEntry reassigns the entry identified by entryID to the target bucket.
// Entries are addressed by id, never by description, so duplicate
// descriptions cannot move the wrong line.
func (l *folioLedger) moveEntry(r *domain.Reservation, entryID string, target domain.FolioBucket) error {
	for i := range r.Folio {
		if r.Folio[i].EntryID == entryID {
			r.Folio[i].Bucket = target
			return nil
		}
	}
	return ErrEntryNotFound
}
