package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioBucket identifies one of the two parallel sub-ledgers of a stay.
// Bucket A is the primary folio; bucket B holds deferred/secondary billing.
type FolioBucket string

const (
	BucketA FolioBucket = "A"
	BucketB FolioBucket = "B"
)

// Valid reports whether b is one of the two known buckets.
func (b FolioBucket) Valid() bool {
	return b == BucketA || b == BucketB
}

// FolioEntry is a single line on a reservation's folio. Charges carry a
// positive amount; payments and withholdings a negative one. Entries are
// append-only: after creation only the bucket tag may change.
type FolioEntry struct {
	EntryID     string          `json:"entryID"` // stable identity; moves key on this, never on description
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // signed, reservation base currency
	Bucket      FolioBucket     `json:"bucket"`

	IsPayment     bool `json:"isPayment"`
	IsWithholding bool `json:"isWithholding"`

	// Payment-only fields. The regime and tax split are fixed when the
	// payment is appended and are never recomputed at settlement time.
	MethodID     string          `json:"methodID,omitempty"`
	Regime       TaxRegime       `json:"regime,omitempty"`
	Reference    string          `json:"reference,omitempty"`
	BasePortion  decimal.Decimal `json:"basePortion"`
	VATPortion   decimal.Decimal `json:"vatPortion"`
	FXTaxPortion decimal.Decimal `json:"fxTaxPortion"`

	// Local-currency snapshot for display only.
	LocalAmount  decimal.Decimal `json:"localAmount,omitempty"`
	ExchangeRate decimal.Decimal `json:"exchangeRate,omitempty"`

	RecordedAt time.Time `json:"recordedAt"`
}

// IsCharge reports whether the entry is a positive, non-payment,
// non-withholding line, i.e. it contributes to the base due.
func (e FolioEntry) IsCharge() bool {
	return !e.IsPayment && !e.IsWithholding && e.Amount.IsPositive()
}
