package dto

import (
	"github.com/shopspring/decimal"
)

// AppendChargeRequest posts a charge to a reservation folio.
type AppendChargeRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Bucket      string          `json:"bucket" binding:"omitempty,oneof=A B"`
}

// RecordPaymentRequest records an already-confirmed payment event. Amount
// is the tax-inclusive total in the reservation's base currency.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	MethodID  string          `json:"methodID" binding:"required"`
	Reference string          `json:"reference"`
	Bucket    string          `json:"bucket" binding:"omitempty,oneof=A B"`
}

// RecordWithholdingRequest records a payer-side VAT withholding voucher.
type RecordWithholdingRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Reference string          `json:"reference"`
}

// MoveEntryRequest reassigns a folio entry to the other bucket.
type MoveEntryRequest struct {
	TargetBucket string `json:"targetBucket" binding:"required,oneof=A B"`
}

// ForeignTopUpQuote is the foreign-regime amount that completes the base
// due when part of it was already paid under the local regime.
type ForeignTopUpQuote struct {
	Due          decimal.Decimal `json:"due"`
	FXTaxPortion decimal.Decimal `json:"fxTaxPortion"`
	BasePortion  decimal.Decimal `json:"basePortion"`
}
