package domain

import "github.com/shopspring/decimal"

// Settlement is the derived financial summary of a folio. It is a pure
// function of the folio's entries; computing it twice without a mutation in
// between yields identical values.
type Settlement struct {
	BaseDue       decimal.Decimal `json:"baseDue"`       // net charges, tax-exclusive
	AccruedVAT    decimal.Decimal `json:"accruedVAT"`    // VAT portions of local-regime payments
	AccruedFXTax  decimal.Decimal `json:"accruedFXTax"`  // FX-tax portions of foreign-regime payments
	BasePaid      decimal.Decimal `json:"basePaid"`      // base portions of all payments
	TotalPaid     decimal.Decimal `json:"totalPaid"`     // tax-inclusive payment total
	TotalWithheld decimal.Decimal `json:"totalWithheld"` // sum of withholding vouchers

	GrossTotal decimal.Decimal `json:"grossTotal"` // BaseDue + AccruedVAT + AccruedFXTax

	// NetBalance is the base still uncovered while the stay is active;
	// clamped at zero. FinalBalance is the checkout-relevant figure where
	// all accrued tax must be accounted for, and may go negative for
	// deferred-debt overpayments.
	NetBalance   decimal.Decimal `json:"netBalance"`
	FinalBalance decimal.Decimal `json:"finalBalance"`

	// Tax-inclusive totals per regime, inputs to the mixed-regime top-up.
	LocalPaid   decimal.Decimal `json:"localPaid"`
	ForeignPaid decimal.Decimal `json:"foreignPaid"`
}

// Settled reports whether the final balance is within the given tolerance.
func (s Settlement) Settled(tolerance decimal.Decimal) bool {
	return s.FinalBalance.LessThanOrEqual(tolerance)
}
