package services

import (
	"github.com/shopspring/decimal"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// SettlementCalculator derives financial summaries from folio entries and
// holds the fixed tax regime rates. It is the single place the regime
// classification and base/tax split formulas live: payment previews and
// final settlement both go through it.
//
// All arithmetic is decimal; the calculator never touches the exchange
// rate, which is display-only.
type SettlementCalculator struct {
	vatRate   decimal.Decimal // r_v, e.g. 0.16
	fxTaxRate decimal.Decimal // r_f, e.g. 0.03
}

// NewSettlementCalculator creates a calculator for the given regime rates.
func NewSettlementCalculator(vatRate, fxTaxRate decimal.Decimal) *SettlementCalculator {
	return &SettlementCalculator{
		vatRate:   vatRate,
		fxTaxRate: fxTaxRate,
	}
}

var one = decimal.NewFromInt(1)

// SplitPayment computes the tax split of a tax-inclusive payment amount
// under the method's regime. The split is fixed at the moment the payment
// is appended to the folio and only aggregated after that.
//
// Local regime: base = P/(1+r_v), VAT = P - base, no FX tax.
// Foreign regime: base = P/(1+r_f), FX tax = P - base, VAT-exempt.
func (c *SettlementCalculator) SplitPayment(regime domain.TaxRegime, amount decimal.Decimal) (base, vat, fxTax decimal.Decimal) {
	switch regime {
	case domain.RegimeForeign:
		base = amount.Div(one.Add(c.fxTaxRate))
		fxTax = amount.Sub(base)
		vat = decimal.Zero
	default:
		base = amount.Div(one.Add(c.vatRate))
		vat = amount.Sub(base)
		fxTax = decimal.Zero
	}
	return base, vat, fxTax
}

// Compute derives the settlement for a folio. It is a pure function of the
// entries: calling it twice without a mutation in between yields identical
// values, and it has no side effects (document numbering is a separate,
// explicit operation).
func (c *SettlementCalculator) Compute(entries []domain.FolioEntry) domain.Settlement {
	s := domain.Settlement{
		BaseDue:       decimal.Zero,
		AccruedVAT:    decimal.Zero,
		AccruedFXTax:  decimal.Zero,
		BasePaid:      decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalWithheld: decimal.Zero,
		LocalPaid:     decimal.Zero,
		ForeignPaid:   decimal.Zero,
	}

	for _, e := range entries {
		switch {
		case e.IsWithholding:
			s.TotalWithheld = s.TotalWithheld.Add(e.Amount.Abs())
		case e.IsPayment:
			amount := e.Amount.Abs()
			s.TotalPaid = s.TotalPaid.Add(amount)
			s.BasePaid = s.BasePaid.Add(e.BasePortion)
			s.AccruedVAT = s.AccruedVAT.Add(e.VATPortion)
			s.AccruedFXTax = s.AccruedFXTax.Add(e.FXTaxPortion)
			if e.Regime == domain.RegimeForeign {
				s.ForeignPaid = s.ForeignPaid.Add(amount)
			} else {
				s.LocalPaid = s.LocalPaid.Add(amount)
			}
		case e.IsCharge():
			s.BaseDue = s.BaseDue.Add(e.Amount)
		}
	}

	s.GrossTotal = s.BaseDue.Add(s.AccruedVAT).Add(s.AccruedFXTax)

	s.NetBalance = s.BaseDue.Sub(s.BasePaid)
	if s.NetBalance.IsNegative() {
		s.NetBalance = decimal.Zero
	}
	s.FinalBalance = s.GrossTotal.Sub(s.TotalPaid).Sub(s.TotalWithheld)

	return s
}

// MaxPayment returns the largest tax-inclusive amount the regime accepts
// against the given remaining base. The foreign ceiling mirrors the
// top-up formula so a quoted amount is always payable.
func (c *SettlementCalculator) MaxPayment(regime domain.TaxRegime, remainingBase decimal.Decimal) decimal.Decimal {
	if remainingBase.IsNegative() {
		return decimal.Zero
	}
	if regime == domain.RegimeForeign {
		return remainingBase.Div(one.Sub(c.fxTaxRate))
	}
	return remainingBase.Mul(one.Add(c.vatRate))
}

// ForeignTopUpDue computes the foreign-regime payment amount that exactly
// completes the base due when part of it was already covered under the
// local regime. The two regimes imply different multipliers on the same
// underlying base, so the remainder cannot simply be "balance times rate".
//
// With S the base due, Pb the tax-inclusive local payments and Pd the
// tax-inclusive foreign payments:
//
//	candidate = (S*(1+r_v) - Pb) / (1 + r_v - r_f)
//
// When the candidate exceeds the true remaining base S - Pb/(1+r_v), FX
// tax would be charged on more than the true base (the local regime's
// higher rate already over-collected relative to base), so the candidate
// is recomputed assuming no further local-regime base remains:
//
//	candidate = (S - Pb/(1+r_v)) / (1 - r_f)
//
// The amount still due is max(0, candidate - Pd). Applying it never
// splits a base unit across both regimes and never leaves base uncovered.
func (c *SettlementCalculator) ForeignTopUpDue(s domain.Settlement) decimal.Decimal {
	onePlusV := one.Add(c.vatRate)

	remainingBase := s.BaseDue.Sub(s.LocalPaid.Div(onePlusV))

	candidate := s.BaseDue.Mul(onePlusV).Sub(s.LocalPaid).
		Div(onePlusV.Sub(c.fxTaxRate))
	if candidate.GreaterThan(remainingBase) {
		candidate = remainingBase.Div(one.Sub(c.fxTaxRate))
	}

	due := candidate.Sub(s.ForeignPaid)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}
