package domain

// TaxRegime classifies a payment method. The regime decides the tax split
// of every payment made with the method; it is fixed configuration, never
// per-transaction.
type TaxRegime string

const (
	// RegimeLocal: domestic-currency methods, VAT-inclusive.
	RegimeLocal TaxRegime = "LOCAL"
	// RegimeForeign: foreign-currency methods, FX-tax-inclusive, VAT-exempt.
	RegimeForeign TaxRegime = "FOREIGN"
)

// PaymentMethod is a configured way of paying. AllowsDebt marks
// deferred-debt methods (corporate credit) for which overpayment is
// recorded as debt instead of being blocked.
type PaymentMethod struct {
	MethodID   string    `json:"methodID"`
	Name       string    `json:"name"`
	Regime     TaxRegime `json:"regime"`
	AllowsDebt bool      `json:"allowsDebt"`
	Active     bool      `json:"active"`
}
