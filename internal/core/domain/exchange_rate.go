package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateSetting is the single process-wide VES-per-USD rate. It is
// used for display conversion only and never enters base-currency tax math.
type ExchangeRateSetting struct {
	Rate      decimal.Decimal `json:"rate"`
	Source    string          `json:"source"` // "manual" or "sync"
	UpdatedAt time.Time       `json:"updatedAt"`
}
