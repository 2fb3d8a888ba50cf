package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest manually overrides the process-wide rate.
type SetExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse returns the current rate and its provenance.
type ExchangeRateResponse struct {
	Rate      decimal.Decimal `json:"rate"`
	Source    string          `json:"source"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
