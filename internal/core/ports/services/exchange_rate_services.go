package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// ExchangeRateSvcFacade manages the process-wide display exchange rate.
type ExchangeRateSvcFacade interface {
	// GetRate returns the current rate setting.
	GetRate(ctx context.Context) (*domain.ExchangeRateSetting, error)

	// OverrideRate manually replaces the rate.
	OverrideRate(ctx context.Context, rate decimal.Decimal) (*domain.ExchangeRateSetting, error)

	// Sync fetches the official rate from the configured provider; on
	// failure the cached rate is kept and the error returned.
	Sync(ctx context.Context) (*domain.ExchangeRateSetting, error)
}
