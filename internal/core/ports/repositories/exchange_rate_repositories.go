package repositories

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// ExchangeRateRepositoryFacade stores the single process-wide exchange rate.
type ExchangeRateRepositoryFacade interface {
	// GetRate retrieves the current exchange-rate setting.
	GetRate(ctx context.Context) (*domain.ExchangeRateSetting, error)

	// SetRate replaces the current exchange-rate setting.
	SetRate(ctx context.Context, setting domain.ExchangeRateSetting) error
}
