package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// MemExchangeRateRepository holds the single process-wide rate setting.
type MemExchangeRateRepository struct {
	mu      sync.RWMutex
	setting domain.ExchangeRateSetting
}

// NewMemExchangeRateRepository creates the rate store with the configured
// default so a rate is always available before the first sync.
func NewMemExchangeRateRepository(defaultRate decimal.Decimal) portsrepo.ExchangeRateRepositoryFacade {
	return &MemExchangeRateRepository{
		setting: domain.ExchangeRateSetting{
			Rate:      defaultRate,
			Source:    "manual",
			UpdatedAt: time.Now().UTC(),
		},
	}
}

func (r *MemExchangeRateRepository) GetRate(ctx context.Context) (*domain.ExchangeRateSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	setting := r.setting
	return &setting, nil
}

func (r *MemExchangeRateRepository) SetRate(ctx context.Context, setting domain.ExchangeRateSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setting = setting
	return nil
}
