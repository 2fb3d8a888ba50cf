package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
	"github.com/nuevatoledo/hotel_pms_app/internal/middleware"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// ExchangeRateService manages the single process-wide VES-per-USD display
// rate. Folio math never depends on it.
type ExchangeRateService struct {
	rateRepo   portsrepo.ExchangeRateRepositoryFacade
	httpClient *http.Client
	apiURL     string
}

func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, apiURL string, timeout time.Duration) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:   rateRepo,
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     apiURL,
	}
}

func (s *ExchangeRateService) GetRate(ctx context.Context) (*domain.ExchangeRateSetting, error) {
	setting, err := s.rateRepo.GetRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return setting, nil
}

func (s *ExchangeRateService) OverrideRate(ctx context.Context, rate decimal.Decimal) (*domain.ExchangeRateSetting, error) {
	if !rate.IsPositive() {
		return nil, ErrInvalidAmount
	}
	setting := domain.ExchangeRateSetting{
		Rate:      rate,
		Source:    "manual",
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.rateRepo.SetRate(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to store exchange rate: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Exchange rate overridden", slog.String("rate", rate.String()))
	return &setting, nil
}

// Sync fetches the official rate from the configured provider. On any
// failure the cached rate is kept and the error returned, so a provider
// outage never blanks the rate.
func (s *ExchangeRateService) Sync(ctx context.Context) (*domain.ExchangeRateSetting, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Warn("Rate provider unreachable, keeping cached rate", slog.String("error", err.Error()))
		return nil, fmt.Errorf("rate provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Rate provider returned non-200, keeping cached rate", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		Promedio decimal.Decimal `json:"promedio"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rate payload: %w", err)
	}
	if !payload.Promedio.IsPositive() {
		return nil, fmt.Errorf("rate provider returned non-positive rate %s", payload.Promedio)
	}

	setting := domain.ExchangeRateSetting{
		Rate:      payload.Promedio,
		Source:    "sync",
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.rateRepo.SetRate(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to store synced exchange rate: %w", err)
	}
	logger.Info("Exchange rate synced", slog.String("rate", setting.Rate.String()))
	return &setting, nil
}
