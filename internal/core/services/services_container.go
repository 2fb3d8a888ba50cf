package services

import (
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
	portssvc "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/services"
	"github.com/nuevatoledo/hotel_pms_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Room service first since housekeeping and reservations depend on it.
	container.Room = NewRoomService(repos.RoomRepo)
	container.Guest = NewGuestService(repos.GuestRepo)
	container.Housekeeping = NewHousekeepingService(repos.HousekeepingRepo, container.Room)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, cfg.RateAPIURL, cfg.RateSyncTimeout)

	calc := NewSettlementCalculator(cfg.VATRate, cfg.FXTaxRate)
	container.Reservation = NewReservationService(
		repos.ReservationRepo,
		repos.PaymentMethodRepo,
		repos.ExchangeRateRepo,
		repos.SequenceRepo,
		container.Room,
		container.Guest,
		container.Housekeeping,
		calc,
		ReservationServiceConfig{
			SettlementTolerance: cfg.SettlementTolerance,
			ControlNumberPrefix: cfg.ControlNumberPrefix,
			HotelName:           cfg.HotelName,
			HotelTaxID:          cfg.HotelTaxID,
			HotelAddress:        cfg.HotelAddress,
			HotelPhone:          cfg.HotelPhone,
		},
	)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.ReservationSvcFacade   = (*ReservationService)(nil)
	_ portssvc.RoomSvcFacade          = (*RoomService)(nil)
	_ portssvc.GuestSvcFacade         = (*GuestService)(nil)
	_ portssvc.HousekeepingSvcFacade  = (*HousekeepingService)(nil)
	_ portssvc.ExchangeRateSvcFacade  = (*ExchangeRateService)(nil)
	_ portssvc.PaymentMethodSvcFacade = (*PaymentMethodService)(nil)
	_ portssvc.UserSvcFacade          = (*UserService)(nil)
	_ portssvc.TokenSvcFacade         = (*TokenService)(nil)
)
