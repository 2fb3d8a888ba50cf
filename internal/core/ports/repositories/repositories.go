package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ReservationRepo   ReservationRepositoryFacade
	RoomRepo          RoomRepositoryFacade
	GuestRepo         GuestRepositoryFacade
	HousekeepingRepo  HousekeepingRepositoryFacade
	PaymentMethodRepo PaymentMethodRepositoryFacade
	SequenceRepo      SequenceRepositoryFacade
	ExchangeRateRepo  ExchangeRateRepositoryFacade
	UserRepo          UserRepositoryFacade
}
