package memory

import (
	"fmt"
	"time"

	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
	"github.com/nuevatoledo/hotel_pms_app/internal/platform/config"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// NewRepositoryProvider wires every in-memory repository with its seed
// data. State lives for the process lifetime only.
func NewRepositoryProvider(cfg *config.Config) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ReservationRepo:   NewMemReservationRepository(),
		RoomRepo:          NewMemRoomRepository(seedRooms()),
		GuestRepo:         NewMemGuestRepository(),
		HousekeepingRepo:  NewMemHousekeepingRepository(),
		PaymentMethodRepo: NewMemPaymentMethodRepository(),
		SequenceRepo:      NewMemSequenceRepository(cfg.InvoiceSeqStart, cfg.ControlSeqStart),
		ExchangeRateRepo:  NewMemExchangeRateRepository(cfg.DefaultExchangeRate),
		UserRepo:          NewMemUserRepository(),
	}
}

// seedRooms builds the hotel's physical inventory: three guest floors of
// simple and double rooms plus a suite floor.
func seedRooms() []domain.Room {
	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     "system",
		LastUpdatedAt: now,
		LastUpdatedBy: "system",
	}

	var rooms []domain.Room
	for floor := 1; floor <= 3; floor++ {
		for n := 1; n <= 8; n++ {
			roomType := "Simple"
			if n > 4 {
				roomType = "Doble"
			}
			rooms = append(rooms, domain.Room{
				RoomID:      fmt.Sprintf("%d%02d", floor, n),
				Floor:       floor,
				Type:        roomType,
				Status:      domain.RoomAvailable,
				AuditFields: audit,
			})
		}
	}
	for n := 1; n <= 4; n++ {
		rooms = append(rooms, domain.Room{
			RoomID:      fmt.Sprintf("4%02d", n),
			Floor:       4,
			Type:        "Suite",
			Status:      domain.RoomAvailable,
			AuditFields: audit,
		})
	}
	return rooms
}
