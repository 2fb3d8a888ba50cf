package repositories

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// PaymentMethodRepositoryFacade provides read access to the fixed
// payment-method configuration.
type PaymentMethodRepositoryFacade interface {
	// FindMethodByID retrieves a payment method by its identifier.
	FindMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)

	// ListMethods retrieves all active payment methods.
	ListMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
