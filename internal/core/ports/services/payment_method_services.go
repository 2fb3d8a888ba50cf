package services

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// PaymentMethodSvcFacade exposes the fixed payment-method configuration.
type PaymentMethodSvcFacade interface {
	// GetMethodByID retrieves a payment method.
	GetMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error)

	// ListMethods retrieves all active payment methods.
	ListMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
