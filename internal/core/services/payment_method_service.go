package services

import (
	"context"
	"fmt"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// PaymentMethodService exposes the fixed payment-method configuration.
type PaymentMethodService struct {
	methodRepo portsrepo.PaymentMethodRepositoryFacade
}

func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodRepositoryFacade) *PaymentMethodService {
	return &PaymentMethodService{methodRepo: methodRepo}
}

func (s *PaymentMethodService) GetMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	method, err := s.methodRepo.FindMethodByID(ctx, methodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment method %s: %w", methodID, err)
	}
	if method == nil {
		return nil, apperrors.ErrNotFound
	}
	return method, nil
}

func (s *PaymentMethodService) ListMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.methodRepo.ListMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	if methods == nil {
		return []domain.PaymentMethod{}, nil
	}
	return methods, nil
}
