package memory

import (
	"context"
	"sync"

	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

// defaultPaymentMethods is the hotel's fixed catalog. The regime is part of
// the configuration, never of the transaction.
var defaultPaymentMethods = []domain.PaymentMethod{
	{MethodID: "punto_banesco", Name: "Punto de Venta Banesco", Regime: domain.RegimeLocal, Active: true},
	{MethodID: "punto_provincial", Name: "Punto de Venta Provincial", Regime: domain.RegimeLocal, Active: true},
	{MethodID: "tdc", Name: "Tarjeta de Crédito", Regime: domain.RegimeLocal, Active: true},
	{MethodID: "ves_cash", Name: "Efectivo Bolívares", Regime: domain.RegimeLocal, Active: true},
	{MethodID: "transfer", Name: "Transferencia Bancaria", Regime: domain.RegimeLocal, Active: true},
	{MethodID: "credit", Name: "Crédito Empresarial", Regime: domain.RegimeLocal, AllowsDebt: true, Active: true},
	{MethodID: "zelle", Name: "Zelle", Regime: domain.RegimeForeign, Active: true},
	{MethodID: "binance", Name: "Binance USDT", Regime: domain.RegimeForeign, Active: true},
	{MethodID: "paypal", Name: "PayPal", Regime: domain.RegimeForeign, Active: true},
	{MethodID: "usd_cash", Name: "Efectivo Dólares", Regime: domain.RegimeForeign, Active: true},
	{MethodID: "usd_e", Name: "Divisa Electrónica", Regime: domain.RegimeForeign, Active: true},
}

// MemPaymentMethodRepository serves the fixed payment-method catalog.
type MemPaymentMethodRepository struct {
	mu    sync.RWMutex
	items map[string]domain.PaymentMethod
	order []string
}

// NewMemPaymentMethodRepository creates the catalog store, seeded with the
// hotel's default methods.
func NewMemPaymentMethodRepository() portsrepo.PaymentMethodRepositoryFacade {
	items := make(map[string]domain.PaymentMethod, len(defaultPaymentMethods))
	order := make([]string, 0, len(defaultPaymentMethods))
	for _, m := range defaultPaymentMethods {
		items[m.MethodID] = m
		order = append(order, m.MethodID)
	}
	return &MemPaymentMethodRepository{items: items, order: order}
}

func (r *MemPaymentMethodRepository) FindMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	method, ok := r.items[methodID]
	if !ok {
		return nil, nil
	}
	return &method, nil
}

func (r *MemPaymentMethodRepository) ListMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PaymentMethod, 0, len(r.order))
	for _, id := range r.order {
		if m := r.items[id]; m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}
