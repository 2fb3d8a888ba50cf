package memory

import (
	"context"
	"sync"

	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
)

// MemSequenceRepository issues fiscal document numbers. Both counters
// advance together under one mutex, so no pair is ever skipped or issued
// twice regardless of concurrent callers.
type MemSequenceRepository struct {
	mu          sync.Mutex
	nextInvoice int64
	nextControl int64
}

// NewMemSequenceRepository creates the counters at their configured starts.
func NewMemSequenceRepository(invoiceStart, controlStart int64) portsrepo.SequenceRepositoryFacade {
	return &MemSequenceRepository{
		nextInvoice: invoiceStart,
		nextControl: controlStart,
	}
}

func (r *MemSequenceRepository) NextDocumentNumbers(ctx context.Context) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice := r.nextInvoice
	control := r.nextControl
	r.nextInvoice++
	r.nextControl++
	return invoice, control, nil
}

func (r *MemSequenceRepository) PeekDocumentNumbers(ctx context.Context) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextInvoice, r.nextControl, nil
}
