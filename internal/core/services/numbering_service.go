package services

import (
	"context"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
)

// numberingService assigns fiscal document numbers. Assignment is explicit
// and happens at most once per reservation: once an invoice and control
// number are stamped they never change, and the underlying sequences only
// move forward.
type numberingService struct {
	seqRepo portsrepo.SequenceRepositoryFacade
}

func newNumberingService(seqRepo portsrepo.SequenceRepositoryFacade) *numberingService {
	return &numberingService{seqRepo: seqRepo}
}

// EnsureNumbered stamps the reservation with the next invoice and control
// numbers if it does not carry them yet. Returns true when numbers were
// assigned by this call. The caller is expected to hold the reservation
// lock and to persist the reservation afterwards.
func (n *numberingService) EnsureNumbered(ctx context.Context, r *domain.Reservation) (bool, error) {
	if r.Numbered() {
		return false, nil
	}
	invoice, control, err := n.seqRepo.NextDocumentNumbers(ctx)
	if err != nil {
		return false, err
	}
	r.InvoiceNumber = &invoice
	r.ControlNumber = &control
	return true, nil
}
