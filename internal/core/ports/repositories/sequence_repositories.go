package repositories

import "context"

// SequenceRepositoryFacade issues monotonically increasing fiscal document
// numbers. NextDocumentNumbers must be atomic across concurrent callers:
// no two calls may ever observe the same pair, and no number is ever
// reissued for the lifetime of the process.
type SequenceRepositoryFacade interface {
	// NextDocumentNumbers atomically reserves and returns the next invoice
	// number and control number.
	NextDocumentNumbers(ctx context.Context) (invoiceNumber int64, controlNumber int64, err error)

	// PeekDocumentNumbers returns the numbers the next call would issue,
	// without reserving them. Read-only, for reporting.
	PeekDocumentNumbers(ctx context.Context) (invoiceNumber int64, controlNumber int64, err error)
}
