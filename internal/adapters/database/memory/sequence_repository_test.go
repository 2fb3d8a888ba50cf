package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuevatoledo/hotel_pms_app/internal/adapters/database/memory"
)

func TestNextDocumentNumbers_StartsAtConfiguredValues(t *testing.T) {
	repo := memory.NewMemSequenceRepository(1001, 1)

	invoice, control, err := repo.NextDocumentNumbers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1001), invoice)
	assert.Equal(t, int64(1), control)

	invoice, control, err = repo.NextDocumentNumbers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1002), invoice)
	assert.Equal(t, int64(2), control)
}

func TestPeekDocumentNumbers_DoesNotAdvance(t *testing.T) {
	repo := memory.NewMemSequenceRepository(1001, 1)

	invoice, control, err := repo.PeekDocumentNumbers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1001), invoice)
	assert.Equal(t, int64(1), control)

	invoice, _, err = repo.NextDocumentNumbers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1001), invoice)
}

func TestNextDocumentNumbers_ConcurrentCallersGetGaplessUniquePairs(t *testing.T) {
	const callers = 100
	repo := memory.NewMemSequenceRepository(1001, 1)

	type pair struct{ invoice, control int64 }
	results := make(chan pair, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			invoice, control, err := repo.NextDocumentNumbers(context.Background())
			assert.NoError(t, err)
			results <- pair{invoice, control}
		}()
	}
	wg.Wait()
	close(results)

	seenInvoices := map[int64]bool{}
	for p := range results {
		assert.False(t, seenInvoices[p.invoice], "invoice %d issued twice", p.invoice)
		seenInvoices[p.invoice] = true
		// The two counters always move in lockstep.
		assert.Equal(t, p.invoice-1000, p.control)
	}

	// Gapless: exactly the numbers 1001..1100 were issued.
	for n := int64(1001); n <= 1001+callers-1; n++ {
		assert.True(t, seenInvoices[n], "invoice %d was skipped", n)
	}
}
