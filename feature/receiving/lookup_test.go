package receiving

import (
	"context"
	"testing"

	"receiving-manager/feature/receiving/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLookup(t *testing.T) (*Lookup, *fakeBackoffice) {
	t.Helper()

	backoffice := newFakeBackoffice()
	backoffice.products = []*models.Product{
		{ID: 1, Name: "Rice 1kg", Barcode: "789100001", InternalCode: "R1"},
		{ID: 2, Name: "Beans 500g", Barcode: "789100002", InternalCode: "B5"},
	}
	backoffice.docs[7] = &models.ReceiptDocument{ID: 7, Reference: "NF-7", Status: models.DocumentInProgress}
	backoffice.expected[7] = []models.ExpectedLine{
		{ID: 1, DocumentID: 7, ProductID: 1, ExpectedQuantity: 12, Product: backoffice.products[0]},
	}

	return NewLookup(backoffice, backoffice), backoffice
}

func TestResolve_CanonicalBarcode(t *testing.T) {
	lookup, _ := setupLookup(t)

	res, err := lookup.Resolve(context.Background(), "789100001", 7)
	require.NoError(t, err)
	assert.Equal(t, uint(1), res.Product.ID)
	assert.Equal(t, 12, res.Expected.ExpectedQuantity)
}

func TestResolve_InternalCodeFallback(t *testing.T) {
	lookup, _ := setupLookup(t)

	res, err := lookup.Resolve(context.Background(), "R1", 7)
	require.NoError(t, err)
	assert.Equal(t, uint(1), res.Product.ID)
}

func TestResolve_DistinguishesFailureModes(t *testing.T) {
	lookup, _ := setupLookup(t)

	// No product matches the scan at all
	_, err := lookup.Resolve(context.Background(), "000000000", 7)
	assert.ErrorIs(t, err, ErrUnknownBarcode)

	// Product 2 exists but has no expected line on document 7
	_, err = lookup.Resolve(context.Background(), "789100002", 7)
	assert.ErrorIs(t, err, ErrProductNotOnDocument)
	assert.NotErrorIs(t, err, ErrUnknownBarcode)
}

func TestResolve_RequiresInProgressDocument(t *testing.T) {
	lookup, backoffice := setupLookup(t)

	for _, status := range []models.DocumentStatus{
		models.DocumentPending,
		models.DocumentCompleted,
		models.DocumentCompletedWithDivergence,
	} {
		backoffice.docs[7].Status = status
		_, err := lookup.Resolve(context.Background(), "789100001", 7)
		assert.ErrorIs(t, err, ErrInvalidStateTransition, "status %s", status)
	}
}

func TestResolve_UnknownDocument(t *testing.T) {
	lookup, _ := setupLookup(t)

	_, err := lookup.Resolve(context.Background(), "789100001", 99)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestResolve_Idempotent(t *testing.T) {
	lookup, backoffice := setupLookup(t)

	for i := 0; i < 3; i++ {
		_, err := lookup.Resolve(context.Background(), "789100001", 7)
		require.NoError(t, err)
	}
	// Pure read: no conference lines were created
	assert.Empty(t, backoffice.lines[7])
}
