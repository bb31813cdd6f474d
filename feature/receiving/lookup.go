package receiving

import (
	"context"

	"receiving-manager/feature/receiving/models"
)

// Resolution is the result of resolving a scanned barcode against a document:
// the matched product and its expected line on that document.
type Resolution struct {
	Product  models.Product      `json:"product"`
	Expected models.ExpectedLine `json:"expected_line"`
}

// Lookup resolves scanned barcodes to expected lines. It is a pure read path
// with no side effects; calling it repeatedly is safe.
type Lookup struct {
	catalog   Catalog
	documents DocumentStore
}

// NewLookup creates a lookup index over the catalog and document stores.
func NewLookup(catalog Catalog, documents DocumentStore) *Lookup {
	return &Lookup{catalog: catalog, documents: documents}
}

// Resolve maps (barcode, documentID) to the product and its expected line.
//
// The document must be IN_PROGRESS. The barcode is matched against the
// product's canonical barcode first and its internal code as a fallback.
// Two distinct failures matter to the operator: ErrUnknownBarcode (the scan
// matched nothing in the catalog) and ErrProductNotOnDocument (a real product
// that is not part of this receipt).
func (l *Lookup) Resolve(ctx context.Context, barcode string, documentID uint) (*Resolution, error) {
	doc, err := l.documents.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != models.DocumentInProgress {
		return nil, ErrInvalidStateTransition
	}

	product, err := l.catalog.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	expected, err := l.documents.ListExpectedLines(ctx, documentID)
	if err != nil {
		return nil, err
	}

	for _, line := range expected {
		if line.ProductID == product.ID {
			return &Resolution{Product: *product, Expected: line}, nil
		}
	}

	return nil, ErrProductNotOnDocument
}
