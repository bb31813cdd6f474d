package receiving

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced by the conference workflow. All of them are recoverable
// at the caller's discretion; none crash the process.
var (
	// ErrDocumentNotFound means the document id references no receipt document.
	ErrDocumentNotFound = errors.New("receipt document not found")
	// ErrInvalidStateTransition means the operation was attempted from a
	// document state that forbids it. Not retryable without an external state
	// change.
	ErrInvalidStateTransition = errors.New("invalid document state for this operation")
	// ErrInvalidQuantity means the counted quantity was not a positive
	// integer. Caller input error.
	ErrInvalidQuantity = errors.New("counted quantity must be a positive integer")
	// ErrUnknownBarcode means the barcode matched no product in the catalog.
	// The operator should re-scan or escalate.
	ErrUnknownBarcode = errors.New("barcode does not match any product")
	// ErrProductNotOnDocument means the barcode matched a real product, but
	// that product has no expected line on the target document.
	ErrProductNotOnDocument = errors.New("product is not on this document")
	// ErrCommitFailed means the atomic stock update failed. Nothing was
	// persisted, the document is still IN_PROGRESS, and finalize may be
	// retried.
	ErrCommitFailed = errors.New("stock commit failed")
)

// MissingLine identifies an expected line that was never counted.
type MissingLine struct {
	ProductID        uint   `json:"product_id"`
	ProductName      string `json:"product_name,omitempty"`
	ExpectedQuantity int    `json:"expected_quantity"`
}

// IncompleteError is returned by Finalize when at least one expected line has
// no counted quantity. It carries the missing products so the operator can
// finish counting before retrying.
type IncompleteError struct {
	Missing []MissingLine
}

func (e *IncompleteError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		if m.ProductName != "" {
			names = append(names, m.ProductName)
		} else {
			names = append(names, fmt.Sprintf("product %d", m.ProductID))
		}
	}
	return fmt.Sprintf("conference incomplete: %d expected line(s) never counted (%s)",
		len(e.Missing), strings.Join(names, ", "))
}
