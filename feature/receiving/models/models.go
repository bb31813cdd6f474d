package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus is the lifecycle state of a receipt document.
// The set is closed; transitions are validated by the predicates below.
type DocumentStatus string

const (
	// DocumentPending means the document was created by procurement and is
	// waiting for its goods to be conferenced.
	DocumentPending DocumentStatus = "PENDING"
	// DocumentInProgress means a conference has been started and lines are
	// being counted.
	DocumentInProgress DocumentStatus = "IN_PROGRESS"
	// DocumentCompleted means the conference finished with every line matched.
	DocumentCompleted DocumentStatus = "COMPLETED"
	// DocumentCompletedWithDivergence means the conference finished with at
	// least one divergent line.
	DocumentCompletedWithDivergence DocumentStatus = "COMPLETED_WITH_DIVERGENCE"
)

// IsTerminal reports whether the status is final. No transition ever leaves a
// terminal status.
func (s DocumentStatus) IsTerminal() bool {
	return s == DocumentCompleted || s == DocumentCompletedWithDivergence
}

// CanStartConference reports whether a conference may be started (or resumed)
// from this status.
func (s DocumentStatus) CanStartConference() bool {
	return s == DocumentPending || s == DocumentInProgress
}

// LineStatus is the match state of a conference line.
type LineStatus string

const (
	// LineMatched means the counted quantity equals the expected quantity.
	LineMatched LineStatus = "MATCHED"
	// LineDivergent means the counted quantity differs from the expected one.
	LineDivergent LineStatus = "DIVERGENT"
)

// Product is a catalog item. The catalog is owned by the upstream back-office
// application; this service reads it for barcode resolution and mutates only
// StockQuantity, and only at finalization.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Name is the display name of the product.
	Name string `gorm:"size:120;not null" json:"name"`
	// Barcode is the canonical (supplier/EAN) barcode.
	Barcode string `gorm:"size:64;uniqueIndex" json:"barcode"`
	// InternalCode is the store's own short code, used as a fallback
	// identifier when the supplier barcode was never registered.
	InternalCode string `gorm:"size:32;index" json:"internal_code"`
	// StockQuantity is the current on-hand balance.
	StockQuantity int `gorm:"not null;default:0" json:"stock_quantity"`
	// UnitCost is the last known purchase cost.
	UnitCost  decimal.Decimal `gorm:"type:decimal(12,4)" json:"unit_cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ReceiptDocument is a record of expected incoming merchandise, typically tied
// to a supplier invoice, awaiting physical verification.
type ReceiptDocument struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Reference is the external document number (e.g. the invoice number).
	Reference string `gorm:"size:64;index;not null" json:"reference"`
	// Note is a free-text annotation from procurement.
	Note string `gorm:"size:255" json:"note"`
	// Status is the document lifecycle state.
	Status    DocumentStatus `gorm:"size:32;not null;default:PENDING" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// ExpectedLines are established when the document is created and are
	// immutable once a conference starts.
	ExpectedLines []ExpectedLine `gorm:"foreignKey:DocumentID" json:"expected_lines,omitempty"`
}

// ExpectedLine is one product the supplier is supposed to deliver on a
// document, with the agreed quantity and cost.
type ExpectedLine struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	DocumentID uint `gorm:"index:idx_expected_doc_product,unique;not null" json:"document_id"`
	ProductID  uint `gorm:"index:idx_expected_doc_product,unique;not null" json:"product_id"`
	// ExpectedQuantity is the quantity on the supplier document.
	ExpectedQuantity int `gorm:"not null" json:"expected_quantity"`
	// UnitCost is the agreed purchase cost for this delivery.
	UnitCost decimal.Decimal `gorm:"type:decimal(12,4)" json:"unit_cost"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// ConferenceLine records the cumulative physical count for one product during
// the conference of a document. There is exactly one line per
// (document, product) pair; repeated scans of the same product accumulate into
// CountedQuantity.
type ConferenceLine struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	DocumentID uint `gorm:"index:idx_conference_doc_product,unique;not null" json:"document_id"`
	ProductID  uint `gorm:"index:idx_conference_doc_product,unique;not null" json:"product_id"`
	// ExpectedQuantity is copied from the expected line at first scan.
	ExpectedQuantity int `gorm:"not null" json:"expected_quantity"`
	// CountedQuantity accumulates across submissions; it never decreases.
	CountedQuantity int `gorm:"not null" json:"counted_quantity"`
	// BarcodeRead is the literal barcode string of the most recent scan,
	// kept for audit.
	BarcodeRead string `gorm:"size:64" json:"barcode_read"`
	// ArrivalDate is the goods arrival date captured from the operator.
	ArrivalDate *time.Time `json:"arrival_date,omitempty"`
	// ExpiryDate is the product expiry date captured from the operator.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	// Status is MATCHED when CountedQuantity equals ExpectedQuantity,
	// DIVERGENT otherwise. Recomputed on every submission.
	Status    LineStatus `gorm:"size:16;not null" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Recompute updates the line status from its quantities.
func (l *ConferenceLine) Recompute() {
	if l.CountedQuantity == l.ExpectedQuantity {
		l.Status = LineMatched
	} else {
		l.Status = LineDivergent
	}
}
