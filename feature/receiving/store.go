package receiving

import (
	"context"
	"errors"
	"fmt"

	"receiving-manager/feature/receiving/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentStore gives the engine access to receipt documents.
type DocumentStore interface {
	// GetDocument loads a document by id without its expected lines.
	GetDocument(ctx context.Context, id uint) (*models.ReceiptDocument, error)
	// ListExpectedLines loads the expected lines of a document, including
	// their products.
	ListExpectedLines(ctx context.Context, documentID uint) ([]models.ExpectedLine, error)
	// SetStatus updates the document status.
	SetStatus(ctx context.Context, id uint, status models.DocumentStatus) error
	// ListDocuments returns documents with the given status, newest first.
	ListDocuments(ctx context.Context, status models.DocumentStatus) ([]models.ReceiptDocument, error)
}

// ConferenceStore persists the lines produced while counting.
type ConferenceStore interface {
	// GetLine returns the line for (document, product), or nil when the
	// product has not been counted yet.
	GetLine(ctx context.Context, documentID, productID uint) (*models.ConferenceLine, error)
	// SaveLine inserts or updates a line. The (document, product) pair is
	// unique.
	SaveLine(ctx context.Context, line *models.ConferenceLine) error
	// ListLines returns all lines counted so far for a document.
	ListLines(ctx context.Context, documentID uint) ([]models.ConferenceLine, error)
}

// Catalog resolves barcodes against the product catalog.
type Catalog interface {
	// FindByBarcode returns the product whose canonical barcode matches, or,
	// failing that, whose internal code matches. Returns ErrUnknownBarcode
	// when neither does.
	FindByBarcode(ctx context.Context, barcode string) (*models.Product, error)
}

// InventoryStore exposes per-product stock balances. The atomic multi-product
// mutation used at finalization lives in the Committer, not here.
type InventoryStore interface {
	// GetStock returns the current stock balance for a product.
	GetStock(ctx context.Context, productID uint) (int, error)
	// AddStock adjusts a single product's balance by delta.
	AddStock(ctx context.Context, productID uint, delta int) error
}

// Store is the GORM-backed implementation of all store interfaces.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of the back-office database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetDocument loads a document by id.
func (s *Store) GetDocument(ctx context.Context, id uint) (*models.ReceiptDocument, error) {
	var doc models.ReceiptDocument
	err := s.db.WithContext(ctx).First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListExpectedLines loads the expected lines of a document with products.
func (s *Store) ListExpectedLines(ctx context.Context, documentID uint) ([]models.ExpectedLine, error) {
	var lines []models.ExpectedLine
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("document_id = ?", documentID).
		Order("id").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// SetStatus updates the document status.
func (s *Store) SetStatus(ctx context.Context, id uint, status models.DocumentStatus) error {
	result := s.db.WithContext(ctx).
		Model(&models.ReceiptDocument{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// ListDocuments returns documents with the given status, newest first.
func (s *Store) ListDocuments(ctx context.Context, status models.DocumentStatus) ([]models.ReceiptDocument, error) {
	var docs []models.ReceiptDocument
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetLine returns the conference line for (document, product), or nil when
// the product has not been counted yet.
func (s *Store) GetLine(ctx context.Context, documentID, productID uint) (*models.ConferenceLine, error) {
	var line models.ConferenceLine
	err := s.db.WithContext(ctx).
		Where("document_id = ? AND product_id = ?", documentID, productID).
		First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// SaveLine upserts a conference line on its (document, product) unique pair.
func (s *Store) SaveLine(ctx context.Context, line *models.ConferenceLine) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "document_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"counted_quantity", "barcode_read", "arrival_date", "expiry_date", "status", "updated_at",
			}),
		}).
		Create(line).Error
}

// ListLines returns all conference lines for a document.
func (s *Store) ListLines(ctx context.Context, documentID uint) ([]models.ConferenceLine, error) {
	var lines []models.ConferenceLine
	err := s.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("id").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// FindByBarcode resolves a scanned barcode to a product. The canonical barcode
// column wins; the internal code is only consulted when no barcode matches,
// which covers receipts where the supplier barcode was never pre-registered.
func (s *Store) FindByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Where("barcode = ?", barcode).
		First(&product).Error
	if err == nil {
		return &product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Where("internal_code = ?", barcode).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownBarcode
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetStock returns the current stock balance for a product.
func (s *Store) GetStock(ctx context.Context, productID uint) (int, error) {
	var product models.Product
	err := s.db.WithContext(ctx).
		Select("id", "stock_quantity").
		First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("product %d not found", productID)
	}
	if err != nil {
		return 0, err
	}
	return product.StockQuantity, nil
}

// AddStock adjusts a single product's balance by delta.
func (s *Store) AddStock(ctx context.Context, productID uint, delta int) error {
	result := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %d not found", productID)
	}
	return nil
}
