package receiving

import (
	"context"
	"fmt"

	"receiving-manager/feature/receiving/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Committer applies the outcome of a finalized conference to the inventory.
type Committer interface {
	// Commit adds each line's counted quantity to its product's stock and
	// moves the document from IN_PROGRESS to the given terminal status, as a
	// single atomic unit. On error nothing is persisted.
	Commit(ctx context.Context, documentID uint, terminal models.DocumentStatus, lines []models.ConferenceLine) error
}

// StockCommitter is the GORM-backed committer. All deltas and the status flip
// run inside one database transaction; partial application is impossible.
type StockCommitter struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStockCommitter creates a committer on top of the back-office database.
func NewStockCommitter(db *gorm.DB, logger *zap.Logger) *StockCommitter {
	return &StockCommitter{db: db, logger: logger}
}

// Commit applies the stock deltas and freezes the document.
//
// The counted quantity is the source of truth: the physically verified amount
// enters stock regardless of whether it matches what the supplier document
// promised.
func (c *StockCommitter) Commit(ctx context.Context, documentID uint, terminal models.DocumentStatus, lines []models.ConferenceLine) error {
	if !terminal.IsTerminal() {
		return fmt.Errorf("commit requires a terminal status, got %s", terminal)
	}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			result := tx.Model(&models.Product{}).
				Where("id = ?", line.ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", line.CountedQuantity))
			if result.Error != nil {
				return fmt.Errorf("stock update for product %d: %w", line.ProductID, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("stock update for product %d: product not found", line.ProductID)
			}
		}

		// The status guard keeps a concurrent finalize (or an externally
		// mutated document) from committing twice.
		result := tx.Model(&models.ReceiptDocument{}).
			Where("id = ? AND status = ?", documentID, models.DocumentInProgress).
			Update("status", terminal)
		if result.Error != nil {
			return fmt.Errorf("document status update: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("document %d is no longer in progress", documentID)
		}

		return nil
	})
	if err != nil {
		c.logger.Error("Stock commit rolled back",
			zap.Uint("document_id", documentID),
			zap.Int("lines", len(lines)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}

	c.logger.Info("Stock commit applied",
		zap.Uint("document_id", documentID),
		zap.String("status", string(terminal)),
		zap.Int("lines", len(lines)),
	)
	return nil
}
