package inventory

import (
	"context"
	"errors"
	"fmt"

	"receiving-manager/feature/receiving/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Balance is the stock position of a single product.
type Balance struct {
	ProductID     uint   `json:"product_id"`
	Name          string `json:"name"`
	Barcode       string `json:"barcode"`
	StockQuantity int    `json:"stock_quantity"`
}

// Service serves read-only stock balances. Stock is only ever mutated by the
// receiving feature's finalization commit.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// GetBalance returns the current stock balance for a product.
func (s *Service) GetBalance(ctx context.Context, productID uint) (*Balance, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d not found", productID)
	}
	if err != nil {
		return nil, err
	}

	return &Balance{
		ProductID:     product.ID,
		Name:          product.Name,
		Barcode:       product.Barcode,
		StockQuantity: product.StockQuantity,
	}, nil
}
