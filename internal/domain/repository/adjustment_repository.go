package repository

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// AdjustmentRepository define el puerto de persistencia para la bitácora de ajustes de stock.
type AdjustmentRepository interface {
	Create(ctx context.Context, adj *entity.StockAdjustment) error
	ListByProduct(ctx context.Context, siteID, productID string, limit, offset int) ([]*entity.StockAdjustment, error)
}
