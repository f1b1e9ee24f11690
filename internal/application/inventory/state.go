package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

// StockStateUseCase expone el estado derivado de un producto. Se recalcula en cada lectura.
type StockStateUseCase struct {
	products repository.ProductRepository
	rules    inventory.Rules
}

// NewStockStateUseCase construye el caso de uso.
func NewStockStateUseCase(products repository.ProductRepository, rules inventory.Rules) *StockStateUseCase {
	return &StockStateUseCase{products: products, rules: rules}
}

// Get evalúa el producto en el instante now.
func (uc *StockStateUseCase) Get(ctx context.Context, siteID, productID string, now time.Time) (*dto.StockStateResponse, error) {
	product, err := uc.products.GetByID(ctx, siteID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("product", productID)
	}
	a := inventory.Evaluate(product, now, uc.rules)
	return &dto.StockStateResponse{
		Product:          *dto.FromProduct(product),
		State:            string(a.State),
		DaysRemaining:    a.DaysRemaining,
		NearExpiration:   a.NearExpiration,
		DepletionWarning: a.DepletionWarning,
		EvaluatedAt:      now,
	}, nil
}
