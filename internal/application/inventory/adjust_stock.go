package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AdjustStockUseCase es el único camino para modificar la cantidad de un producto.
// Cada ajuste bloquea la fila (SELECT FOR UPDATE), aplica el delta y registra la bitácora
// en la misma transacción; dos ajustes concurrentes nunca pierden una actualización.
type AdjustStockUseCase struct {
	txRunner TxRunner
	products repository.ProductRepository
	metrics  MetricsRecorder
	clock    func() time.Time
	log      zerolog.Logger
}

// NewAdjustStockUseCase construye el caso de uso. metrics puede ser nil.
func NewAdjustStockUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	metrics MetricsRecorder,
	clock func() time.Time,
	log zerolog.Logger,
) *AdjustStockUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &AdjustStockUseCase{txRunner: txRunner, products: products, metrics: metrics, clock: clock, log: log}
}

// AdjustInput entrada del procesador de ajustes.
// increase/decrease: Amount > 0. correction: Amount >= 0 es la nueva cantidad absoluta.
type AdjustInput struct {
	SiteID    string
	ProductID string
	UserID    string
	Direction entity.AdjustmentDirection
	Amount    decimal.Decimal
	UnitCost  *decimal.Decimal
	Reason    string
}

// AdjustFromRequest adapta el request HTTP al caso de uso.
func (uc *AdjustStockUseCase) AdjustFromRequest(ctx context.Context, siteID, userID, productID string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	return uc.Adjust(ctx, AdjustInput{
		SiteID:    siteID,
		ProductID: productID,
		UserID:    userID,
		Direction: entity.AdjustmentDirection(in.Direction),
		Amount:    in.Amount,
		UnitCost:  in.UnitCost,
		Reason:    in.Reason,
	})
}

// Adjust aplica el ajuste:
//   - increase: cantidad + amount, lastRestockAt = now; con UnitCost recalcula el costo promedio ponderado.
//   - decrease: max(0, cantidad - amount); nunca falla por quedar negativo, se recorta a cero.
//   - correction: cantidad = amount (conteo físico); no toca lastRestockAt.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, in AdjustInput) (*dto.ProductResponse, error) {
	if err := validateAdjustInput(in); err != nil {
		return nil, err
	}

	now := uc.clock()
	var result *entity.Product
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, adjustments repository.AdjustmentRepository) error {
		product, err := products.GetForUpdate(ctx, in.SiteID, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewNotFoundError("product", in.ProductID)
		}

		previous := product.Quantity
		switch in.Direction {
		case entity.AdjustmentIncrease:
			product.Quantity = previous.Add(in.Amount)
			restockedAt := now
			product.LastRestockAt = &restockedAt
			if in.UnitCost != nil {
				product.UnitCost = inventory.WeightedAverageCost(previous, product.UnitCost, in.Amount, *in.UnitCost)
			}
		case entity.AdjustmentDecrease:
			product.Quantity = decimal.Max(decimal.Zero, previous.Sub(in.Amount))
		case entity.AdjustmentCorrection:
			product.Quantity = in.Amount
		}
		product.UpdatedAt = now
		if err := products.UpdateStock(ctx, product); err != nil {
			return err
		}

		adj := &entity.StockAdjustment{
			ID:               uuid.New().String(),
			SiteID:           in.SiteID,
			ProductID:        in.ProductID,
			Direction:        in.Direction,
			Amount:           in.Amount,
			PreviousQuantity: previous,
			ResultQuantity:   product.Quantity,
			UnitCost:         in.UnitCost,
			Reason:           in.Reason,
			CreatedBy:        in.UserID,
			CreatedAt:        now,
		}
		if err := adjustments.Create(ctx, adj); err != nil {
			return err
		}
		result = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.AdjustmentApplied(in.SiteID, in.Direction)
	uc.log.Info().
		Str("site_id", in.SiteID).
		Str("product_id", in.ProductID).
		Str("direction", string(in.Direction)).
		Str("amount", in.Amount.String()).
		Str("quantity", result.Quantity.String()).
		Msg("ajuste de stock aplicado")
	return dto.FromProduct(result), nil
}

// ListAdjustments devuelve la bitácora de ajustes del producto (más recientes primero).
func (uc *AdjustStockUseCase) ListAdjustments(ctx context.Context, siteID, productID string, page dto.PageRequest) ([]dto.AdjustmentResponse, error) {
	page.DefaultPage()
	product, err := uc.products.GetByID(ctx, siteID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("product", productID)
	}
	var list []*entity.StockAdjustment
	err = uc.txRunner.Run(ctx, func(_ repository.ProductRepository, adjustments repository.AdjustmentRepository) error {
		var err error
		list, err = adjustments.ListByProduct(ctx, siteID, productID, page.Limit, page.Offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.FromAdjustment(a))
	}
	return out, nil
}

func validateAdjustInput(in AdjustInput) error {
	if in.ProductID == "" {
		return domain.NewValidationError("product_id", "es requerido")
	}
	if !in.Direction.Valid() {
		return domain.NewValidationError("direction", "debe ser increase, decrease o correction")
	}
	if in.Direction == entity.AdjustmentCorrection {
		if in.Amount.IsNegative() {
			return domain.NewValidationError("amount", "no puede ser negativo")
		}
	} else if !in.Amount.IsPositive() {
		return domain.NewValidationError("amount", "debe ser mayor que cero")
	}
	if err := inventory.ValidateScale("amount", in.Amount); err != nil {
		return err
	}
	if in.UnitCost != nil {
		if in.Direction != entity.AdjustmentIncrease {
			return domain.NewValidationError("unit_cost", "solo aplica a reposiciones")
		}
		if in.UnitCost.IsNegative() {
			return domain.NewValidationError("unit_cost", "no puede ser negativo")
		}
		if err := inventory.ValidateScale("unit_cost", *in.UnitCost); err != nil {
			return err
		}
	}
	return nil
}
