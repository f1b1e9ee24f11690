package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación sobre PostgreSQL (usable con pool o tx).
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste un ajuste de stock.
func (r *AdjustmentRepo) Create(ctx context.Context, a *entity.StockAdjustment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_adjustments (id, site_id, product_id, direction, amount, previous_quantity, result_quantity, unit_cost, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.SiteID, a.ProductID, string(a.Direction), a.Amount, a.PreviousQuantity, a.ResultQuantity,
		nullDecimal(a.UnitCost), a.Reason, nullString(a.CreatedBy), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock adjustment: %w", err)
	}
	return nil
}

// ListByProduct lista los ajustes de un producto, más recientes primero.
func (r *AdjustmentRepo) ListByProduct(ctx context.Context, siteID, productID string, limit, offset int) ([]*entity.StockAdjustment, error) {
	query := `
		SELECT id, site_id, product_id, direction, amount, previous_quantity, result_quantity, unit_cost, reason, created_by, created_at
		FROM stock_adjustments WHERE site_id = $1 AND product_id = $2
		ORDER BY created_at DESC, id LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, siteID, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAdjustment
	for rows.Next() {
		var (
			a         entity.StockAdjustment
			direction string
			unitCost  decimal.NullDecimal
			createdBy *string
		)
		if err := rows.Scan(&a.ID, &a.SiteID, &a.ProductID, &direction, &a.Amount, &a.PreviousQuantity,
			&a.ResultQuantity, &unitCost, &a.Reason, &createdBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		a.Direction = entity.AdjustmentDirection(direction)
		if unitCost.Valid {
			c := unitCost.Decimal
			a.UnitCost = &c
		}
		if createdBy != nil {
			a.CreatedBy = *createdBy
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
