package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// ReplenishmentUseCase genera la lista de reposición de un sitio.
// Incluye productos vencidos, agotados, críticos o bajos; la cantidad sugerida lleva el stock al máximo.
type ReplenishmentUseCase struct {
	txRunner TxRunner
	rules    inventory.Rules
	pageSize int
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(txRunner TxRunner, rules inventory.Rules, pageSize int) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{txRunner: txRunner, rules: rules, pageSize: pageSize}
}

// GenerateReplenishmentList devuelve las sugerencias priorizadas (1 = más urgente).
// onlyAutoReorder limita la lista a productos marcados para reorden automático.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(
	ctx context.Context,
	siteID string,
	now time.Time,
	onlyAutoReorder bool,
) ([]dto.ReplenishmentSuggestionDTO, error) {
	snapshot, err := loadSnapshot(ctx, uc.txRunner, siteID, uc.pageSize)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0)
	for _, p := range snapshot {
		if onlyAutoReorder && !p.AutoReorder {
			continue
		}
		a := inventory.Evaluate(p, now, uc.rules)
		if a.State.Severity() < inventory.StateLow.Severity() {
			continue
		}
		// Stock vencido no es utilizable: se repone el máximo completo.
		usable := p.Quantity
		if a.State == inventory.StateExpired {
			usable = decimal.Zero
		}
		suggested := p.MaxThreshold.Sub(usable)
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			ProductName:        p.Name,
			State:              string(a.State),
			CurrentQuantity:    p.Quantity,
			MinThreshold:       p.MinThreshold,
			MaxThreshold:       p.MaxThreshold,
			SuggestedOrderQty:  suggested,
			UnitCost:           p.UnitCost,
			EstimatedOrderCost: suggested.Mul(p.UnitCost),
			DaysRemaining:      a.DaysRemaining,
			SupplierID:         p.SupplierID,
			AutoReorder:        p.AutoReorder,
		})
	}

	// Primero el estado más severo, luego el mayor faltante, finalmente el nombre.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		sa, sb := inventory.StockState(a.State).Severity(), inventory.StockState(b.State).Severity()
		if sa != sb {
			return sa > sb
		}
		if !a.SuggestedOrderQty.Equal(b.SuggestedOrderQty) {
			return a.SuggestedOrderQty.GreaterThan(b.SuggestedOrderQty)
		}
		return a.ProductName < b.ProductName
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
