package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost recalcula el costo unitario al recibir un lote (costo promedio ponderado).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(currentQty, currentCost, incomingQty, incomingCost decimal.Decimal) decimal.Decimal {
	sum := currentQty.Add(incomingQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return currentCost
	}
	num := currentQty.Mul(currentCost).Add(incomingQty.Mul(incomingCost))
	return num.Div(sum).Round(4)
}
