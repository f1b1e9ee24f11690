package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentDirection sentido de un ajuste de stock.
type AdjustmentDirection string

const (
	AdjustmentIncrease   AdjustmentDirection = "increase"   // reposición
	AdjustmentDecrease   AdjustmentDirection = "decrease"   // consumo
	AdjustmentCorrection AdjustmentDirection = "correction" // conteo físico: fija la cantidad absoluta
)

// Valid indica si la dirección es conocida.
func (d AdjustmentDirection) Valid() bool {
	return d == AdjustmentIncrease || d == AdjustmentDecrease || d == AdjustmentCorrection
}

// StockAdjustment registra un ajuste aplicado (bitácora de mutaciones de cantidad).
type StockAdjustment struct {
	ID               string
	SiteID           string
	ProductID        string
	Direction        AdjustmentDirection
	Amount           decimal.Decimal
	PreviousQuantity decimal.Decimal
	ResultQuantity   decimal.Decimal
	UnitCost         *decimal.Decimal // costo del lote entrante (solo increase)
	Reason           string
	CreatedBy        string
	CreatedAt        time.Time
}
