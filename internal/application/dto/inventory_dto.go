package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/products/:id/adjustments.
// direction: increase | decrease | correction. UnitCost solo aplica a increase.
type AdjustStockRequest struct {
	Direction string           `json:"direction"`
	Amount    decimal.Decimal  `json:"amount"`
	UnitCost  *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason    string           `json:"reason,omitempty"`
}

// AdjustmentResponse entrada de la bitácora de ajustes.
type AdjustmentResponse struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	Direction        string           `json:"direction"`
	Amount           decimal.Decimal  `json:"amount"`
	PreviousQuantity decimal.Decimal  `json:"previous_quantity"`
	ResultQuantity   decimal.Decimal  `json:"result_quantity"`
	UnitCost         *decimal.Decimal `json:"unit_cost,omitempty"`
	Reason           string           `json:"reason,omitempty"`
	CreatedBy        string           `json:"created_by,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// StockStateResponse producto con sus señales derivadas en el instante de la consulta.
type StockStateResponse struct {
	Product          ProductResponse `json:"product"`
	State            string          `json:"state"`
	DaysRemaining    *int64          `json:"days_remaining"`
	NearExpiration   bool            `json:"near_expiration"`
	DepletionWarning bool            `json:"depletion_warning"`
	EvaluatedAt      time.Time       `json:"evaluated_at"`
}

// AlertDTO alerta de inventario.
type AlertDTO struct {
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Kind        string    `json:"kind"`
	ScannedAt   time.Time `json:"scanned_at"`
}

// AlertScanResponse resultado de un escaneo.
type AlertScanResponse struct {
	SiteID    string         `json:"site_id"`
	ScannedAt time.Time      `json:"scanned_at"`
	Scanned   int            `json:"scanned"`
	Counts    map[string]int `json:"counts"`
	Alerts    []AlertDTO     `json:"alerts"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en estado bajo o peor.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	State              string          `json:"state"`
	CurrentQuantity    decimal.Decimal `json:"current_quantity"`
	MinThreshold       decimal.Decimal `json:"min_threshold"`
	MaxThreshold       decimal.Decimal `json:"max_threshold"`
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"` // MaxThreshold - CurrentQuantity
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	DaysRemaining      *int64          `json:"days_remaining"`
	SupplierID         string          `json:"supplier_id,omitempty"`
	AutoReorder        bool            `json:"auto_reorder"`
	Priority           int             `json:"priority"` // 1 = más urgente
}
