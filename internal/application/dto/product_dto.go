package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest borrador de producto. Quantity es la cantidad inicial; después solo cambia vía ajustes.
type CreateProductRequest struct {
	Name             string           `json:"name"`
	CategoryID       string           `json:"category_id"`
	Unit             string           `json:"unit"`
	Quantity         decimal.Decimal  `json:"quantity"`
	MinThreshold     decimal.Decimal  `json:"min_threshold"`
	MaxThreshold     decimal.Decimal  `json:"max_threshold"`
	UnitCost         decimal.Decimal  `json:"unit_cost"`
	SupplierID       string           `json:"supplier_id,omitempty"`
	Location         string           `json:"location"`
	ExpirationDate   *time.Time       `json:"expiration_date,omitempty"`
	DailyConsumption *decimal.Decimal `json:"daily_consumption,omitempty"`
	AutoReorder      bool             `json:"auto_reorder"`
}

// UpdateProductRequest parche de producto (sin cantidad). Version es la versión leída por el cliente;
// 0 omite el control optimista. ClearX elimina el valor opcional.
type UpdateProductRequest struct {
	Name                  *string          `json:"name"`
	CategoryID            *string          `json:"category_id"`
	Unit                  *string          `json:"unit"`
	Quantity              *decimal.Decimal `json:"quantity"` // rechazado: usar ajustes
	MinThreshold          *decimal.Decimal `json:"min_threshold"`
	MaxThreshold          *decimal.Decimal `json:"max_threshold"`
	UnitCost              *decimal.Decimal `json:"unit_cost"`
	SupplierID            *string          `json:"supplier_id"`
	Location              *string          `json:"location"`
	ExpirationDate        *time.Time       `json:"expiration_date"`
	ClearExpirationDate   bool             `json:"clear_expiration_date"`
	DailyConsumption      *decimal.Decimal `json:"daily_consumption"`
	ClearDailyConsumption bool             `json:"clear_daily_consumption"`
	AutoReorder           *bool            `json:"auto_reorder"`
	Version               int64            `json:"version"`
}

// ProductFilterRequest filtros de listado.
type ProductFilterRequest struct {
	CategoryID string `query:"category_id"`
	Name       string `query:"name"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

// Normalize lleva límite y offset negativos a cero (0 = sin límite / desde el inicio).
func (f *ProductFilterRequest) Normalize() {
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string           `json:"id"`
	SiteID           string           `json:"site_id"`
	Name             string           `json:"name"`
	CategoryID       string           `json:"category_id"`
	Unit             string           `json:"unit"`
	Quantity         decimal.Decimal  `json:"quantity"`
	MinThreshold     decimal.Decimal  `json:"min_threshold"`
	MaxThreshold     decimal.Decimal  `json:"max_threshold"`
	UnitCost         decimal.Decimal  `json:"unit_cost"`
	SupplierID       string           `json:"supplier_id,omitempty"`
	Location         string           `json:"location"`
	ExpirationDate   *time.Time       `json:"expiration_date,omitempty"`
	DailyConsumption *decimal.Decimal `json:"daily_consumption,omitempty"`
	AutoReorder      bool             `json:"auto_reorder"`
	LastRestockAt    *time.Time       `json:"last_restock_at,omitempty"`
	Version          int64            `json:"version"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
