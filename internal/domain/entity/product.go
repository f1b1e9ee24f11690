package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es el registro autoritativo de un artículo inventariable de un sitio.
// Quantity solo cambia a través del procesador de ajustes; Version se incrementa en cada escritura.
type Product struct {
	ID                      string
	SiteID                  string
	Name                    string
	CategoryID              string
	Unit                    string // "kg", "unit", "bottle"...
	Quantity                decimal.Decimal
	MinThreshold            decimal.Decimal
	MaxThreshold            decimal.Decimal
	UnitCost                decimal.Decimal
	SupplierID              string // vacío = sin proveedor
	Location                string
	ExpirationDate          *time.Time
	AverageDailyConsumption *decimal.Decimal
	AutoReorder             bool
	LastRestockAt           *time.Time
	Version                 int64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Clone devuelve una copia profunda (los punteros no se comparten).
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	if p.ExpirationDate != nil {
		t := *p.ExpirationDate
		c.ExpirationDate = &t
	}
	if p.AverageDailyConsumption != nil {
		d := *p.AverageDailyConsumption
		c.AverageDailyConsumption = &d
	}
	if p.LastRestockAt != nil {
		t := *p.LastRestockAt
		c.LastRestockAt = &t
	}
	return &c
}
