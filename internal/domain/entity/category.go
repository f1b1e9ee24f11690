package entity

import "time"

// CategoryKind clasifica el tipo de producto que agrupa una categoría.
type CategoryKind string

// Tipos de categoría: alimentos y bebidas y housekeeping comparten la misma enumeración cerrada.
const (
	CategoryKindFood        CategoryKind = "food"
	CategoryKindBeverage    CategoryKind = "beverage"
	CategoryKindSupply      CategoryKind = "supply"
	CategoryKindLinen       CategoryKind = "linen"
	CategoryKindAmenities   CategoryKind = "amenities"
	CategoryKindCleaning    CategoryKind = "cleaning"
	CategoryKindMaintenance CategoryKind = "maintenance"
)

// Valid indica si el tipo pertenece a la enumeración.
func (k CategoryKind) Valid() bool {
	switch k {
	case CategoryKindFood, CategoryKindBeverage, CategoryKindSupply,
		CategoryKindLinen, CategoryKindAmenities, CategoryKindCleaning, CategoryKindMaintenance:
		return true
	}
	return false
}

// Category agrupa productos de un sitio (hotel). No posee datos de stock.
type Category struct {
	ID          string
	SiteID      string
	Name        string
	Kind        CategoryKind
	Description string // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
