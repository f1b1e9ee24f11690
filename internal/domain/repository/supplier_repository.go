package repository

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// SupplierDirectory puerto de solo lectura hacia el directorio externo de proveedores.
type SupplierDirectory interface {
	GetByID(ctx context.Context, siteID, id string) (*entity.Supplier, error)
	// ListByCategoryCompatibility devuelve proveedores (activos o no) compatibles con alguna de las categorías.
	ListByCategoryCompatibility(ctx context.Context, siteID string, categoryIDs []string) ([]*entity.Supplier, error)
}
