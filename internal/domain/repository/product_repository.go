package repository

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// ProductFilter criterios de listado. Campos vacíos no filtran; Limit 0 = sin límite.
type ProductFilter struct {
	CategoryID   string
	NameContains string // subcadena sin distinguir mayúsculas
	Limit        int
	Offset       int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, siteID, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de la transacción.
	GetForUpdate(ctx context.Context, siteID, id string) (*entity.Product, error)
	// Update escribe los campos editables (nunca la cantidad) si product.Version coincide
	// con la versión almacenada; si no, domain.ErrConflict. Incrementa product.Version.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock escribe cantidad, costo unitario y última reposición. Incrementa product.Version.
	UpdateStock(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, siteID string, filter ProductFilter) ([]*entity.Product, error)
	CountByCategory(ctx context.Context, siteID, categoryID string) (int, error)
	Delete(ctx context.Context, siteID, id string) error
}
