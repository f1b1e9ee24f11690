package repository

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve (nil, nil) si no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, siteID, id string) (*entity.Category, error)
	// GetForUpdate bloquea la categoría hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, siteID, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	ListBySite(ctx context.Context, siteID string) ([]*entity.Category, error)
	Delete(ctx context.Context, siteID, id string) error
}
