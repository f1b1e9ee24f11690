package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn en una transacción con repositorios de catálogo atados a ella.
// La verificación de referencias al borrar una categoría y la creación de productos
// comparten este alcance de consistencia.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error) error
}

// Clock devuelve el instante actual; se inyecta para que las pruebas sean deterministas.
type Clock func() time.Time
