package inventory

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

const defaultPageSize = 200

// loadSnapshot lee el catálogo del sitio por páginas dentro de una vista consistente.
// Se puede cancelar entre páginas; un escaneo cancelado simplemente se repite en el próximo ciclo.
func loadSnapshot(ctx context.Context, tx TxRunner, siteID string, pageSize int) ([]*entity.Product, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	var snapshot []*entity.Product
	err := tx.RunSnapshot(ctx, func(products repository.ProductRepository) error {
		for offset := 0; ; offset += pageSize {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := products.List(ctx, siteID, repository.ProductFilter{Limit: pageSize, Offset: offset})
			if err != nil {
				return err
			}
			snapshot = append(snapshot, page...)
			if len(page) < pageSize {
				return nil
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
