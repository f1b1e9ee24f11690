package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ repository.SupplierDirectory = (*SupplierDirectory)(nil)

// SupplierDirectory lectura de la tabla de proveedores mantenida por otro módulo.
type SupplierDirectory struct {
	q Querier
}

// NewSupplierDirectory construye el adaptador de solo lectura.
func NewSupplierDirectory(q Querier) *SupplierDirectory {
	return &SupplierDirectory{q: q}
}

// GetByID obtiene un proveedor del sitio; (nil, nil) si no existe.
func (d *SupplierDirectory) GetByID(ctx context.Context, siteID, id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := d.q.QueryRow(ctx,
		`SELECT id, site_id, name, active, category_ids FROM suppliers WHERE site_id = $1 AND id = $2`,
		siteID, id,
	).Scan(&s.ID, &s.SiteID, &s.Name, &s.Active, &s.CategoryIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByCategoryCompatibility proveedores cuyas categorías intersectan las indicadas.
func (d *SupplierDirectory) ListByCategoryCompatibility(ctx context.Context, siteID string, categoryIDs []string) ([]*entity.Supplier, error) {
	rows, err := d.q.Query(ctx, `
		SELECT id, site_id, name, active, category_ids FROM suppliers
		WHERE site_id = $1 AND category_ids && $2::text[]
		ORDER BY name`, siteID, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.SiteID, &s.Name, &s.Active, &s.CategoryIDs); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
