package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, site_id, name, category_id, unit, quantity, min_threshold, max_threshold, unit_cost,
	supplier_id, location, expiration_date, daily_consumption, auto_reorder, last_restock_at, version, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SiteID, p.Name, p.CategoryID, p.Unit, p.Quantity, p.MinThreshold, p.MaxThreshold, p.UnitCost,
		nullString(p.SupplierID), p.Location, p.ExpirationDate, nullDecimal(p.AverageDailyConsumption),
		p.AutoReorder, p.LastRestockAt, p.Version, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("category_id", "categoría inexistente")
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del sitio.
func (r *ProductRepo) GetByID(ctx context.Context, siteID, id string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE site_id = $1 AND id = $2`, siteID, id)
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(ctx context.Context, siteID, id string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE site_id = $1 AND id = $2 FOR UPDATE`, siteID, id)
}

func (r *ProductRepo) get(ctx context.Context, query, siteID, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, siteID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables si la versión coincide. No toca cantidad ni última reposición.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $4, category_id = $5, unit = $6, min_threshold = $7, max_threshold = $8,
			unit_cost = $9, supplier_id = $10, location = $11, expiration_date = $12, daily_consumption = $13,
			auto_reorder = $14, updated_at = $15, version = version + 1
		WHERE site_id = $1 AND id = $2 AND version = $3`
	cmd, err := r.q.Exec(ctx, query,
		p.SiteID, p.ID, p.Version, p.Name, p.CategoryID, p.Unit, p.MinThreshold, p.MaxThreshold,
		p.UnitCost, nullString(p.SupplierID), p.Location, p.ExpirationDate, nullDecimal(p.AverageDailyConsumption),
		p.AutoReorder, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	p.Version++
	return nil
}

// UpdateStock escribe cantidad, costo y última reposición (usado por el procesador de ajustes bajo bloqueo).
func (r *ProductRepo) UpdateStock(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET quantity = $3, unit_cost = $4, last_restock_at = $5, updated_at = $6, version = version + 1
		WHERE site_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query, p.SiteID, p.ID, p.Quantity, p.UnitCost, p.LastRestockAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFoundError("product", p.ID)
	}
	p.Version++
	return nil
}

// List lista productos del sitio por nombre, con filtros opcionales y paginación.
func (r *ProductRepo) List(ctx context.Context, siteID string, f repository.ProductFilter) ([]*entity.Product, error) {
	var (
		where = []string{"site_id = $1"}
		args  = []any{siteID}
	)
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.NameContains != "" {
		args = append(args, "%"+escapeLike(f.NameContains)+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY name COLLATE "C", id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByCategory cuenta los productos que referencian la categoría.
func (r *ProductRepo) CountByCategory(ctx context.Context, siteID, categoryID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM products WHERE site_id = $1 AND category_id = $2`,
		siteID, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, siteID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE site_id = $1 AND id = $2`, siteID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p           entity.Product
		supplierID  *string
		consumption decimal.NullDecimal
	)
	err := row.Scan(
		&p.ID, &p.SiteID, &p.Name, &p.CategoryID, &p.Unit, &p.Quantity, &p.MinThreshold, &p.MaxThreshold, &p.UnitCost,
		&supplierID, &p.Location, &p.ExpirationDate, &consumption, &p.AutoReorder, &p.LastRestockAt,
		&p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	if consumption.Valid {
		d := consumption.Decimal
		p.AverageDailyConsumption = &d
	}
	return &p, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
