package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, site_id, name, kind, description, created_at, updated_at`

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, c.ID, c.SiteID, c.Name, string(c.Kind), c.Description, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría del sitio.
func (r *CategoryRepo) GetByID(ctx context.Context, siteID, id string) (*entity.Category, error) {
	return r.get(ctx, `SELECT `+categoryColumns+` FROM categories WHERE site_id = $1 AND id = $2`, siteID, id)
}

// GetForUpdate obtiene la categoría y bloquea la fila (SELECT FOR UPDATE).
func (r *CategoryRepo) GetForUpdate(ctx context.Context, siteID, id string) (*entity.Category, error) {
	return r.get(ctx, `SELECT `+categoryColumns+` FROM categories WHERE site_id = $1 AND id = $2 FOR UPDATE`, siteID, id)
}

func (r *CategoryRepo) get(ctx context.Context, query, siteID, id string) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, query, siteID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Update actualiza nombre, tipo y descripción.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories SET name = $3, kind = $4, description = $5, updated_at = $6
		WHERE site_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query, c.SiteID, c.ID, c.Name, string(c.Kind), c.Description, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewNotFoundError("category", c.ID)
	}
	return nil
}

// ListBySite lista las categorías del sitio ordenadas por nombre.
func (r *CategoryRepo) ListBySite(ctx context.Context, siteID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE site_id = $1 ORDER BY name COLLATE "C", id`
	rows, err := r.q.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina la categoría. La llave foránea products.category_id (ON DELETE RESTRICT)
// respalda la verificación de referencias del caso de uso.
func (r *CategoryRepo) Delete(ctx context.Context, siteID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE site_id = $1 AND id = $2`, siteID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ReferentialConstraintError{Entity: "category", ID: id, ReferencedBy: "products", Count: 1}
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var kind string
	if err := row.Scan(&c.ID, &c.SiteID, &c.Name, &kind, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Kind = entity.CategoryKind(kind)
	return &c, nil
}
