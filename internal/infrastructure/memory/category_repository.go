package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ repository.CategoryRepository = (*categoryRepo)(nil)

// categoryRepo con s != nil opera sobre el almacén publicado; con d != nil, dentro de una tx.
type categoryRepo struct {
	s *Store
	d *data
}

func (r *categoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.s.write(r.d, func(d *data) error {
		if _, ok := d.categories[c.ID]; ok {
			return domain.ErrDuplicate
		}
		cp := *c
		d.categories[c.ID] = &cp
		return nil
	})
}

func (r *categoryRepo) GetByID(_ context.Context, siteID, id string) (*entity.Category, error) {
	var out *entity.Category
	err := r.s.read(r.d, func(d *data) error {
		if c, ok := d.categories[id]; ok && c.SiteID == siteID {
			cp := *c
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetForUpdate: dentro de la tx el acceso ya es exclusivo.
func (r *categoryRepo) GetForUpdate(ctx context.Context, siteID, id string) (*entity.Category, error) {
	return r.GetByID(ctx, siteID, id)
}

func (r *categoryRepo) Update(_ context.Context, c *entity.Category) error {
	return r.s.write(r.d, func(d *data) error {
		current, ok := d.categories[c.ID]
		if !ok || current.SiteID != c.SiteID {
			return domain.NewNotFoundError("category", c.ID)
		}
		cp := *c
		d.categories[c.ID] = &cp
		return nil
	})
}

func (r *categoryRepo) ListBySite(_ context.Context, siteID string) ([]*entity.Category, error) {
	var list []*entity.Category
	err := r.s.read(r.d, func(d *data) error {
		for _, c := range d.categories {
			if c.SiteID == siteID {
				cp := *c
				list = append(list, &cp)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}

// Delete replica la restricción ON DELETE RESTRICT de la tabla products.
func (r *categoryRepo) Delete(_ context.Context, siteID, id string) error {
	return r.s.write(r.d, func(d *data) error {
		c, ok := d.categories[id]
		if !ok || c.SiteID != siteID {
			return nil
		}
		if n := countByCategory(d, siteID, id); n > 0 {
			return &domain.ReferentialConstraintError{Entity: "category", ID: id, ReferencedBy: "products", Count: n}
		}
		delete(d.categories, id)
		return nil
	})
}
