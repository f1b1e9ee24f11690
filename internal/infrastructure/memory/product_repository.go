package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"golang.org/x/text/cases"
)

var _ repository.ProductRepository = (*productRepo)(nil)

type productRepo struct {
	s *Store
	d *data
}

func (r *productRepo) Create(_ context.Context, p *entity.Product) error {
	return r.s.write(r.d, func(d *data) error {
		if _, ok := d.products[p.ID]; ok {
			return domain.ErrDuplicate
		}
		if c, ok := d.categories[p.CategoryID]; !ok || c.SiteID != p.SiteID {
			return domain.NewValidationError("category_id", "categoría inexistente")
		}
		d.products[p.ID] = p.Clone()
		return nil
	})
}

func (r *productRepo) GetByID(_ context.Context, siteID, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.read(r.d, func(d *data) error {
		if p, ok := d.products[id]; ok && p.SiteID == siteID {
			out = p.Clone()
		}
		return nil
	})
	return out, err
}

func (r *productRepo) GetForUpdate(ctx context.Context, siteID, id string) (*entity.Product, error) {
	return r.GetByID(ctx, siteID, id)
}

// Update compara la versión y conserva cantidad y última reposición almacenadas.
func (r *productRepo) Update(_ context.Context, p *entity.Product) error {
	return r.s.write(r.d, func(d *data) error {
		current, ok := d.products[p.ID]
		if !ok || current.SiteID != p.SiteID || current.Version != p.Version {
			return domain.ErrConflict
		}
		next := p.Clone()
		next.Quantity = current.Quantity
		next.LastRestockAt = current.LastRestockAt
		next.CreatedAt = current.CreatedAt
		next.Version = current.Version + 1
		d.products[p.ID] = next
		p.Version = next.Version
		return nil
	})
}

func (r *productRepo) UpdateStock(_ context.Context, p *entity.Product) error {
	return r.s.write(r.d, func(d *data) error {
		current, ok := d.products[p.ID]
		if !ok || current.SiteID != p.SiteID {
			return domain.NewNotFoundError("product", p.ID)
		}
		next := current.Clone()
		next.Quantity = p.Quantity
		next.UnitCost = p.UnitCost
		if p.LastRestockAt != nil {
			t := *p.LastRestockAt
			next.LastRestockAt = &t
		} else {
			next.LastRestockAt = nil
		}
		next.UpdatedAt = p.UpdatedAt
		next.Version = current.Version + 1
		d.products[p.ID] = next
		p.Version = next.Version
		return nil
	})
}

func (r *productRepo) List(_ context.Context, siteID string, f repository.ProductFilter) ([]*entity.Product, error) {
	fold := cases.Fold()
	needle := fold.String(f.NameContains)
	var list []*entity.Product
	err := r.s.read(r.d, func(d *data) error {
		for _, p := range d.products {
			if p.SiteID != siteID {
				continue
			}
			if f.CategoryID != "" && p.CategoryID != f.CategoryID {
				continue
			}
			if needle != "" && !strings.Contains(fold.String(p.Name), needle) {
				continue
			}
			list = append(list, p.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return paginate(list, f.Limit, f.Offset), nil
}

func (r *productRepo) CountByCategory(_ context.Context, siteID, categoryID string) (int, error) {
	var n int
	err := r.s.read(r.d, func(d *data) error {
		n = countByCategory(d, siteID, categoryID)
		return nil
	})
	return n, err
}

func (r *productRepo) Delete(_ context.Context, siteID, id string) error {
	return r.s.write(r.d, func(d *data) error {
		if p, ok := d.products[id]; ok && p.SiteID == siteID {
			delete(d.products, id)
			delete(d.adjustments, id)
		}
		return nil
	})
}

func countByCategory(d *data, siteID, categoryID string) int {
	n := 0
	for _, p := range d.products {
		if p.SiteID == siteID && p.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset > len(list) {
		return nil
	}
	if offset > 0 {
		list = list[offset:]
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
