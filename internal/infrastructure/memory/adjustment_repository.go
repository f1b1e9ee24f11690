package memory

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*adjustmentRepo)(nil)

type adjustmentRepo struct {
	s *Store
	d *data
}

func (r *adjustmentRepo) Create(_ context.Context, a *entity.StockAdjustment) error {
	return r.s.write(r.d, func(d *data) error {
		cp := *a
		prev := d.adjustments[a.ProductID]
		next := make([]*entity.StockAdjustment, 0, len(prev)+1)
		next = append(next, &cp)
		next = append(next, prev...) // más reciente primero
		d.adjustments[a.ProductID] = next
		return nil
	})
}

func (r *adjustmentRepo) ListByProduct(_ context.Context, siteID, productID string, limit, offset int) ([]*entity.StockAdjustment, error) {
	var list []*entity.StockAdjustment
	err := r.s.read(r.d, func(d *data) error {
		for _, a := range d.adjustments[productID] {
			if a.SiteID == siteID {
				cp := *a
				list = append(list, &cp)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paginate(list, limit, offset), nil
}
