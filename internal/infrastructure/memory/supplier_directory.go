package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ repository.SupplierDirectory = (*SupplierDirectory)(nil)

// SupplierDirectory directorio de proveedores en memoria, independiente del Store.
type SupplierDirectory struct {
	mu        sync.RWMutex
	suppliers map[string]*entity.Supplier
}

// NewSupplierDirectory crea el directorio con los proveedores dados.
func NewSupplierDirectory(seed ...*entity.Supplier) *SupplierDirectory {
	d := &SupplierDirectory{suppliers: make(map[string]*entity.Supplier)}
	for _, s := range seed {
		d.Put(s)
	}
	return d
}

// Put agrega o reemplaza un proveedor.
func (d *SupplierDirectory) Put(s *entity.Supplier) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.suppliers[s.ID] = cloneSupplier(s)
}

func (d *SupplierDirectory) GetByID(_ context.Context, siteID, id string) (*entity.Supplier, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.suppliers[id]
	if !ok || s.SiteID != siteID {
		return nil, nil
	}
	return cloneSupplier(s), nil
}

func (d *SupplierDirectory) ListByCategoryCompatibility(_ context.Context, siteID string, categoryIDs []string) ([]*entity.Supplier, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var list []*entity.Supplier
	for _, s := range d.suppliers {
		if s.SiteID != siteID {
			continue
		}
		for _, id := range categoryIDs {
			if s.CompatibleWith(id) {
				list = append(list, cloneSupplier(s))
				break
			}
		}
	}
	return list, nil
}

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	cp := *s
	cp.CategoryIDs = append([]string(nil), s.CategoryIDs...)
	return &cp
}
