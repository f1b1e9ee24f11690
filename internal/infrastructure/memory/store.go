// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORE_DRIVER=memory y en las pruebas de casos de uso y handlers.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/application/usecase"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)
var _ usecase.CatalogTxRunner = (*Store)(nil)

type data struct {
	categories  map[string]*entity.Category
	products    map[string]*entity.Product
	adjustments map[string][]*entity.StockAdjustment // por producto
}

func newData() *data {
	return &data{
		categories:  make(map[string]*entity.Category),
		products:    make(map[string]*entity.Product),
		adjustments: make(map[string][]*entity.StockAdjustment),
	}
}

// clone copia los mapas; las entidades almacenadas nunca se mutan en sitio, solo se reemplazan.
func (d *data) clone() *data {
	c := &data{
		categories:  make(map[string]*entity.Category, len(d.categories)),
		products:    make(map[string]*entity.Product, len(d.products)),
		adjustments: make(map[string][]*entity.StockAdjustment, len(d.adjustments)),
	}
	for k, v := range d.categories {
		c.categories[k] = v
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.adjustments {
		c.adjustments[k] = v
	}
	return c
}

// Store almacén en memoria. Las transacciones se serializan con un mutex y trabajan sobre
// una copia que se publica solo si fn no devuelve error.
type Store struct {
	mu sync.RWMutex
	d  *data
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{d: newData()}
}

// Categories repositorio de categorías fuera de transacción.
func (s *Store) Categories() repository.CategoryRepository { return &categoryRepo{s: s} }

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Adjustments repositorio de la bitácora fuera de transacción.
func (s *Store) Adjustments() repository.AdjustmentRepository { return &adjustmentRepo{s: s} }

// Run ejecuta fn con acceso exclusivo; equivale a bloquear la fila del producto.
func (s *Store) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	adjustments repository.AdjustmentRepository,
) error) error {
	return s.inTx(ctx, func(d *data) error {
		return fn(&productRepo{d: d}, &adjustmentRepo{d: d})
	})
}

// RunCatalog igual que Run, con repositorios de catálogo.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
) error) error {
	return s.inTx(ctx, func(d *data) error {
		return fn(&categoryRepo{d: d}, &productRepo{d: d})
	})
}

// RunSnapshot entrega una copia congelada del catálogo; no bloquea a los escritores mientras fn corre.
func (s *Store) RunSnapshot(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	snapshot := s.d.clone()
	s.mu.RUnlock()
	return fn(&productRepo{d: snapshot})
}

func (s *Store) inTx(ctx context.Context, fn func(d *data) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.d.clone()
	if err := fn(work); err != nil {
		return err
	}
	s.d = work
	return nil
}

// read ejecuta fn sobre los datos publicados (repos sin transacción) o sobre la copia de la tx.
func (s *Store) read(d *data, fn func(d *data) error) error {
	if d != nil {
		return fn(d)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.d)
}

func (s *Store) write(d *data, fn func(d *data) error) error {
	if d != nil {
		return fn(d)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.d)
}
