package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const site = "s1"

func newStore(t *testing.T, names ...string) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Categories().Create(ctx, &entity.Category{ID: "c1", SiteID: site, Name: "General", Kind: entity.CategoryKindSupply}))
	for i, n := range names {
		require.NoError(t, s.Products().Create(ctx, &entity.Product{
			ID:         string(rune('a' + i)),
			SiteID:     site,
			Name:       n,
			CategoryID: "c1",
			Quantity:   decimal.NewFromInt(10),
			Version:    1,
		}))
	}
	return s
}

func TestRun_ErrorDescartaCambios(t *testing.T) {
	s := newStore(t, "Leche")
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(products repository.ProductRepository, adjustments repository.AdjustmentRepository) error {
		p, err := products.GetForUpdate(ctx, site, "a")
		require.NoError(t, err)
		p.Quantity = decimal.NewFromInt(99)
		require.NoError(t, products.UpdateStock(ctx, p))
		require.NoError(t, adjustments.Create(ctx, &entity.StockAdjustment{ID: "adj", SiteID: site, ProductID: "a"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, err := s.Products().GetByID(ctx, site, "a")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(p.Quantity), "rollback")
	list, err := s.Adjustments().ListByProduct(ctx, site, "a", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetByID_DevuelveCopias(t *testing.T) {
	s := newStore(t, "Leche")
	ctx := context.Background()

	p, err := s.Products().GetByID(ctx, site, "a")
	require.NoError(t, err)
	p.Name = "mutado"

	again, err := s.Products().GetByID(ctx, site, "a")
	require.NoError(t, err)
	assert.Equal(t, "Leche", again.Name)

	other, err := s.Products().GetByID(ctx, "otro", "a")
	require.NoError(t, err)
	assert.Nil(t, other, "otro sitio no ve el producto")
}

func TestList_NombreSinDistinguirMayusculas(t *testing.T) {
	s := newStore(t, "Toalla GRANDE", "toalla pequeña", "Jabón", "STRASSE")
	ctx := context.Background()

	list, err := s.Products().List(ctx, site, repository.ProductFilter{NameContains: "TOALLA"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = s.Products().List(ctx, site, repository.ProductFilter{NameContains: "straße"})
	require.NoError(t, err)
	require.Len(t, list, 1, "plegado Unicode completo")

	list, err = s.Products().List(ctx, site, repository.ProductFilter{Limit: 2, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = s.Products().List(ctx, site, repository.ProductFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdate_VersionYCantidadProtegida(t *testing.T) {
	s := newStore(t, "Leche")
	ctx := context.Background()

	p, err := s.Products().GetByID(ctx, site, "a")
	require.NoError(t, err)
	p.Name = "Leche entera"
	p.Quantity = decimal.NewFromInt(500)
	require.NoError(t, s.Products().Update(ctx, p))
	assert.Equal(t, int64(2), p.Version)

	stored, err := s.Products().GetByID(ctx, site, "a")
	require.NoError(t, err)
	assert.Equal(t, "Leche entera", stored.Name)
	assert.True(t, decimal.NewFromInt(10).Equal(stored.Quantity), "Update no escribe la cantidad")

	p.Version = 1
	assert.ErrorIs(t, s.Products().Update(ctx, p), domain.ErrConflict)
}

func TestCategoryDelete_Restrict(t *testing.T) {
	s := newStore(t, "Leche")
	ctx := context.Background()

	err := s.Categories().Delete(ctx, site, "c1")
	assert.ErrorIs(t, err, domain.ErrReferenced)

	require.NoError(t, s.Products().Delete(ctx, site, "a"))
	require.NoError(t, s.Categories().Delete(ctx, site, "c1"))
	c, err := s.Categories().GetByID(ctx, site, "c1")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestSnapshot_NoVeEscriturasPosteriores(t *testing.T) {
	s := newStore(t, "Leche")
	ctx := context.Background()

	err := s.RunSnapshot(ctx, func(products repository.ProductRepository) error {
		require.NoError(t, s.Products().Delete(ctx, site, "a"))
		list, err := products.List(ctx, site, repository.ProductFilter{})
		require.NoError(t, err)
		assert.Len(t, list, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestSupplierDirectory(t *testing.T) {
	dir := memory.NewSupplierDirectory(
		&entity.Supplier{ID: "s1", SiteID: site, Name: "A", Active: true, CategoryIDs: []string{"c1"}},
		&entity.Supplier{ID: "s2", SiteID: site, Name: "B", Active: true, CategoryIDs: []string{"c2"}},
		&entity.Supplier{ID: "s3", SiteID: "otro", Name: "C", Active: true, CategoryIDs: []string{"c1"}},
	)
	ctx := context.Background()

	list, err := dir.ListByCategoryCompatibility(ctx, site, []string{"c1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "s1", list[0].ID)

	s, err := dir.GetByID(ctx, "otro", "s1")
	require.NoError(t, err)
	assert.Nil(t, s)
}
