package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/application/usecase"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/memory"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const site = "hotel-centro"

var fixedNow = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fixture struct {
	store      *memory.Store
	suppliers  *memory.SupplierDirectory
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	suppliers := memory.NewSupplierDirectory()
	return &fixture{
		store:      store,
		suppliers:  suppliers,
		categories: usecase.NewCategoryUseCase(store.Categories(), store, clock, zerolog.Nop()),
		products:   usecase.NewProductUseCase(store.Products(), store, suppliers, clock, zerolog.Nop()),
	}
}

func (f *fixture) category(t *testing.T, name string, kind entity.CategoryKind) *dto.CategoryResponse {
	t.Helper()
	c, err := f.categories.Create(context.Background(), site, dto.CreateCategoryRequest{Name: name, Kind: string(kind)})
	require.NoError(t, err)
	return c
}

func draft(name, categoryID string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:         name,
		CategoryID:   categoryID,
		Unit:         "unit",
		Quantity:     decimal.NewFromInt(20),
		MinThreshold: decimal.NewFromInt(10),
		MaxThreshold: decimal.NewFromInt(100),
		UnitCost:     decimal.RequireFromString("2.50"),
		Location:     "Bodega 1",
	}
}
