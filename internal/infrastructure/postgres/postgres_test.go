package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/hotel-inventory/pkg/config"
)

// getPool conecta a TEST_DATABASE_URL y aplica las migraciones; sin base de datos el test se omite.
func getPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	require.NoError(t, postgres.Migrate(ctx, pool))
	t.Cleanup(pool.Close)
	return pool
}

func seedCategory(t *testing.T, repo *postgres.CategoryRepo, siteID string) *entity.Category {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := &entity.Category{ID: uuid.New().String(), SiteID: siteID, Name: "Lácteos", Kind: entity.CategoryKindFood, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func newProduct(siteID, categoryID, name string) *entity.Product {
	now := time.Now().UTC().Truncate(time.Microsecond)
	daily := decimal.RequireFromString("1.5")
	return &entity.Product{
		ID:                      uuid.New().String(),
		SiteID:                  siteID,
		Name:                    name,
		CategoryID:              categoryID,
		Unit:                    "l",
		Quantity:                decimal.NewFromInt(10),
		MinThreshold:            decimal.NewFromInt(5),
		MaxThreshold:            decimal.NewFromInt(50),
		UnitCost:                decimal.RequireFromString("2.35"),
		AverageDailyConsumption: &daily,
		Version:                 1,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

func TestProductRepo_CRUDYVersion(t *testing.T) {
	pool := getPool(t)
	ctx := context.Background()
	site := "test-" + uuid.NewString()
	categories := postgres.NewCategoryRepository(pool)
	products := postgres.NewProductRepository(pool)
	cat := seedCategory(t, categories, site)

	p := newProduct(site, cat.ID, "Leche")
	require.NoError(t, products.Create(ctx, p))

	got, err := products.GetByID(ctx, site, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, p.UnitCost.Equal(got.UnitCost))
	require.NotNil(t, got.AverageDailyConsumption)
	assert.Equal(t, "1.5", got.AverageDailyConsumption.String())

	got.Name = "Leche entera"
	require.NoError(t, products.Update(ctx, got))
	assert.Equal(t, int64(2), got.Version)

	stale := *got
	stale.Version = 1
	assert.ErrorIs(t, products.Update(ctx, &stale), domain.ErrConflict)

	list, err := products.List(ctx, site, repository.ProductFilter{NameContains: "ENTERA"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, products.Create(ctx, newProduct(site, cat.ID, "Mantequilla")))
	list, err = products.List(ctx, site, repository.ProductFilter{Offset: 1})
	require.NoError(t, err)
	require.Len(t, list, 1, "offset sin límite")
	assert.Equal(t, "Mantequilla", list[0].Name)

	other, err := products.GetByID(ctx, "otro-"+site, p.ID)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestProductRepo_CategoriaInexistente(t *testing.T) {
	pool := getPool(t)
	site := "test-" + uuid.NewString()
	err := postgres.NewProductRepository(pool).Create(context.Background(), newProduct(site, "no-existe", "Queso"))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "category_id", ve.Field)
}

func TestCategoryRepo_BorradoRestringido(t *testing.T) {
	pool := getPool(t)
	ctx := context.Background()
	site := "test-" + uuid.NewString()
	categories := postgres.NewCategoryRepository(pool)
	products := postgres.NewProductRepository(pool)
	cat := seedCategory(t, categories, site)
	p := newProduct(site, cat.ID, "Leche")
	require.NoError(t, products.Create(ctx, p))

	assert.ErrorIs(t, categories.Delete(ctx, site, cat.ID), domain.ErrReferenced)

	require.NoError(t, products.Delete(ctx, site, p.ID))
	require.NoError(t, categories.Delete(ctx, site, cat.ID))
}

func TestTxRunner_AjusteYBitacoraAtomicos(t *testing.T) {
	pool := getPool(t)
	ctx := context.Background()
	site := "test-" + uuid.NewString()
	cat := seedCategory(t, postgres.NewCategoryRepository(pool), site)
	p := newProduct(site, cat.ID, "Leche")
	require.NoError(t, postgres.NewProductRepository(pool).Create(ctx, p))

	runner := postgres.NewTxRunner(pool)
	err := runner.Run(ctx, func(products repository.ProductRepository, adjustments repository.AdjustmentRepository) error {
		locked, err := products.GetForUpdate(ctx, site, p.ID)
		if err != nil {
			return err
		}
		prev := locked.Quantity
		locked.Quantity = prev.Add(decimal.NewFromInt(5))
		if err := products.UpdateStock(ctx, locked); err != nil {
			return err
		}
		return adjustments.Create(ctx, &entity.StockAdjustment{
			ID:               uuid.New().String(),
			SiteID:           site,
			ProductID:        p.ID,
			Direction:        entity.AdjustmentIncrease,
			Amount:           decimal.NewFromInt(5),
			PreviousQuantity: prev,
			ResultQuantity:   locked.Quantity,
			CreatedAt:        time.Now().UTC(),
		})
	})
	require.NoError(t, err)

	journal, err := postgres.NewAdjustmentRepository(pool).ListByProduct(ctx, site, p.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, journal, 1)
	assert.Equal(t, "15", journal[0].ResultQuantity.String())

	err = runner.RunSnapshot(ctx, func(products repository.ProductRepository) error {
		list, err := products.List(ctx, site, repository.ProductFilter{})
		require.Len(t, list, 1)
		assert.True(t, decimal.NewFromInt(15).Equal(list[0].Quantity))
		return err
	})
	require.NoError(t, err)
}
