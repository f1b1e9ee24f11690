// Package bootstrap arma el backend de persistencia y las reglas de stock a partir de la configuración.
// Lo comparten el servidor HTTP y la CLI.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/application/usecase"
	domaininv "github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/hotel-inventory/pkg/config"
	"github.com/jhoicas/hotel-inventory/pkg/logger"
	"github.com/shopspring/decimal"
)

// Backend repositorios y runners del adaptador elegido por STORE_DRIVER.
type Backend struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Suppliers  repository.SupplierDirectory
	Tx         inventory.TxRunner
	Catalog    usecase.CatalogTxRunner

	pool *pgxpool.Pool
}

// Close libera el pool de PostgreSQL si existe.
func (b *Backend) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
}

// Open conecta al almacén configurado. Con postgres aplica las migraciones si DB_MIGRATE=true.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	switch cfg.Store.Driver {
	case "memory":
		store := memory.NewStore()
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return &Backend{
			Categories: store.Categories(),
			Products:   store.Products(),
			Suppliers:  memory.NewSupplierDirectory(),
			Tx:         store,
			Catalog:    store,
		}, nil
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			log.Info().Msg("migraciones aplicadas")
		}
		txRunner := postgres.NewTxRunner(pool)
		return &Backend{
			Categories: postgres.NewCategoryRepository(pool),
			Products:   postgres.NewProductRepository(pool),
			Suppliers:  postgres.NewSupplierDirectory(pool),
			Tx:         txRunner,
			Catalog:    txRunner,
			pool:       pool,
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}

// Rules traduce la sección Stock de la configuración y la valida.
func Rules(cfg config.StockConfig) (domaininv.Rules, error) {
	r := domaininv.Rules{
		LowRatio:             decimal.NewFromFloat(cfg.LowRatio),
		MediumRatio:          decimal.NewFromFloat(cfg.MediumRatio),
		ExpiryWindow:         time.Duration(cfg.ExpiryWindowDays) * 24 * time.Hour,
		DepletionWarningDays: int64(cfg.DepletionWarningDays),
	}
	if err := r.Validate(); err != nil {
		return domaininv.Rules{}, err
	}
	return r, nil
}
