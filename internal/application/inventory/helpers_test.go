package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	domaininv "github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/memory"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const site = "hotel-playa"

var fixedNow = time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// seed crea la categoría y los productos directamente en el almacén.
func seed(t *testing.T, store *memory.Store, products ...*entity.Product) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Categories().Create(ctx, &entity.Category{ID: "cat", SiteID: site, Name: "General", Kind: entity.CategoryKindSupply}))
	for _, p := range products {
		if p.SiteID == "" {
			p.SiteID = site
		}
		if p.CategoryID == "" {
			p.CategoryID = "cat"
		}
		p.Version = 1
		require.NoError(t, store.Products().Create(ctx, p))
	}
}

func item(id, name, qty string) *entity.Product {
	return &entity.Product{
		ID:           id,
		Name:         name,
		Quantity:     d(qty),
		MinThreshold: d("10"),
		MaxThreshold: d("100"),
		UnitCost:     d("2"),
	}
}

func newAdjust(store *memory.Store, m inventory.MetricsRecorder) *inventory.AdjustStockUseCase {
	return inventory.NewAdjustStockUseCase(store, store.Products(), m, func() time.Time { return fixedNow }, zerolog.Nop())
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls [][]entity.Alert
}

func (r *recordingNotifier) Notify(_ context.Context, _ string, alerts []entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, alerts)
	return nil
}

type recordingMetrics struct {
	mu          sync.Mutex
	adjustments map[entity.AdjustmentDirection]int
	scans       int
	lastAlerts  int
}

func (r *recordingMetrics) AdjustmentApplied(_ string, dir entity.AdjustmentDirection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.adjustments == nil {
		r.adjustments = map[entity.AdjustmentDirection]int{}
	}
	r.adjustments[dir]++
}

func (r *recordingMetrics) ScanCompleted(_ string, _ int, alerts []entity.Alert, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scans++
	r.lastAlerts = len(alerts)
}

var rules = domaininv.DefaultRules()
