package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAlertCatalog(t *testing.T, store *memory.Store) {
	t.Helper()
	expired := item("p1", "Leche", "50")
	past := fixedNow.Add(-time.Hour)
	expired.ExpirationDate = &past
	soon := item("p4", "Yogur", "80")
	next := fixedNow.Add(48 * time.Hour)
	soon.ExpirationDate = &next
	seed(t, store,
		expired,
		item("p2", "Toallas", "0"),
		item("p3", "Jabón", "5"),
		soon,
		item("p5", "Café", "70"),
	)
}

func TestAlertScan_PaginaYOrdena(t *testing.T) {
	store := memory.NewStore()
	seedAlertCatalog(t, store)
	metrics := &recordingMetrics{}
	uc := inventory.NewAlertScanUseCase(store, nil, metrics, rules, 2, zerolog.Nop())

	out, err := uc.Scan(context.Background(), site, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Scanned, "todas las páginas se leen")
	kinds := make([]string, 0, len(out.Alerts))
	for _, a := range out.Alerts {
		kinds = append(kinds, a.ProductName+":"+a.Kind)
	}
	assert.Equal(t, []string{"Leche:expired", "Toallas:out-of-stock", "Jabón:low-stock", "Yogur:expiring-soon"}, kinds)
	assert.Equal(t, 1, out.Counts["expired"])
	assert.Equal(t, 4, metrics.lastAlerts)
	assert.Equal(t, 1, metrics.scans)
}

func TestAlertScan_ScanNoNotifica(t *testing.T) {
	store := memory.NewStore()
	seedAlertCatalog(t, store)
	n := &recordingNotifier{}
	uc := inventory.NewAlertScanUseCase(store, n, nil, rules, 0, zerolog.Nop())

	_, err := uc.Scan(context.Background(), site, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, n.calls)

	out, err := uc.Run(context.Background(), site, fixedNow)
	require.NoError(t, err)
	require.Len(t, n.calls, 1)
	assert.Len(t, n.calls[0], len(out.Alerts))
}

func TestAlertScan_SinAlertasNoNotifica(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, item("p1", "Café", "90"))
	n := &recordingNotifier{}
	uc := inventory.NewAlertScanUseCase(store, n, nil, rules, 0, zerolog.Nop())

	out, err := uc.Run(context.Background(), site, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
	assert.Empty(t, n.calls)
}

func TestAlertScan_Idempotente(t *testing.T) {
	store := memory.NewStore()
	seedAlertCatalog(t, store)
	uc := inventory.NewAlertScanUseCase(store, nil, nil, rules, 3, zerolog.Nop())

	first, err := uc.Scan(context.Background(), site, fixedNow)
	require.NoError(t, err)
	second, err := uc.Scan(context.Background(), site, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAlertScan_Cancelado(t *testing.T) {
	store := memory.NewStore()
	seedAlertCatalog(t, store)
	n := &recordingNotifier{}
	uc := inventory.NewAlertScanUseCase(store, n, nil, rules, 1, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.Run(ctx, site, fixedNow)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, n.calls)
}

func TestAlertScan_SoloElSitio(t *testing.T) {
	store := memory.NewStore()
	seedAlertCatalog(t, store)
	other := item("x1", "Ajeno", "0")
	other.SiteID = "otro-hotel"
	other.CategoryID = "cat-otro"
	require.NoError(t, store.Categories().Create(context.Background(), &entity.Category{ID: "cat-otro", SiteID: "otro-hotel", Name: "X", Kind: entity.CategoryKindFood}))
	require.NoError(t, store.Products().Create(context.Background(), other))

	uc := inventory.NewAlertScanUseCase(store, nil, nil, rules, 0, zerolog.Nop())
	out, err := uc.Scan(context.Background(), site, fixedNow)
	require.NoError(t, err)
	for _, a := range out.Alerts {
		assert.NotEqual(t, "x1", a.ProductID)
	}
}
