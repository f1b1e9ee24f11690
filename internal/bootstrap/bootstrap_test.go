package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/bootstrap"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/pkg/config"
	"github.com/jhoicas/hotel-inventory/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_DesdeConfiguracion(t *testing.T) {
	r, err := bootstrap.Rules(config.StockConfig{LowRatio: 0.25, MediumRatio: 0.5, ExpiryWindowDays: 3, DepletionWarningDays: 5})
	require.NoError(t, err)
	assert.Equal(t, "0.25", r.LowRatio.String())
	assert.Equal(t, "0.5", r.MediumRatio.String())
	assert.Equal(t, 72*time.Hour, r.ExpiryWindow)
	assert.Equal(t, int64(5), r.DepletionWarningDays)
}

func TestRules_LimitesIncoherentes(t *testing.T) {
	_, err := bootstrap.Rules(config.StockConfig{LowRatio: 0.7, MediumRatio: 0.5})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "medium_ratio", ve.Field)
}

func TestOpen_Memoria(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "memory"}}
	b, err := bootstrap.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer b.Close()

	assert.NotNil(t, b.Categories)
	assert.NotNil(t, b.Products)
	assert.NotNil(t, b.Suppliers)
	assert.NotNil(t, b.Tx)
	assert.NotNil(t, b.Catalog)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "mongo"}}
	_, err := bootstrap.Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
