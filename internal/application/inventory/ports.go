package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que los ajustes sean lectura-modificación-escritura atómicas sobre la fila del producto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		adjustments repository.AdjustmentRepository,
	) error) error
	// RunSnapshot ejecuta fn sobre una vista consistente de solo lectura del catálogo.
	RunSnapshot(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// AlertNotifier colaborador que recibe el resultado de un escaneo (banner, email, push...).
type AlertNotifier interface {
	Notify(ctx context.Context, siteID string, alerts []entity.Alert) error
}

// MetricsRecorder recibe eventos del motor para métricas operativas.
type MetricsRecorder interface {
	AdjustmentApplied(siteID string, direction entity.AdjustmentDirection)
	ScanCompleted(siteID string, scanned int, alerts []entity.Alert, elapsed time.Duration)
}

// NopMetrics descarta las métricas.
type NopMetrics struct{}

func (NopMetrics) AdjustmentApplied(string, entity.AdjustmentDirection)     {}
func (NopMetrics) ScanCompleted(string, int, []entity.Alert, time.Duration) {}
