// Package metrics publica las métricas del motor de inventario en Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ inventory.MetricsRecorder = (*Recorder)(nil)

var alertKinds = []entity.AlertKind{
	entity.AlertKindExpired,
	entity.AlertKindOutOfStock,
	entity.AlertKindLowStock,
	entity.AlertKindExpiringSoon,
}

// Recorder implementa inventory.MetricsRecorder sobre un registro propio.
type Recorder struct {
	registry        *prometheus.Registry
	adjustments     *prometheus.CounterVec
	activeAlerts    *prometheus.GaugeVec
	productsScanned *prometheus.GaugeVec
	scanDuration    *prometheus.HistogramVec
}

// NewRecorder crea el registro con los colectores del motor y los del proceso Go.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		adjustments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_stock_adjustments_total",
				Help: "Ajustes de stock aplicados",
			},
			[]string{"site", "direction"},
		),
		activeAlerts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_active_alerts",
				Help: "Alertas del último escaneo por tipo",
			},
			[]string{"site", "kind"},
		),
		productsScanned: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventory_products_scanned",
				Help: "Productos evaluados en el último escaneo",
			},
			[]string{"site"},
		),
		scanDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_scan_duration_seconds",
				Help:    "Duración del escaneo de alertas",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"site"},
		),
	}
	r.registry.MustRegister(
		r.adjustments,
		r.activeAlerts,
		r.productsScanned,
		r.scanDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) AdjustmentApplied(siteID string, direction entity.AdjustmentDirection) {
	r.adjustments.WithLabelValues(siteID, string(direction)).Inc()
}

// ScanCompleted reemplaza los gauges del sitio: un tipo sin alertas queda en cero.
func (r *Recorder) ScanCompleted(siteID string, scanned int, alerts []entity.Alert, elapsed time.Duration) {
	counts := make(map[entity.AlertKind]int, len(alertKinds))
	for _, a := range alerts {
		counts[a.Kind]++
	}
	for _, kind := range alertKinds {
		r.activeAlerts.WithLabelValues(siteID, string(kind)).Set(float64(counts[kind]))
	}
	r.productsScanned.WithLabelValues(siteID).Set(float64(scanned))
	r.scanDuration.WithLabelValues(siteID).Observe(elapsed.Seconds())
}

// Registry expone el registro (pruebas, colectores adicionales).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler sirve el formato de exposición de Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
