package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/rs/zerolog"
)

// AlertScanUseCase compone el agregador de alertas sobre todo el catálogo de un sitio.
// No guarda estado: la deduplicación de notificaciones es responsabilidad del notificador.
type AlertScanUseCase struct {
	txRunner TxRunner
	notifier AlertNotifier
	metrics  MetricsRecorder
	rules    inventory.Rules
	pageSize int
	log      zerolog.Logger
}

// NewAlertScanUseCase construye el caso de uso. notifier y metrics pueden ser nil.
func NewAlertScanUseCase(
	txRunner TxRunner,
	notifier AlertNotifier,
	metrics MetricsRecorder,
	rules inventory.Rules,
	pageSize int,
	log zerolog.Logger,
) *AlertScanUseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &AlertScanUseCase{
		txRunner: txRunner,
		notifier: notifier,
		metrics:  metrics,
		rules:    rules,
		pageSize: pageSize,
		log:      log,
	}
}

// Scan calcula las alertas del sitio en el instante now, sin notificar.
func (uc *AlertScanUseCase) Scan(ctx context.Context, siteID string, now time.Time) (*dto.AlertScanResponse, error) {
	scanned, alerts, err := uc.scan(ctx, siteID, now)
	if err != nil {
		return nil, err
	}
	return buildScanResponse(siteID, now, scanned, alerts), nil
}

// Run escanea y entrega las alertas al notificador. Pensado para el planificador periódico.
func (uc *AlertScanUseCase) Run(ctx context.Context, siteID string, now time.Time) (*dto.AlertScanResponse, error) {
	scanned, alerts, err := uc.scan(ctx, siteID, now)
	if err != nil {
		uc.log.Warn().Err(err).Str("site_id", siteID).Msg("escaneo de alertas interrumpido")
		return nil, err
	}
	uc.log.Info().
		Str("site_id", siteID).
		Int("scanned", scanned).
		Int("alerts", len(alerts)).
		Msg("escaneo de alertas completado")
	res := buildScanResponse(siteID, now, scanned, alerts)
	if uc.notifier == nil || len(alerts) == 0 {
		return res, nil
	}
	if err := uc.notifier.Notify(ctx, siteID, alerts); err != nil {
		uc.log.Error().Err(err).Str("site_id", siteID).Msg("notificación de alertas")
		return res, err
	}
	return res, nil
}

func (uc *AlertScanUseCase) scan(ctx context.Context, siteID string, now time.Time) (int, []entity.Alert, error) {
	started := time.Now()
	snapshot, err := loadSnapshot(ctx, uc.txRunner, siteID, uc.pageSize)
	if err != nil {
		return 0, nil, err
	}
	alerts := inventory.Scan(snapshot, now, uc.rules)
	uc.metrics.ScanCompleted(siteID, len(snapshot), alerts, time.Since(started))
	return len(snapshot), alerts, nil
}

func buildScanResponse(siteID string, now time.Time, scanned int, alerts []entity.Alert) *dto.AlertScanResponse {
	counts := make(map[string]int)
	for kind, n := range inventory.CountByKind(alerts) {
		counts[string(kind)] = n
	}
	return &dto.AlertScanResponse{
		SiteID:    siteID,
		ScannedAt: now,
		Scanned:   scanned,
		Counts:    counts,
		Alerts:    dto.FromAlerts(alerts),
	}
}
