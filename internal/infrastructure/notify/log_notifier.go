// Package notify entrega los resultados del escaneo de alertas a sus destinatarios.
package notify

import (
	"context"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/rs/zerolog"
)

var _ inventory.AlertNotifier = (*LogNotifier)(nil)

// LogNotifier escribe cada alerta en el log estructurado.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra una línea por alerta; las vencidas y agotadas como advertencia.
func (n *LogNotifier) Notify(_ context.Context, siteID string, alerts []entity.Alert) error {
	for _, a := range alerts {
		ev := n.log.Info()
		if a.Kind == entity.AlertKindExpired || a.Kind == entity.AlertKindOutOfStock {
			ev = n.log.Warn()
		}
		ev.Str("site_id", siteID).
			Str("product_id", a.ProductID).
			Str("product", a.ProductName).
			Str("kind", string(a.Kind)).
			Msg("alerta de inventario")
	}
	return nil
}
