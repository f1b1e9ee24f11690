package notify

import (
	"context"
	"errors"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

var _ inventory.AlertNotifier = Multi(nil)

// Multi reparte las alertas a todos los notificadores; un fallo no detiene a los demás.
type Multi []inventory.AlertNotifier

func (m Multi) Notify(ctx context.Context, siteID string, alerts []entity.Alert) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, siteID, alerts); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
