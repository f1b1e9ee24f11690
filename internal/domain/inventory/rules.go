package inventory

import (
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/shopspring/decimal"
)

// Rules parametriza la clasificación por niveles. Los valores por defecto unifican
// las variantes de alimentos y bebidas y de housekeeping.
type Rules struct {
	LowRatio             decimal.Decimal // ratio <= LowRatio -> low
	MediumRatio          decimal.Decimal // LowRatio < ratio <= MediumRatio -> medium
	ExpiryWindow         time.Duration   // ventana de "próximo a vencer"
	DepletionWarningDays int64           // días restantes por debajo de este valor generan aviso
}

// DefaultRules: 30% / 60%, ventana de 7 días, aviso de agotamiento con menos de 7 días.
func DefaultRules() Rules {
	return Rules{
		LowRatio:             decimal.NewFromFloat(0.30),
		MediumRatio:          decimal.NewFromFloat(0.60),
		ExpiryWindow:         7 * 24 * time.Hour,
		DepletionWarningDays: 7,
	}
}

// Validate verifica que los límites sean coherentes (0 <= low <= medium, ventana no negativa).
func (r Rules) Validate() error {
	if r.LowRatio.IsNegative() {
		return domain.NewValidationError("low_ratio", "no puede ser negativo")
	}
	if r.MediumRatio.LessThan(r.LowRatio) {
		return domain.NewValidationError("medium_ratio", "debe ser mayor o igual a low_ratio")
	}
	if r.ExpiryWindow < 0 {
		return domain.NewValidationError("expiry_window", "no puede ser negativa")
	}
	if r.DepletionWarningDays < 0 {
		return domain.NewValidationError("depletion_warning_days", "no puede ser negativo")
	}
	return nil
}
