package inventory

import (
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockState estado operativo derivado; nunca se persiste porque "now" avanza sin escrituras.
type StockState string

const (
	StateExpired    StockState = "expired"
	StateOutOfStock StockState = "out-of-stock"
	StateCritical   StockState = "critical"
	StateLow        StockState = "low"
	StateMedium     StockState = "medium"
	StateHigh       StockState = "high"
)

// Severity ordena los estados (mayor = peor).
func (s StockState) Severity() int {
	switch s {
	case StateExpired:
		return 6
	case StateOutOfStock:
		return 5
	case StateCritical:
		return 4
	case StateLow:
		return 3
	case StateMedium:
		return 2
	case StateHigh:
		return 1
	}
	return 0
}

// DeriveState clasifica el producto. Función total y sin efectos: mismo (p, now, r) -> mismo estado.
//
//  1. vencido (expiration < now) domina cualquier otra señal
//  2. cantidad <= 0 -> out-of-stock
//  3. cantidad <= mínimo -> critical
//  4. ratio = cantidad / máximo: <= LowRatio low, <= MediumRatio medium, si no high.
//     Máximo igual a cero se trata como critical.
func DeriveState(p *entity.Product, now time.Time, r Rules) StockState {
	if p.ExpirationDate != nil && p.ExpirationDate.Before(now) {
		return StateExpired
	}
	if p.Quantity.LessThanOrEqual(decimal.Zero) {
		return StateOutOfStock
	}
	if p.Quantity.LessThanOrEqual(p.MinThreshold) {
		return StateCritical
	}
	if !p.MaxThreshold.IsPositive() {
		return StateCritical
	}
	// ratio <= x  <=>  cantidad <= x * máximo (máximo > 0); evita redondeos de la división.
	switch {
	case p.Quantity.LessThanOrEqual(p.MaxThreshold.Mul(r.LowRatio)):
		return StateLow
	case p.Quantity.LessThanOrEqual(p.MaxThreshold.Mul(r.MediumRatio)):
		return StateMedium
	default:
		return StateHigh
	}
}

// DaysRemaining proyecta días hasta agotarse: floor(cantidad / consumo diario).
// nil cuando no hay consumo positivo (desconocido, no cero).
func DaysRemaining(p *entity.Product) *int64 {
	if p.AverageDailyConsumption == nil || !p.AverageDailyConsumption.IsPositive() {
		return nil
	}
	q, _ := p.Quantity.QuoRem(*p.AverageDailyConsumption, 0)
	days := q.IntPart()
	if days < 0 {
		days = 0
	}
	return &days
}

// IsNearExpiration: vence dentro de la ventana y todavía no ha vencido.
func IsNearExpiration(p *entity.Product, now time.Time, r Rules) bool {
	if p.ExpirationDate == nil {
		return false
	}
	exp := *p.ExpirationDate
	if exp.Before(now) {
		return false
	}
	return !exp.After(now.Add(r.ExpiryWindow))
}

// Assessment reúne todas las señales derivadas de un producto.
type Assessment struct {
	State            StockState
	DaysRemaining    *int64
	NearExpiration   bool
	DepletionWarning bool
}

// Evaluate calcula estado, proyección de agotamiento y señales independientes.
func Evaluate(p *entity.Product, now time.Time, r Rules) Assessment {
	days := DaysRemaining(p)
	return Assessment{
		State:            DeriveState(p, now, r),
		DaysRemaining:    days,
		NearExpiration:   IsNearExpiration(p, now, r),
		DepletionWarning: days != nil && *days < r.DepletionWarningDays,
	}
}
