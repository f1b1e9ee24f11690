package entity

import "time"

// AlertKind tipo de alerta generada por el escaneo.
type AlertKind string

const (
	AlertKindExpired      AlertKind = "expired"
	AlertKindOutOfStock   AlertKind = "out-of-stock"
	AlertKindLowStock     AlertKind = "low-stock"
	AlertKindExpiringSoon AlertKind = "expiring-soon"
)

// Severity orden de prioridad (mayor = más severa).
func (k AlertKind) Severity() int {
	switch k {
	case AlertKindExpired:
		return 4
	case AlertKindOutOfStock:
		return 3
	case AlertKindLowStock:
		return 2
	case AlertKindExpiringSoon:
		return 1
	}
	return 0
}

// Alert valor efímero; se regenera en cada escaneo y nunca se persiste.
type Alert struct {
	ProductID   string
	ProductName string
	SiteID      string
	Kind        AlertKind
	ScannedAt   time.Time
}
