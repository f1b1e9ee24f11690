package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// Scan recorre un snapshot del catálogo y devuelve los productos que requieren atención.
// Puro dado (snapshot, now, r): repetirlo produce el mismo conjunto en el mismo orden.
//
// Orden: severidad (expired > out-of-stock > low-stock > expiring-soon), luego nombre, luego id.
func Scan(snapshot []*entity.Product, now time.Time, r Rules) []entity.Alert {
	alerts := make([]entity.Alert, 0)
	for _, p := range snapshot {
		if p == nil {
			continue
		}
		emit := func(kind entity.AlertKind) {
			alerts = append(alerts, entity.Alert{
				ProductID:   p.ID,
				ProductName: p.Name,
				SiteID:      p.SiteID,
				Kind:        kind,
				ScannedAt:   now,
			})
		}
		switch DeriveState(p, now, r) {
		case StateExpired:
			emit(entity.AlertKindExpired)
			continue
		case StateOutOfStock:
			emit(entity.AlertKindOutOfStock)
		case StateCritical:
			emit(entity.AlertKindLowStock)
		}
		if IsNearExpiration(p, now, r) {
			emit(entity.AlertKindExpiringSoon)
		}
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Kind.Severity() != b.Kind.Severity() {
			return a.Kind.Severity() > b.Kind.Severity()
		}
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		return a.ProductID < b.ProductID
	})
	return alerts
}

// CountByKind resume un conjunto de alertas por tipo.
func CountByKind(alerts []entity.Alert) map[entity.AlertKind]int {
	out := map[entity.AlertKind]int{
		entity.AlertKindExpired:      0,
		entity.AlertKindOutOfStock:   0,
		entity.AlertKindLowStock:     0,
		entity.AlertKindExpiringSoon: 0,
	}
	for _, a := range alerts {
		out[a.Kind]++
	}
	return out
}
