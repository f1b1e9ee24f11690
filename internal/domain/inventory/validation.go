package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// MaxScale es la cantidad de decimales que persisten las columnas NUMERIC(18,4).
const MaxScale = 4

// ValidateScale rechaza valores que el almacenamiento redondearía en silencio.
// Los ceros finales no cuentan: 1.50000 es válido.
func ValidateScale(field string, v decimal.Decimal) error {
	if !v.Equal(v.Round(MaxScale)) {
		return domain.NewValidationError(field, "admite a lo sumo 4 decimales")
	}
	return nil
}

// ValidateCategory valida nombre y tipo de una categoría.
func ValidateCategory(c *entity.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("name", "es requerido")
	}
	if !c.Kind.Valid() {
		return domain.NewValidationError("kind", "tipo de categoría desconocido")
	}
	return nil
}

// ValidateProduct verifica las reglas de un producto ya fusionado (create o update).
// La resolución de categoría y proveedor la hace el caso de uso contra el almacenamiento.
func ValidateProduct(p *entity.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("name", "es requerido")
	}
	if p.CategoryID == "" {
		return domain.NewValidationError("category_id", "es requerido")
	}
	if p.Quantity.IsNegative() {
		return domain.NewValidationError("quantity", "no puede ser negativa")
	}
	if p.MinThreshold.IsNegative() {
		return domain.NewValidationError("min_threshold", "no puede ser negativo")
	}
	if p.MaxThreshold.LessThan(p.MinThreshold) {
		return domain.NewValidationError("max_threshold", "debe ser mayor o igual a min_threshold")
	}
	if p.UnitCost.IsNegative() {
		return domain.NewValidationError("unit_cost", "no puede ser negativo")
	}
	if p.AverageDailyConsumption != nil && p.AverageDailyConsumption.IsNegative() {
		return domain.NewValidationError("daily_consumption", "no puede ser negativo")
	}
	for _, f := range []struct {
		name string
		v    decimal.Decimal
	}{
		{"quantity", p.Quantity},
		{"min_threshold", p.MinThreshold},
		{"max_threshold", p.MaxThreshold},
		{"unit_cost", p.UnitCost},
	} {
		if err := ValidateScale(f.name, f.v); err != nil {
			return err
		}
	}
	if p.AverageDailyConsumption != nil {
		return ValidateScale("daily_consumption", *p.AverageDailyConsumption)
	}
	return nil
}
