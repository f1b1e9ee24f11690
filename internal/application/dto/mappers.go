package dto

import "github.com/jhoicas/hotel-inventory/internal/domain/entity"

// FromCategory convierte la entidad en respuesta.
func FromCategory(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		SiteID:      c.SiteID,
		Name:        c.Name,
		Kind:        string(c.Kind),
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromProduct convierte la entidad en respuesta.
func FromProduct(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:               p.ID,
		SiteID:           p.SiteID,
		Name:             p.Name,
		CategoryID:       p.CategoryID,
		Unit:             p.Unit,
		Quantity:         p.Quantity,
		MinThreshold:     p.MinThreshold,
		MaxThreshold:     p.MaxThreshold,
		UnitCost:         p.UnitCost,
		SupplierID:       p.SupplierID,
		Location:         p.Location,
		ExpirationDate:   p.ExpirationDate,
		DailyConsumption: p.AverageDailyConsumption,
		AutoReorder:      p.AutoReorder,
		LastRestockAt:    p.LastRestockAt,
		Version:          p.Version,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// FromAdjustment convierte un ajuste en respuesta.
func FromAdjustment(a *entity.StockAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:               a.ID,
		ProductID:        a.ProductID,
		Direction:        string(a.Direction),
		Amount:           a.Amount,
		PreviousQuantity: a.PreviousQuantity,
		ResultQuantity:   a.ResultQuantity,
		UnitCost:         a.UnitCost,
		Reason:           a.Reason,
		CreatedBy:        a.CreatedBy,
		CreatedAt:        a.CreatedAt,
	}
}

// FromAlerts convierte alertas en DTOs conservando el orden.
func FromAlerts(alerts []entity.Alert) []AlertDTO {
	out := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertDTO{
			ProductID:   a.ProductID,
			ProductName: a.ProductName,
			Kind:        string(a.Kind),
			ScannedAt:   a.ScannedAt,
		})
	}
	return out
}
