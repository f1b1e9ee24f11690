package dto

// SupplierResponse proveedor ofrecido al asociar un producto.
type SupplierResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CategoryIDs []string `json:"category_ids"`
}
