package entity

// Supplier pertenece a un directorio externo; este núcleo solo lo consulta por id.
type Supplier struct {
	ID          string
	SiteID      string
	Name        string
	Active      bool
	CategoryIDs []string // categorías con las que es compatible
}

// CompatibleWith indica si el proveedor atiende la categoría.
func (s *Supplier) CompatibleWith(categoryID string) bool {
	for _, id := range s.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
