package producto

// Producto is one catalog row from the product sheet. Negocio is the owning
// business display name as typed in the sheet; rows are matched to a business
// by case-insensitive exact equality, nothing enforces the reference.
type Producto struct {
	ID          string  `json:"id"`
	Negocio     string  `json:"negocio"`
	Nombre      string  `json:"nombre"`
	Precio      float64 `json:"precio"`
	Foto        string  `json:"foto"`
	Categoria   string  `json:"categoria"`
	Descripcion string  `json:"descripcion,omitempty"`
}
