package negocio

// Negocio is one business row from the directory sheet, normalized.
// Ubicacion holds a validated "lat, lng" pair; a record only exists when the
// pair and a real name are present. JSON tags follow the camelCase convention
// used elsewhere in the project (the sheet vocabulary is Spanish).
type Negocio struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Whatsapp    string `json:"whatsapp"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion"`
	Ubicacion   string `json:"ubicacion"`
	Foto        string `json:"foto"`
	Web         string `json:"web,omitempty"`
	Etiquetas   string `json:"etiquetas,omitempty"`
	Provincia   string `json:"provincia,omitempty"`
}

// sinNombre is the placeholder a nameless row gets before being dropped.
const sinNombre = "Sin Nombre"

// Provincias is the fixed province list offered by the welcome gate.
var Provincias = []string{
	"La Habana", "Artemisa", "Pinar del Río", "Mayabeque", "Matanzas",
	"Cienfuegos", "Villa Clara", "Sancti Spíritus", "Ciego de Ávila",
	"Camagüey", "Las Tunas", "Holguín", "Granma", "Santiago de Cuba",
	"Guantánamo", "Isla de la Juventud",
}
