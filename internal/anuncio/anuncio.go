package anuncio

// Anuncio is one classified from the Muro sheet. Estado is moderation state
// kept as free text in the sheet; rows marked for hiding never reach the
// feed. Ids are row indexes and do not survive a re-fetch.
type Anuncio struct {
	ID       string `json:"id"`
	Fecha    string `json:"fecha"`
	Texto    string `json:"texto"`
	Contacto string `json:"contacto"`
	Tipo     string `json:"tipo"`
	Nombre   string `json:"nombre"`
	Estado   string `json:"estado"`
	Foto     string `json:"foto,omitempty"`
}

// Tipos are the feed filter chips, "Todos" first as the pass-through.
var Tipos = []string{"Todos", "Venta", "Compra", "Cambio", "Divisas", "Otro"}

// ChipColor is the background/text pair a tipo chip is rendered with.
type ChipColor struct {
	Bg   string `json:"bg"`
	Text string `json:"text"`
}
