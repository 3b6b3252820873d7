package category

import (
	"regexp"

	"github.com/kongaprog/zona-guira-app/internal/normalize"
)

// Bucket is a canonical category tag. The free-text "Categoría" column is
// classified into exactly one bucket, used both for the filter buttons and
// for picking the map-marker icon. Keeping one rule table for both is what
// keeps filter results and marker icons consistent.
type Bucket string

const (
	Comida     Bucket = "Comida"
	Transporte Bucket = "Transporte"
	Compras    Bucket = "Compras"
	Vivienda   Bucket = "Vivienda"
	Eventos    Bucket = "Eventos"
	Servicios  Bucket = "Servicios"
	Otros      Bucket = "Otros"
)

// All is the "no filter" sentinel used by the directory pipeline.
const All = "Todas"

type rule struct {
	bucket Bucket
	re     *regexp.Regexp
}

// rules are matched first-match-wins over folded text, so order is
// precedence. Groups are not mutually exclusive ("agencia de viajes" vs
// "agencia de trámites"), which is why Transporte outranks Servicios.
var rules = []rule{
	{Comida, regexp.MustCompile(`restaurante|cafeteria|paladar|pizz|comida|dulce|pan|reposteria|cocina|heladeria|batido|merienda|buffet`)},
	{Transporte, regexp.MustCompile(`taxi|transporte|mudanza|viaje|carro|moto|bicitaxi|chofer|omnibus`)},
	{Compras, regexp.MustCompile(`tienda|venta|ropa|zapato|mercado|bazar|mipyme|compra|celular|electrodomestico|accesorio|ferreteria`)},
	{Vivienda, regexp.MustCompile(`renta|casa|hostal|alquiler|habitacion|apartamento`)},
	{Eventos, regexp.MustCompile(`evento|fiesta|fotograf|cumplean|decoracion|musica|payaso|quince`)},
	{Servicios, regexp.MustCompile(`servicio|reparacion|taller|barber|peluquer|manicur|belleza|gimnasio|clases|agencia|construccion|electricista|plomer`)},
}

var emojis = map[Bucket]string{
	Comida:     "🍔",
	Transporte: "🚕",
	Compras:    "🛍️",
	Vivienda:   "🏠",
	Eventos:    "🎉",
	Servicios:  "🔧",
	Otros:      "📍",
}

// Classify maps free text to its bucket. Matching is done over folded text
// (lowercased, diacritics stripped), so "Cafetería" and "cafeteria" land in
// the same bucket. Otros is the fallback.
func Classify(text string) Bucket {
	folded := normalize.Fold(text)
	for _, r := range rules {
		if r.re.MatchString(folded) {
			return r.bucket
		}
	}
	return Otros
}

// ClassifyNegocio classifies a business by its category plus the free-text
// etiquetas and name, which often carry the only usable keyword
// ("Pizzería Doña Ana" with categoría "Varios").
func ClassifyNegocio(categoria, etiquetas, nombre string) Bucket {
	return Classify(categoria + " " + etiquetas + " " + nombre)
}

// Emoji returns the map-marker icon for a bucket.
func (b Bucket) Emoji() string {
	if e, ok := emojis[b]; ok {
		return e
	}
	return emojis[Otros]
}

// Buckets returns the canonical ordered bucket list (filter-button order).
func Buckets() []Bucket {
	return []Bucket{Comida, Transporte, Compras, Vivienda, Eventos, Servicios, Otros}
}
