package mapa

import (
	"github.com/kongaprog/zona-guira-app/internal/category"
	"github.com/kongaprog/zona-guira-app/internal/negocio"
	"github.com/kongaprog/zona-guira-app/internal/normalize"
)

const (
	tileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	attribution = "© OpenStreetMap contributors"
)

// Descriptor is everything the client needs to draw the map: the variant's
// viewport, the tile source and one marker per mappable business.
type Descriptor struct {
	Center      [2]float64 `json:"center"`
	Zoom        int        `json:"zoom"`
	TileURL     string     `json:"tileUrl"`
	Attribution string     `json:"attribution"`
	Markers     []Marker   `json:"markers"`
}

// Marker is a map pin plus its popup payload.
type Marker struct {
	ID        string  `json:"id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Icon      string  `json:"icon"`
	Nombre    string  `json:"nombre"`
	Categoria string  `json:"categoria"`
	Contacto  string  `json:"contacto,omitempty"`
}

// Viewport returns center and zoom for an app variant: "guira" frames the
// town, anything else falls back to the island-wide Plaza Cuba view.
func Viewport(variant string) ([2]float64, int) {
	if variant == "guira" {
		return [2]float64{22.79680, -82.50694}, 14
	}
	return [2]float64{21.5218, -77.7812}, 6
}

// Build assembles the descriptor for an already-filtered business list.
// Records whose stored pair does not parse as two floats are skipped.
func Build(variant, countryCode string, negocios []negocio.Negocio) Descriptor {
	center, zoom := Viewport(variant)
	d := Descriptor{
		Center:      center,
		Zoom:        zoom,
		TileURL:     tileURL,
		Attribution: attribution,
		Markers:     make([]Marker, 0, len(negocios)),
	}

	for _, n := range negocios {
		lat, lng, ok := normalize.LatLng(n.Ubicacion)
		if !ok {
			continue
		}
		m := Marker{
			ID:        n.ID,
			Lat:       lat,
			Lng:       lng,
			Icon:      category.ClassifyNegocio(n.Categoria, n.Etiquetas, n.Nombre).Emoji(),
			Nombre:    n.Nombre,
			Categoria: n.Categoria,
		}
		if n.Whatsapp != "" {
			m.Contacto = normalize.WhatsAppLink(countryCode, n.Whatsapp, "")
		}
		d.Markers = append(d.Markers, m)
	}
	return d
}
