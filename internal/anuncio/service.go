package anuncio

import (
	"context"
	"strconv"
	"strings"

	"github.com/kongaprog/zona-guira-app/internal/logging"
	"github.com/kongaprog/zona-guira-app/internal/normalize"
	"github.com/kongaprog/zona-guira-app/internal/sheet"
)

type Service struct {
	fetcher sheet.Fetcher
	csvURL  string
	logger  *logging.Logger
}

func NewService(fetcher sheet.Fetcher, csvURL string, logger *logging.Logger) *Service {
	return &Service{fetcher: fetcher, csvURL: csvURL, logger: logger}
}

// List fetches the Muro sheet, drops hidden rows and returns the feed newest
// first (the sheet appends, so source order is oldest first).
func (s *Service) List(ctx context.Context) ([]Anuncio, error) {
	rows, err := sheet.FetchRows(ctx, s.fetcher, s.csvURL)
	if err != nil {
		return nil, err
	}

	anuncios := make([]Anuncio, 0, len(rows))
	for i, row := range rows {
		a := fromRow(row, i)
		if hidden(a.Estado) {
			continue
		}
		anuncios = append(anuncios, a)
	}

	reverse(anuncios)
	if s.logger != nil {
		s.logger.Debug("[muro] %d visible of %d rows", len(anuncios), len(rows))
	}
	return anuncios, nil
}

// FilterTipo keeps ads whose tipo contains the selected chip,
// case-insensitively. "Todos" or empty passes everything through.
func FilterTipo(anuncios []Anuncio, tipo string) []Anuncio {
	if tipo == "" || tipo == "Todos" {
		return anuncios
	}
	out := make([]Anuncio, 0, len(anuncios))
	for _, a := range anuncios {
		if strings.Contains(strings.ToLower(a.Tipo), strings.ToLower(tipo)) {
			out = append(out, a)
		}
	}
	return out
}

// ColorTipo returns the chip colors for a tipo tag.
func ColorTipo(tipo string) ChipColor {
	t := strings.ToLower(tipo)
	switch {
	case strings.Contains(t, "venta"):
		return ChipColor{Bg: "#dcfce7", Text: "#166534"}
	case strings.Contains(t, "compra"):
		return ChipColor{Bg: "#dbeafe", Text: "#1e40af"}
	case strings.Contains(t, "cambio"):
		return ChipColor{Bg: "#f3e8ff", Text: "#6b21a8"}
	case strings.Contains(t, "divisa"), strings.Contains(t, "usd"):
		return ChipColor{Bg: "#ffedd5", Text: "#9a3412"}
	default:
		return ChipColor{Bg: "#f1f5f9", Text: "#475569"}
	}
}

// ContactLink builds the wa.me link preloaded with a teaser of the ad text.
func ContactLink(countryCode string, a Anuncio) string {
	teaser := []rune(a.Texto)
	if len(teaser) > 15 {
		teaser = teaser[:15]
	}
	mensaje := "Hola, vi tu anuncio en el Muro: " + string(teaser) + "..."
	return normalize.WhatsAppLink(countryCode, a.Contacto, mensaje)
}

func fromRow(row sheet.Row, index int) Anuncio {
	return Anuncio{
		ID:       strconv.Itoa(index),
		Fecha:    row.Find("marca", "fecha", "timestamp"),
		Texto:    row.Find("anuncio", "mensaje", "descripcion", "publicar", "que", "vend"),
		Contacto: row.Find("contacto", "whatsapp", "numero"),
		Tipo:     row.FindOr("Varios", "tipo", "categoria"),
		Nombre:   row.FindOr("Anónimo", "nombre", "usuario"),
		Estado:   row.FindOr("activo", "estado", "status", "control", "visible"),
		Foto:     normalize.ImageURL(row.Find("foto", "imagen")),
	}
}

func hidden(estado string) bool {
	e := strings.ToLower(estado)
	return strings.Contains(e, "ocultar") || strings.Contains(e, "borrar")
}

func reverse(anuncios []Anuncio) {
	for i, j := 0, len(anuncios)-1; i < j; i, j = i+1, j-1 {
		anuncios[i], anuncios[j] = anuncios[j], anuncios[i]
	}
}
