package producto

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kongaprog/zona-guira-app/internal/logging"
	"github.com/kongaprog/zona-guira-app/internal/normalize"
	"github.com/kongaprog/zona-guira-app/internal/sheet"
)

// precioRegexp salvages a leading numeric value out of cells like "1200 CUP".
var precioRegexp = regexp.MustCompile(`[-+]?\d+(\.\d+)?`)

type Service struct {
	fetcher sheet.Fetcher
	csvURL  string
	cache   *expirable.LRU[string, []Producto]
	logger  *logging.Logger
}

func NewService(fetcher sheet.Fetcher, csvURL string, ttl time.Duration, logger *logging.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		csvURL:  csvURL,
		cache:   expirable.NewLRU[string, []Producto](64, nil, ttl),
		logger:  logger,
	}
}

// ListByNegocio fetches the product sheet and returns the rows whose negocio
// column equals the given business name (trimmed, case-insensitive). Catalogs
// are cached per business for the snapshot TTL; a profile being reopened
// within it does not refetch the sheet.
func (s *Service) ListByNegocio(ctx context.Context, nombreNegocio string) ([]Producto, error) {
	// the key must distinguish exactly what the scoping predicate
	// distinguishes: case-insensitive, but diacritics significant
	key := strings.ToLower(strings.TrimSpace(nombreNegocio))
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	rows, err := sheet.FetchRows(ctx, s.fetcher, s.csvURL)
	if err != nil {
		return nil, err
	}

	todos := buildFromRows(rows)
	scoped := make([]Producto, 0)
	for _, p := range todos {
		if strings.EqualFold(strings.TrimSpace(p.Negocio), strings.TrimSpace(nombreNegocio)) {
			scoped = append(scoped, p)
		}
	}

	s.cache.Add(key, scoped)
	if s.logger != nil {
		s.logger.Debug("[productos] %q: %d of %d rows", nombreNegocio, len(scoped), len(todos))
	}
	return scoped, nil
}

// buildFromRows maps every sheet row; ids are the row index, so they are only
// stable within a single fetch.
func buildFromRows(rows []sheet.Row) []Producto {
	out := make([]Producto, 0, len(rows))
	for i, row := range rows {
		out = append(out, Producto{
			ID:          strconv.Itoa(i),
			Negocio:     row.Find("negocio", "tienda"),
			Nombre:      row.FindOr("Producto sin nombre", "producto", "nombre", "item"),
			Precio:      parsePrecio(row.Find("precio", "costo")),
			Foto:        normalize.ImageURL(row.Find("foto", "imagen")),
			Categoria:   row.FindOr("General", "categoria", "tipo"),
			Descripcion: row.Find("descripcion", "detalles", "info", "caracteristicas"),
		})
	}
	return out
}

// parsePrecio parses a price cell, tolerating currency suffixes and defaulting
// to 0 when nothing numeric can be found.
func parsePrecio(raw string) float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	if m := precioRegexp.FindString(raw); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			return v
		}
	}
	return 0
}
