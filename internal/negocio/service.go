package negocio

import (
	"context"

	"github.com/google/uuid"

	"github.com/kongaprog/zona-guira-app/internal/category"
	"github.com/kongaprog/zona-guira-app/internal/logging"
	"github.com/kongaprog/zona-guira-app/internal/normalize"
	"github.com/kongaprog/zona-guira-app/internal/sheet"
)

type Service struct {
	repo    Repository
	fetcher sheet.Fetcher
	csvURL  string
	logger  *logging.Logger
}

func NewService(repo Repository, fetcher sheet.Fetcher, csvURL string, logger *logging.Logger) *Service {
	return &Service{repo: repo, fetcher: fetcher, csvURL: csvURL, logger: logger}
}

// List returns the full directory, re-fetching the sheet when the snapshot
// has expired. A fetch failure with no usable snapshot surfaces as an error;
// the handler degrades it to an empty list.
func (s *Service) List(ctx context.Context) ([]Negocio, error) {
	if cached, ok := s.repo.Snapshot(); ok {
		return cached, nil
	}

	rows, err := sheet.FetchRows(ctx, s.fetcher, s.csvURL)
	if err != nil {
		return nil, err
	}

	negocios := BuildFromRows(rows, s.logger)
	s.repo.Store(negocios)
	return negocios, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Negocio, error) {
	// a List primes the snapshot so profile lookups work on a cold start
	if _, err := s.List(ctx); err != nil {
		return Negocio{}, err
	}
	return s.repo.GetByID(id)
}

// BuildFromRows maps sheet rows to records and drops the unusable ones: a
// record is kept only with a valid coordinate pair and a non-placeholder
// name. Dropped rows are counted, not reported per-row.
func BuildFromRows(rows []sheet.Row, logger *logging.Logger) []Negocio {
	out := make([]Negocio, 0, len(rows))
	for _, row := range rows {
		n := FromRow(row)
		if n.Ubicacion == "" || n.Nombre == sinNombre {
			continue
		}
		out = append(out, n)
	}
	if logger != nil {
		logger.Info("[negocios] kept %d of %d rows (dropped %d)", len(out), len(rows), len(rows)-len(out))
	}
	return out
}

// FromRow resolves one sheet row into a Negocio. Column lookup is fuzzy
// (keyword-substring over headers) and every field degrades to its default
// rather than failing the row.
func FromRow(row sheet.Row) Negocio {
	rawUbicacion := row.Find("ubicación", "ubicacion", "coordenada")

	id := row.Find("marca", "timestamp")
	if id == "" {
		id = uuid.NewString()
	}

	return Negocio{
		ID:          id,
		Nombre:      row.FindOr(sinNombre, "nombre", "negocio"),
		Whatsapp:    row.Find("whatsapp", "numero"),
		Categoria:   row.FindOr("Varios", "categoría", "categoria"),
		Descripcion: row.Find("descripción", "descripcion"),
		Ubicacion:   normalize.Coordinates(rawUbicacion),
		Foto:        normalize.ImageURL(row.Find("foto", "imagen")),
		Web:         row.Find("enlaces", "web", "facebook", "grupo", "redes"),
		Etiquetas:   row.Find("etiquetas", "clave", "tags"),
		Provincia:   row.FindOr("Todas", "provincia", "municipio", "lugar", "zona"),
	}
}

// Filter runs the directory pipeline: province gate, then category bucket,
// then diacritic-insensitive text search. It is a pure function over the
// snapshot and preserves input (sheet) order.
func Filter(all []Negocio, provincia, categoria, search string) []Negocio {
	out := make([]Negocio, 0, len(all))
	for _, n := range all {
		if !matchProvincia(n, provincia) {
			continue
		}
		if !matchCategoria(n, categoria) {
			continue
		}
		if !matchSearch(n, search) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func matchProvincia(n Negocio, provincia string) bool {
	if provincia == "" || provincia == category.All {
		return true
	}
	// records without a province (or marked "Todas") show everywhere
	if n.Provincia == "" || n.Provincia == category.All {
		return true
	}
	return normalize.ContainsFold(n.Provincia, provincia)
}

func matchCategoria(n Negocio, categoria string) bool {
	if categoria == "" || categoria == category.All || categoria == "Todos" {
		return true
	}
	bucket := category.ClassifyNegocio(n.Categoria, n.Etiquetas, n.Nombre)
	return normalize.Fold(string(bucket)) == normalize.Fold(categoria)
}

func matchSearch(n Negocio, search string) bool {
	if search == "" {
		return true
	}
	return normalize.ContainsFold(n.Nombre, search) ||
		normalize.ContainsFold(n.Descripcion, search) ||
		normalize.ContainsFold(n.Categoria, search) ||
		normalize.ContainsFold(n.Etiquetas, search)
}
